package async

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/webriots/coro"
)

func TestStackfulBlocksAndCompletes(t *testing.T) {
	r := require.New(t)

	flag := false
	steps := 0
	s := NewStackful(func(await func(Cond)) {
		steps++
		await(Flag(&flag))
		steps++
	})

	// Nothing runs before the first Invoke.
	r.Equal(0, steps)

	r.Equal(Blocked, s.Invoke())
	r.Equal(Blocked, s.Invoke())
	r.Equal(1, steps)

	flag = true
	r.Equal(Completed, s.Invoke())
	r.Equal(2, steps)

	r.Equal(Completed, s.Invoke())
	r.Equal(2, steps)
}

func TestStackfulLocalsSurvive(t *testing.T) {
	r := require.New(t)

	flag := false
	got := 0
	s := NewStackful(func(await func(Cond)) {
		// The whole point of the bridge: this local lives on the
		// coroutine's own stack and survives the await.
		local := 23
		await(Flag(&flag))
		got = local
	})

	r.Equal(Blocked, s.Invoke())
	flag = true
	r.Equal(Completed, s.Invoke())
	r.Equal(23, got)
}

func TestStackfulSatisfiedAwaitDoesNotSuspend(t *testing.T) {
	r := require.New(t)

	flag := true
	s := NewStackful(func(await func(Cond)) {
		await(Flag(&flag))
		await(Flag(&flag))
	})

	r.Equal(Completed, s.Invoke())
}

// bridgeAwait demonstrates a record coroutine awaiting a stackful
// child through the same Done convention as a record child.
const bridgeDone Point = 1

type bridgeStack struct {
	child *Stackful
}

func bridge(a *Async[bridgeStack]) Status {
	stack := a.Stack
	for {
		switch a.At() {
		case Start:
			if !a.Await(stack.child.Done(), bridgeDone) {
				return Blocked
			}
		case bridgeDone:
			return a.End()
		}
	}
}

func TestRecordAwaitsStackfulChild(t *testing.T) {
	r := require.New(t)

	flag := false
	child := NewStackful(func(await func(Cond)) {
		await(Flag(&flag))
	})

	stack := bridgeStack{child: child}
	a := New(&stack)

	r.Equal(Blocked, Invoke(bridge, &a))
	r.Equal(Blocked, Invoke(bridge, &a))

	flag = true
	r.Equal(Completed, Invoke(bridge, &a))
}

func TestStackfulAwaitsRecordChild(t *testing.T) {
	r := require.New(t)

	lock := 0
	cstack := childStack{lock: &lock}
	rec := New(&cstack)

	s := NewStackful(func(await func(Cond)) {
		await(Done(child, &rec))
	})

	r.Equal(Blocked, s.Invoke())
	lock = 1
	r.Equal(Completed, s.Invoke())
	r.True(rec.Done())
}

func TestStackfulPanicSurfacesAtInvoke(t *testing.T) {
	r := require.New(t)

	s := NewStackful(func(await func(Cond)) {
		panic("boom")
	})

	defer func() {
		err, ok := recover().(error)
		r.True(ok)
		r.Equal("boom", err.Error())
	}()
	s.Invoke()
	r.Fail("expected panic from Invoke")
}

func TestStackfulCancel(t *testing.T) {
	r := require.New(t)

	flag := false
	s := NewStackful(func(await func(Cond)) {
		await(Flag(&flag))
	})

	r.Equal(Blocked, s.Invoke())

	defer func() {
		err, ok := recover().(error)
		r.True(ok)
		r.ErrorIs(err, coro.ErrCanceled)
	}()
	s.Cancel()
	r.Fail("expected cancellation panic from Cancel")
}

func TestStackfulCancelRecovered(t *testing.T) {
	r := require.New(t)

	flag := false
	cleaned := false
	s := NewStackful(func(await func(Cond)) {
		defer func() {
			if recover() != nil {
				cleaned = true
			}
		}()
		await(Flag(&flag))
	})

	r.Equal(Blocked, s.Invoke())
	s.Cancel()
	r.True(cleaned)
	r.Equal(Completed, s.Invoke())
}

func TestStackfulCancelAfterCompletion(t *testing.T) {
	r := require.New(t)

	s := NewStackful(func(await func(Cond)) {})
	r.Equal(Completed, s.Invoke())
	s.Cancel()
	r.Equal(Completed, s.Invoke())
}
