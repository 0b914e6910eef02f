package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_Subscribe(t *testing.T) {
	t.Run("subscribe creates active subscriber", func(t *testing.T) {
		f := New[string](4)
		defer f.Close()

		sub := f.Subscribe(context.Background())
		require.NotNil(t, sub)
		require.NotNil(t, sub.Receive())
	})

	t.Run("new subscriber receives the latest value immediately", func(t *testing.T) {
		f := New[string](4)
		defer f.Close()

		f.Publish("current")

		sub := f.Subscribe(context.Background())
		select {
		case v := <-sub.Receive():
			assert.Equal(t, "current", v)
		case <-time.After(time.Second):
			t.Fatal("latest value not replayed")
		}
	})

	t.Run("subscribe after close returns closed subscriber", func(t *testing.T) {
		f := New[string](4)
		require.NoError(t, f.Close())

		sub := f.Subscribe(context.Background())
		_, ok := <-sub.Receive()
		assert.False(t, ok)
	})

	t.Run("context cancellation unsubscribes", func(t *testing.T) {
		f := New[string](4)
		defer f.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := f.Subscribe(ctx)

		cancel()
		time.Sleep(50 * time.Millisecond)

		f.Publish("after cancel")

		select {
		case v, ok := <-sub.Receive():
			if ok {
				t.Fatalf("should not receive after context cancel, got: %v", v)
			}
		case <-time.After(50 * time.Millisecond):
		}
	})
}

func TestFeed_Publish(t *testing.T) {
	t.Run("fans out to all subscribers", func(t *testing.T) {
		f := New[int](4)
		defer f.Close()

		ctx := context.Background()
		a := f.Subscribe(ctx)
		b := f.Subscribe(ctx)

		f.Publish(7)

		assert.Equal(t, 7, <-a.Receive())
		assert.Equal(t, 7, <-b.Receive())
	})

	t.Run("slow subscriber keeps the freshest values", func(t *testing.T) {
		f := New[int](1)
		defer f.Close()

		sub := f.Subscribe(context.Background())

		// Buffer of one: each publish displaces the stale queued value.
		for i := 1; i <= 10; i++ {
			f.Publish(i)
		}

		assert.Equal(t, 10, <-sub.Receive())
	})

	t.Run("publish after close is a no-op", func(t *testing.T) {
		f := New[int](4)
		require.NoError(t, f.Close())

		f.Publish(1)
		_, ok := f.Latest()
		assert.False(t, ok)
	})

	t.Run("concurrent publishers do not race", func(t *testing.T) {
		f := New[int](4)
		defer f.Close()

		sub := f.Subscribe(context.Background())
		go func() {
			for range sub.Receive() {
			}
		}()

		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(v int) {
				defer wg.Done()
				f.Publish(v)
			}(i)
		}
		wg.Wait()

		_, ok := f.Latest()
		assert.True(t, ok)
	})
}

func TestFeed_Latest(t *testing.T) {
	f := New[string](4)
	defer f.Close()

	_, ok := f.Latest()
	assert.False(t, ok)

	f.Publish("a")
	f.Publish("b")

	v, ok := f.Latest()
	require.True(t, ok)
	assert.Equal(t, "b", v)
}

func TestFeed_Close(t *testing.T) {
	t.Run("closes all subscribers", func(t *testing.T) {
		f := New[string](4)
		sub := f.Subscribe(context.Background())

		require.NoError(t, f.Close())

		_, ok := <-sub.Receive()
		assert.False(t, ok)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		f := New[string](4)
		require.NoError(t, f.Close())
		require.NoError(t, f.Close())
	})

	t.Run("close returns while a cancellable subscriber is still live", func(t *testing.T) {
		f := New[string](4)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		sub := f.Subscribe(ctx)

		// The subscriber's context is never cancelled before Close; the
		// feed must not wait for it.
		done := make(chan error, 1)
		go func() { done <- f.Close() }()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Close blocked on a live subscriber context")
		}

		_, ok := <-sub.Receive()
		assert.False(t, ok)

		// Cancelling afterwards must stay harmless.
		cancel()
		time.Sleep(20 * time.Millisecond)
	})
}

func TestSubscriber_Close(t *testing.T) {
	f := New[string](4)
	defer f.Close()

	sub := f.Subscribe(context.Background())
	require.NoError(t, sub.Close())
	require.NoError(t, sub.Close())

	// Publishing to a closed subscriber must not panic.
	f.Publish("late")
}
