// Package feed provides an in-memory latest-value broadcaster.
//
// Unlike a plain fan-out, a Feed retains the most recently published value
// and replays it to new subscribers, so consumers of derived state (such
// as render output recomputed from an active set) see the current state
// immediately rather than waiting for the next change. Publishing never
// blocks: a slow subscriber loses intermediate values, keeping only the
// freshest ones in its buffer.
//
// # Usage
//
//	f := feed.New[int](4)
//	defer f.Close()
//
//	sub := f.Subscribe(ctx)
//	f.Publish(42)
//
//	v := <-sub.Receive() // 42
package feed
