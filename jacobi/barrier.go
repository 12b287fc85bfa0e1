package jacobi

import "sync"

// barrier is a reusable (cyclic) rendezvous point for a fixed set of
// workers. Every participant blocks in await until all size participants
// have arrived, then all are released and the barrier resets for the next
// phase. The mutex hand-off makes all writes performed before await by any
// participant visible to every participant after it returns.
type barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	size  int
	count int
	phase uint64
}

func newBarrier(size int) *barrier {
	b := &barrier{size: size}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// await blocks until all participants of the current phase have arrived.
func (b *barrier) await() {
	b.mu.Lock()
	phase := b.phase
	b.count++
	if b.count == b.size {
		b.count = 0
		b.phase++
		b.cond.Broadcast()
		b.mu.Unlock()

		return
	}
	for phase == b.phase {
		b.cond.Wait()
	}
	b.mu.Unlock()
}
