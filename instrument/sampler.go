package instrument

import (
	"runtime/metrics"
	"sync"
	"time"
)

// heapObjectsMetric counts bytes in heap objects, live or not yet swept.
const heapObjectsMetric = "/memory/classes/heap/objects:bytes"

// heapObjectBytes reads heapObjectsMetric once.
func heapObjectBytes() uint64 {
	s := []metrics.Sample{{Name: heapObjectsMetric}}
	metrics.Read(s)
	if s[0].Value.Kind() != metrics.KindUint64 {
		return 0
	}

	return s[0].Value.Uint64()
}

// sampler polls heap usage on a ticker and keeps the maximum seen.
type sampler struct {
	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once

	mu   sync.Mutex
	peak uint64
}

func startSampler(interval time.Duration, initial uint64) *sampler {
	s := &sampler{done: make(chan struct{}), peak: initial}
	s.wg.Add(1)
	go s.run(interval)

	return s
}

func (s *sampler) run(interval time.Duration) {
	defer s.wg.Done()
	t := time.NewTicker(interval)
	defer t.Stop()

	sample := []metrics.Sample{{Name: heapObjectsMetric}}
	for {
		select {
		case <-s.done:
			return
		case <-t.C:
			metrics.Read(sample)
			if sample[0].Value.Kind() == metrics.KindUint64 {
				s.observe(sample[0].Value.Uint64())
			}
		}
	}
}

func (s *sampler) observe(v uint64) {
	s.mu.Lock()
	if v > s.peak {
		s.peak = v
	}
	s.mu.Unlock()
}

// stop terminates the polling goroutine, takes one last sample and returns
// the peak. It is safe to call more than once.
func (s *sampler) stop() uint64 {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()
		s.observe(heapObjectBytes())
	})
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.peak
}
