package timers

// ring is a fixed-capacity sample buffer. Samples are appended until the
// buffer is full, then the oldest one is overwritten. cursor always points
// at the slot written next.
type ring struct {
	samples  []float64
	capacity int
	cursor   int
}

func newRing(capacity int) *ring {
	return &ring{
		samples:  make([]float64, 0, capacity),
		capacity: capacity,
	}
}

func (r *ring) add(v float64) {
	if len(r.samples) < r.capacity {
		r.samples = append(r.samples, v)
	} else {
		r.samples[r.cursor] = v
	}
	r.cursor = (r.cursor + 1) % r.capacity
}

func (r *ring) len() int {
	return len(r.samples)
}

func (r *ring) clear() {
	r.samples = r.samples[:0]
	r.cursor = 0
}

func (r *ring) last() float64 {
	if len(r.samples) == 0 {
		return 0
	}
	return r.samples[(r.cursor-1+r.capacity)%r.capacity]
}

// at returns the i-th of the n most recent samples, oldest first.
// Before the first wrap cursor == len, so the same arithmetic holds.
func (r *ring) at(n, i int) float64 {
	return r.samples[(r.cursor-n+i+r.capacity)%r.capacity]
}

func (r *ring) clamp(n int) int {
	if n < 1 || n > len(r.samples) {
		return len(r.samples)
	}
	return n
}

func (r *ring) mean(n int) float64 {
	if len(r.samples) == 0 {
		return 0
	}

	n = r.clamp(n)
	sum := 0.0
	if n == len(r.samples) {
		for _, v := range r.samples {
			sum += v
		}
	} else {
		for i := 0; i < n; i++ {
			sum += r.at(n, i)
		}
	}
	return sum / float64(n)
}

func (r *ring) window(n int) []float64 {
	n = r.clamp(n)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = r.at(n, i)
	}
	return out
}
