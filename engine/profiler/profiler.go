package profiler

import (
	"runtime"
	"sort"
	"sync"
	"time"
)

// frameWindow is the number of frames averaged by FrameTimer.
const frameWindow = 120

// FrameTimer keeps a rolling window of frame durations.
type FrameTimer struct {
	samples [frameWindow]time.Duration
	n, next int
	last    time.Time
	frames  int
}

// Tick records the end of a frame at now.
func (t *FrameTimer) Tick(now time.Time) {
	t.frames++
	if !t.last.IsZero() {
		t.samples[t.next] = now.Sub(t.last)
		t.next = (t.next + 1) % frameWindow
		if t.n < frameWindow {
			t.n++
		}
	}
	t.last = now
}

func (t *FrameTimer) Frames() int { return t.frames }

// Average is the mean frame duration over the window.
func (t *FrameTimer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.samples[:t.n] {
		sum += d
	}
	return sum / time.Duration(t.n)
}

func (t *FrameTimer) FPS() float64 {
	avg := t.Average()
	if avg <= 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}

// Scope accumulates the time spent in a named section.
type Scope struct {
	Name  string
	Calls int
	Total time.Duration
}

func (s Scope) Mean() time.Duration {
	if s.Calls == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Calls)
}

var (
	mu     sync.Mutex
	scopes = map[string]*Scope{}
)

// Start begins a scope and returns an end func to be deferred.
func Start(name string) func() {
	begin := time.Now()
	return func() {
		d := time.Since(begin)
		mu.Lock()
		s, ok := scopes[name]
		if !ok {
			s = &Scope{Name: name}
			scopes[name] = s
		}
		s.Calls++
		s.Total += d
		mu.Unlock()
	}
}

// Scopes returns the recorded scopes sorted by name.
func Scopes() []Scope {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Scope, 0, len(scopes))
	for _, s := range scopes {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Reset forgets all scopes.
func Reset() {
	mu.Lock()
	scopes = map[string]*Scope{}
	mu.Unlock()
}

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Alloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int {
	return runtime.NumGoroutine()
}
