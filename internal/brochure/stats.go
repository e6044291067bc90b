package brochure

import (
	"sort"
	"sync"
	"time"
)

type statSample struct {
	at  time.Time
	dur time.Duration
}

// StatsSnapshot is a point-in-time aggregate of pipeline latencies,
// reported in milliseconds.
type StatsSnapshot struct {
	Count int     `json:"count"`
	MinMs float64 `json:"min_ms"`
	MaxMs float64 `json:"max_ms"`
	AvgMs float64 `json:"avg_ms"`
	P50Ms float64 `json:"p50_ms"`
	P95Ms float64 `json:"p95_ms"`
	P99Ms float64 `json:"p99_ms"`
}

// Stats tracks recent brochure-processing durations within a rolling
// window. Samples arrive in chronological order, so expiry only needs to
// find the first sample still inside the window.
type Stats struct {
	mu      sync.Mutex
	samples []statSample
	window  time.Duration
}

func NewStats(window time.Duration) *Stats {
	if window <= 0 {
		window = time.Hour
	}
	return &Stats{window: window}
}

// Record adds one pipeline duration to the window.
func (s *Stats) Record(d time.Duration) {
	if d < 0 {
		d = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropExpiredLocked(now)
	s.samples = append(s.samples, statSample{at: now, dur: d})
}

// Snapshot aggregates the samples still inside the window.
func (s *Stats) Snapshot() StatsSnapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dropExpiredLocked(now)
	if len(s.samples) == 0 {
		return StatsSnapshot{}
	}

	durs := make([]time.Duration, len(s.samples))
	var total time.Duration
	for i, sm := range s.samples {
		durs[i] = sm.dur
		total += sm.dur
	}
	sort.Slice(durs, func(i, j int) bool { return durs[i] < durs[j] })

	return StatsSnapshot{
		Count: len(durs),
		MinMs: ms(durs[0]),
		MaxMs: ms(durs[len(durs)-1]),
		AvgMs: ms(total) / float64(len(durs)),
		P50Ms: ms(quantile(durs, 0.50)),
		P95Ms: ms(quantile(durs, 0.95)),
		P99Ms: ms(quantile(durs, 0.99)),
	}
}

func (s *Stats) dropExpiredLocked(now time.Time) {
	cutoff := now.Add(-s.window)
	i := sort.Search(len(s.samples), func(i int) bool {
		return !s.samples[i].at.Before(cutoff)
	})
	if i == 0 {
		return
	}
	s.samples = append(s.samples[:0], s.samples[i:]...)
}

// quantile linearly interpolates between the two nearest sorted samples.
func quantile(sorted []time.Duration, q float64) time.Duration {
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + time.Duration(frac*float64(sorted[lo+1]-sorted[lo]))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
