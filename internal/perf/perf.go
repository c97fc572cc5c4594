// Package perf collects frame and tick timings when DRAGSCROLL_PROFILE is set.
package perf

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/andyrewlee/dragscroll/internal/logging"
)

const (
	sampleWindow      = 128
	defaultIntervalMs = 5000
)

// StatSnapshot summarizes the samples recorded under one name.
type StatSnapshot struct {
	Name  string
	Count int64
	Avg   time.Duration
	Max   time.Duration
	P95   time.Duration
}

// CounterSnapshot is the value a counter reached since the last snapshot.
type CounterSnapshot struct {
	Name  string
	Value int64
}

type stat struct {
	count   int64
	total   time.Duration
	max     time.Duration
	samples []time.Duration
	next    int
	full    bool
}

var (
	enabled     atomic.Bool
	logInterval atomic.Int64
	lastLog     atomic.Int64

	mu       sync.Mutex
	stats    = map[string]*stat{}
	counters = map[string]int64{}
)

func init() {
	enabled.Store(envEnabled(os.Getenv("DRAGSCROLL_PROFILE")))
	logInterval.Store(int64(envInterval(os.Getenv("DRAGSCROLL_PROFILE_INTERVAL_MS"))))
}

// Enabled reports whether profiling is on.
func Enabled() bool {
	return enabled.Load()
}

// Time returns a func that records the elapsed time under name.
func Time(name string) func() {
	if !Enabled() {
		return func() {}
	}
	start := time.Now()
	return func() { Record(name, time.Since(start)) }
}

// Record adds one duration sample.
func Record(name string, d time.Duration) {
	if !Enabled() {
		return
	}
	mu.Lock()
	s, ok := stats[name]
	if !ok {
		s = &stat{samples: make([]time.Duration, sampleWindow)}
		stats[name] = s
	}
	s.count++
	s.total += d
	s.max = max(s.max, d)
	s.samples[s.next] = d
	s.next++
	if s.next == len(s.samples) {
		s.next = 0
		s.full = true
	}
	mu.Unlock()
	maybeLog()
}

// Count bumps a named counter.
func Count(name string, delta int64) {
	if !Enabled() {
		return
	}
	mu.Lock()
	counters[name] += delta
	mu.Unlock()
	maybeLog()
}

// Snapshot returns everything recorded since the previous snapshot and
// resets it.
func Snapshot() ([]StatSnapshot, []CounterSnapshot) {
	mu.Lock()
	defer mu.Unlock()

	statsOut := make([]StatSnapshot, 0, len(stats))
	for name, s := range stats {
		if s.count == 0 {
			continue
		}
		n := s.next
		if s.full {
			n = len(s.samples)
		}
		statsOut = append(statsOut, StatSnapshot{
			Name:  name,
			Count: s.count,
			Avg:   s.total / time.Duration(s.count),
			Max:   s.max,
			P95:   p95(s.samples[:n]),
		})
		delete(stats, name)
	}
	countersOut := make([]CounterSnapshot, 0, len(counters))
	for name, v := range counters {
		if v != 0 {
			countersOut = append(countersOut, CounterSnapshot{Name: name, Value: v})
		}
		delete(counters, name)
	}
	sort.Slice(statsOut, func(i, j int) bool { return statsOut[i].Name < statsOut[j].Name })
	sort.Slice(countersOut, func(i, j int) bool { return countersOut[i].Name < countersOut[j].Name })
	return statsOut, countersOut
}

// Flush logs a summary now. reason is appended to the log prefix.
func Flush(reason string) {
	if !Enabled() {
		return
	}
	prefix := "PERF SUMMARY"
	if strings.TrimSpace(reason) != "" {
		prefix = fmt.Sprintf("PERF SUMMARY %s", reason)
	}
	write(prefix)
}

func maybeLog() {
	interval := time.Duration(logInterval.Load())
	if interval <= 0 {
		return
	}
	now := time.Now().UnixNano()
	last := lastLog.Load()
	if last != 0 && time.Duration(now-last) < interval {
		return
	}
	if !lastLog.CompareAndSwap(last, now) {
		return
	}
	write("PERF")
}

func write(prefix string) {
	statsOut, countersOut := Snapshot()
	for _, s := range statsOut {
		logging.Info("%s %s count=%d avg=%s p95=%s max=%s", prefix, s.Name, s.Count, s.Avg, s.P95, s.Max)
	}
	for _, c := range countersOut {
		logging.Info("%s %s count=%d", prefix, c.Name, c.Value)
	}
}

func p95(samples []time.Duration) time.Duration {
	n := len(samples)
	if n == 0 {
		return 0
	}
	sorted := make([]time.Duration, n)
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	pos := int(math.Ceil(0.95*float64(n))) - 1
	return sorted[max(0, min(pos, n-1))]
}

func envEnabled(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "0", "false", "no":
		return false
	}
	return true
}

func envInterval(raw string) time.Duration {
	ms := defaultIntervalMs
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && v > 0 {
		ms = v
	}
	return time.Duration(ms) * time.Millisecond
}

// EnableForTest turns collection on without periodic logging and returns a
// func that restores the previous settings.
func EnableForTest() func() {
	prevEnabled := enabled.Load()
	prevInterval := logInterval.Load()
	enabled.Store(true)
	logInterval.Store(0)
	return func() {
		enabled.Store(prevEnabled)
		logInterval.Store(prevInterval)
	}
}
