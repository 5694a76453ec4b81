package profiler

import (
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
)

// Stats is one profiler report.
type Stats struct {
	FPS          float64
	HeapMB       float64
	AllocRateMB  float64
	SysMB        float64
	GCCount      uint32
	LastPauseUs  uint64
	MaxPauseUs   uint64
	PhysicsTicks uint64
}

// Profiler tracks tick rate and memory statistics and reports them through logrus
// at a fixed interval.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	log            logrus.FieldLogger
	onReport       func(Stats)
	last           Stats
	now            func() time.Time
}

// ProfilerOption is a functional option for configuring a Profiler.
type ProfilerOption func(*Profiler)

// WithInterval sets how often stats are reported.
//
// Parameters:
//   - d: report interval
//
// Returns:
//   - ProfilerOption: functional option to set the interval
func WithInterval(d time.Duration) ProfilerOption {
	return func(p *Profiler) {
		p.updateInterval = d
	}
}

// WithLogger sets the logger reports are written to.
//
// Parameters:
//   - log: the logger
//
// Returns:
//   - ProfilerOption: functional option to set the logger
func WithLogger(log logrus.FieldLogger) ProfilerOption {
	return func(p *Profiler) {
		p.log = log
	}
}

// WithReportCallback registers a function receiving every report.
//
// Parameters:
//   - fn: the report callback
//
// Returns:
//   - ProfilerOption: functional option to set the callback
func WithReportCallback(fn func(Stats)) ProfilerOption {
	return func(p *Profiler) {
		p.onReport = fn
	}
}

// NewProfiler creates a new Profiler. Update interval defaults to 1 second and
// reports go to the logrus standard logger.
//
// Parameters:
//   - options: functional options
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(p)
	}
	if p.log == nil {
		p.log = logrus.StandardLogger()
	}
	p.lastTime = p.now()
	return p
}

// Tick should be called once per engine tick.
// Logs statistics when the update interval has elapsed: tick rate, heap usage,
// allocation rate, GC count and pause times, total memory.
//
// Parameters:
//   - physicsTicks: running total of physics ticks, reported as-is
//
// Returns:
//   - bool: true if stats were reported this tick, false otherwise
func (p *Profiler) Tick(physicsTicks uint64) bool {
	p.frameCount++
	currentTime := p.now()
	elapsed := currentTime.Sub(p.lastTime)
	if elapsed < p.updateInterval || elapsed <= 0 {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc

	s := Stats{
		FPS:          float64(p.frameCount) / elapsed.Seconds(),
		HeapMB:       float64(p.memStats.Alloc) / 1024 / 1024,
		AllocRateMB:  float64(allocDelta) / 1024 / 1024 / elapsed.Seconds(),
		SysMB:        float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:      p.memStats.NumGC,
		PhysicsTicks: physicsTicks,
	}
	if s.GCCount > 0 {
		// PauseNs is a circular buffer of the last 256 pauses.
		s.LastPauseUs = p.memStats.PauseNs[(s.GCCount-1)%256] / 1000
		start := p.lastGCCount
		if s.GCCount-start > 256 {
			start = s.GCCount - 256
		}
		for i := start; i < s.GCCount; i++ {
			if pause := p.memStats.PauseNs[i%256] / 1000; pause > s.MaxPauseUs {
				s.MaxPauseUs = pause
			}
		}
	}

	p.log.WithFields(logrus.Fields{
		"tps":          s.FPS,
		"heap_mb":      s.HeapMB,
		"alloc_mb_s":   s.AllocRateMB,
		"gc":           s.GCCount,
		"gc_last_us":   s.LastPauseUs,
		"gc_max_us":    s.MaxPauseUs,
		"sys_mb":       s.SysMB,
		"physics_tick": s.PhysicsTicks,
	}).Info("profiler")

	if p.onReport != nil {
		p.onReport(s)
	}
	p.last = s
	p.frameCount = 0
	p.lastTime = currentTime
	p.lastGCCount = s.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recent report.
func (p *Profiler) Last() Stats {
	return p.last
}
