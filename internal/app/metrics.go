package app

import (
	"fmt"
	"time"
)

// Metrics tracks frame and input counters for one run.
// It is owned by the event loop and is not safe for concurrent use.
type Metrics struct {
	frameCount   uint64
	frameTotalNs int64
	frameMinNs   int64
	frameMaxNs   int64
	lastFrameNs  int64

	keyCount    uint64
	resizeCount uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordFrame records how long a frame took to draw and flush.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	if m.frameCount == 0 || ns < m.frameMinNs {
		m.frameMinNs = ns
	}
	if ns > m.frameMaxNs {
		m.frameMaxNs = ns
	}
	m.frameCount++
	m.frameTotalNs += ns
	m.lastFrameNs = ns
}

// RecordKey records a handled key event.
func (m *Metrics) RecordKey() {
	m.keyCount++
}

// RecordResize records a handled resize event.
func (m *Metrics) RecordResize() {
	m.resizeCount++
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	var avg int64
	if m.frameCount > 0 {
		avg = m.frameTotalNs / int64(m.frameCount)
	}
	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     m.frameCount,
		AvgFrameTimeNs: avg,
		MinFrameTimeNs: m.frameMinNs,
		MaxFrameTimeNs: m.frameMaxNs,
		LastFrameNs:    m.lastFrameNs,
		KeyCount:       m.keyCount,
		ResizeCount:    m.resizeCount,
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	KeyCount       uint64
	ResizeCount    uint64
}

// AvgFPS returns the average frames per second.
func (s MetricsSnapshot) AvgFPS() float64 {
	if s.AvgFrameTimeNs == 0 {
		return 0
	}
	return 1e9 / float64(s.AvgFrameTimeNs)
}

// String formats the snapshot for the log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("frames=%d keys=%d resizes=%d frame_avg=%s frame_min=%s frame_max=%s uptime=%s",
		s.FrameCount, s.KeyCount, s.ResizeCount,
		time.Duration(s.AvgFrameTimeNs), time.Duration(s.MinFrameTimeNs), time.Duration(s.MaxFrameTimeNs),
		s.Uptime.Round(time.Millisecond))
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
