package monitoring

import (
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

// StepMonitor tracks per-frame input metrics. Counters are atomic so the HUD
// can read them from Draw while Update writes them.
type StepMonitor struct {
	// Frame metrics
	frameCount atomic.Uint64
	stepTime   atomic.Uint64 // nanoseconds spent polling and folding

	// Event metrics
	eventsLastFrame atomic.Uint32
	eventsTotal     atomic.Uint64
	peakEvents      atomic.Uint32

	// Statistics
	mutex       sync.RWMutex
	avgStepTime float64
	startTime   time.Time

	// Configuration
	burstThreshold uint32
}

// NewStepMonitor creates a new step monitor
func NewStepMonitor() *StepMonitor {
	return &StepMonitor{
		startTime:      time.Now(),
		burstThreshold: 256,
	}
}

// StepTimer measures one frame's polling and folding
type StepTimer struct {
	monitor   *StepMonitor
	startTime time.Time
}

// StartStep begins step timing
func (sm *StepMonitor) StartStep() *StepTimer {
	return &StepTimer{
		monitor:   sm,
		startTime: time.Now(),
	}
}

// EndStep completes step timing and records how many events were folded
func (st *StepTimer) EndStep(events int) {
	stepTime := time.Since(st.startTime)
	m := st.monitor
	m.stepTime.Store(uint64(stepTime.Nanoseconds()))
	count := m.frameCount.Add(1)

	n := uint32(events)
	m.eventsLastFrame.Store(n)
	m.eventsTotal.Add(uint64(events))
	for {
		peak := m.peakEvents.Load()
		if n <= peak || m.peakEvents.CompareAndSwap(peak, n) {
			break
		}
	}

	// running mean
	m.mutex.Lock()
	m.avgStepTime += (float64(stepTime.Nanoseconds()) - m.avgStepTime) / float64(count)
	m.mutex.Unlock()
}

// StepMetrics is a snapshot of the monitor
type StepMetrics struct {
	Frames          uint64
	EventsLastFrame uint32
	PeakEvents      uint32
	EventsPerFrame  float64
	AvgStepTime     time.Duration
	MemoryUsageMB   uint64
}

// GetCurrentMetrics returns current metrics
func (sm *StepMonitor) GetCurrentMetrics() StepMetrics {
	sm.mutex.RLock()
	avg := sm.avgStepTime
	sm.mutex.RUnlock()

	frames := sm.frameCount.Load()
	perFrame := 0.0
	if frames > 0 {
		perFrame = float64(sm.eventsTotal.Load()) / float64(frames)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return StepMetrics{
		Frames:          frames,
		EventsLastFrame: sm.eventsLastFrame.Load(),
		PeakEvents:      sm.peakEvents.Load(),
		EventsPerFrame:  perFrame,
		AvgStepTime:     time.Duration(avg),
		MemoryUsageMB:   memStats.Alloc / 1024 / 1024,
	}
}

// Alert represents an input pipeline warning
type Alert struct {
	Type      string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// CheckAlerts reports event bursts and slow steps
func (sm *StepMonitor) CheckAlerts() []Alert {
	alerts := make([]Alert, 0)
	currentTime := time.Now()

	sm.mutex.RLock()
	threshold := sm.burstThreshold
	sm.mutex.RUnlock()

	if n := sm.eventsLastFrame.Load(); n > threshold {
		alerts = append(alerts, Alert{
			Type:      "event_burst",
			Message:   "Last frame folded an unusually large number of events",
			Value:     float64(n),
			Threshold: float64(threshold),
			Timestamp: currentTime,
		})
	}

	// A step slower than a 60 TPS tick stalls the game loop
	const slowStep = float64(time.Second / 60)
	if t := float64(sm.stepTime.Load()); t > slowStep {
		alerts = append(alerts, Alert{
			Type:      "slow_step",
			Message:   "Input step took longer than one tick",
			Value:     t,
			Threshold: slowStep,
			Timestamp: currentTime,
		})
	}

	return alerts
}

// SetBurstThreshold sets the events-per-frame count that raises an alert
func (sm *StepMonitor) SetBurstThreshold(n uint32) {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()
	sm.burstThreshold = n
}

// Uptime returns time since creation or the last Reset
func (sm *StepMonitor) Uptime() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return time.Since(sm.startTime)
}

// Reset resets all counters
func (sm *StepMonitor) Reset() {
	sm.frameCount.Store(0)
	sm.stepTime.Store(0)
	sm.eventsLastFrame.Store(0)
	sm.eventsTotal.Store(0)
	sm.peakEvents.Store(0)

	sm.mutex.Lock()
	sm.avgStepTime = 0
	sm.startTime = time.Now()
	sm.mutex.Unlock()
}
