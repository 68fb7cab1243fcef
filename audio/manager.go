package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	// maxConcurrentBlips keeps a collision storm from clipping the mixer
	maxConcurrentBlips = 8
)

// Manager owns the speaker and mixes impact blips into it
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	active      int
	initialized bool
	muted       bool
}

// NewManager creates an uninitialized manager
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Failure is returned but the manager stays
// usable as a silent no-op
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// SetMuted toggles blip playback without touching the speaker
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports the current mute state
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// PlayImpact queues one impact blip pitched by speed. Silently dropped when
// uninitialized, muted, or at the concurrency cap.
// m.mu is never held across speaker.Lock: the done callback runs under the
// speaker lock and takes m.mu itself
func (m *Manager) PlayImpact(speed float64) {
	m.mu.Lock()
	if !m.initialized || m.muted || m.active >= maxConcurrentBlips {
		m.mu.Unlock()
		return
	}
	m.active++
	m.mu.Unlock()

	blip := newImpactBlip(speed, sampleRate)
	done := beep.Callback(func() {
		m.mu.Lock()
		m.active--
		m.mu.Unlock()
	})

	speaker.Lock()
	m.mixer.Add(beep.Seq(blip, done))
	speaker.Unlock()
}

// Cleanup stops playback
func (m *Manager) Cleanup() {
	m.mu.Lock()
	if !m.initialized {
		m.mu.Unlock()
		return
	}
	m.initialized = false
	m.mu.Unlock()

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
}
