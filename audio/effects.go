// Package audio synthesizes short procedural impact sounds for wall
// collisions. Entirely optional: initialization failure leaves the
// simulation silent but running.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// oscillator generates a raw sine wave for a bounded duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// newOscillator creates a sine streamer at freq for the given duration
func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping so blips start and end silent
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
	volume         float64
}

// newEnvelope wraps a streamer with linear attack and release ramps and a
// volume scale
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, volume float64, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
		volume:         volume,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		vol := e.volume
		if e.position < e.attackSamples {
			vol *= float64(e.position) / float64(e.attackSamples)
		} else if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol *= float64(remaining) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newImpactBlip maps impact speed to a short pitched blip: harder hits ring
// higher and slightly louder
func newImpactBlip(speed float64, rate beep.SampleRate) beep.Streamer {
	freq := 160 + math.Min(speed, 0.3)*1400
	vol := 0.25 + math.Min(speed, 0.3)*1.5

	const dur = 90 * time.Millisecond
	osc := newOscillator(freq, dur, rate)
	return newEnvelope(osc, dur, 4*time.Millisecond, 60*time.Millisecond, vol, rate)
}
