package pet

import (
	"fmt"
	"math/rand"
	"time"
)

// Testable time and random functions
var (
	Now         = func() float64 { return float64(time.Now().UnixNano()) / 1e9 }
	RandFloat64 = rand.Float64
)

// Speed multiplier bounds
const (
	MinSpeed = 0.5
	MaxSpeed = 50.0
)

// ClampSpeed bounds the simulation speed multiplier.
func ClampSpeed(speed float64) float64 {
	if speed < MinSpeed {
		return MinSpeed
	}
	if speed > MaxSpeed {
		return MaxSpeed
	}
	return speed
}

// Carry accumulates dt into a fractional buffer and moves whole seconds
// into the integer counter. Integer seconds only advance on carry, so
// repeated small ticks never lose precision to drift.
func Carry(total *int, accum *float64, dt float64) {
	*accum += dt
	if *accum >= 1.0 {
		inc := int(*accum)
		*total += inc
		*accum -= float64(inc)
	}
}

// Clock converts wall-clock elapsed time into simulation delta-time.
type Clock struct {
	Speed float64
}

// NewClock returns a clock with the speed multiplier clamped to its bounds.
func NewClock(speed float64) Clock {
	return Clock{Speed: ClampSpeed(speed)}
}

// Advance computes the wall-clock delta since the pet's last tick, accrues
// real age, stamps the pet with the current time, and returns the scaled
// simulation delta. A clock that appears to run backwards yields zero.
func (c Clock) Advance(p *Pet) float64 {
	t := Now()
	dt := t - p.LastTick
	if dt < 0 {
		dt = 0
	}
	p.LastTick = t
	Carry(&p.AgeS, &p.AgeAccumS, dt)
	return dt * c.Speed
}

// FmtAge formats seconds into a short age string like "5d 12h" or "3h 45m".
func FmtAge(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	minutes, s := seconds/60, seconds%60
	hours, m := minutes/60, minutes%60
	days, h := hours/24, hours%24
	if days > 0 {
		return fmt.Sprintf("%dd %02dh", days, h)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %02dm", hours, m)
	}
	return fmt.Sprintf("%dm %02ds", m, s)
}
