package gametime

import (
	"fmt"
	"sync"
	"time"
)

const (
	HoursPerDay = 24

	// DefaultHourLength is the real duration of one in-game hour
	DefaultHourLength = 3 * time.Second
)

// GameClock is the discrete in-game time source. Real elapsed time
// feeds an accumulator; every time it fills one hour-length the clock
// crosses an hour boundary, wrapping hour 23 to 0 with a day increment.
type GameClock struct {
	mu         sync.RWMutex
	day        int
	hour       int
	accum      time.Duration
	hourLength time.Duration
}

// NewGameClock creates a clock at day 0, hour 0. A non-positive
// hourLength falls back to DefaultHourLength.
func NewGameClock(hourLength time.Duration) *GameClock {
	if hourLength <= 0 {
		hourLength = DefaultHourLength
	}
	return &GameClock{hourLength: hourLength}
}

// Day returns the current in-game day
func (gc *GameClock) Day() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return gc.day
}

// Hour returns the current in-game hour (0-23)
func (gc *GameClock) Hour() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return gc.hour
}

// Time returns the absolute in-game time in hours since the game started
func (gc *GameClock) Time() int {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return gc.day*HoursPerDay + gc.hour
}

// Advance feeds real elapsed time into the accumulator and returns the
// number of hour boundaries crossed (usually 0 or 1; more after a stall)
func (gc *GameClock) Advance(elapsed time.Duration) int {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	gc.accum += elapsed
	crossed := 0
	for gc.accum >= gc.hourLength {
		gc.accum -= gc.hourLength
		gc.advanceHourLocked()
		crossed++
	}
	return crossed
}

// AdvanceHour crosses exactly one hour boundary, ignoring the
// accumulator. Used by tests and the headless simulator.
func (gc *GameClock) AdvanceHour() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.advanceHourLocked()
}

func (gc *GameClock) advanceHourLocked() {
	if gc.hour == HoursPerDay-1 {
		gc.hour = 0
		gc.day++
	} else {
		gc.hour++
	}
}

// Reset returns the clock to day 0, hour 0 with an empty accumulator
func (gc *GameClock) Reset() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.day = 0
	gc.hour = 0
	gc.accum = 0
}

// String returns a formatted clock reading (e.g. "Day 2, 13:00")
func (gc *GameClock) String() string {
	gc.mu.RLock()
	defer gc.mu.RUnlock()
	return fmt.Sprintf("Day %d, %02d:00", gc.day, gc.hour)
}

// TimeOfDay returns a word describing the current period, used by
// presentation layers
func (gc *GameClock) TimeOfDay() string {
	hour := gc.Hour()
	switch {
	case hour < 6:
		return "night"
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

// DurationDays returns the whole days in a duration given in hours
func DurationDays(hours int) int {
	return hours / HoursPerDay
}

// DurationHours returns the leftover hours after whole days are removed
func DurationHours(hours int) int {
	return hours % HoursPerDay
}
