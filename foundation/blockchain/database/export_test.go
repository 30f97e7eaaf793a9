package database

import "time"

// SetClock replaces the wall clock used to stamp new blocks and returns a
// function that restores the previous clock.
func SetClock(clock func() time.Time) func() {
	prev := now
	now = clock
	return func() { now = prev }
}
