// Package clock is the time source for run durations.
package clock

import "time"

var nowFunc = time.Now

func Now() time.Time {
	return nowFunc()
}

// Since is Now().Sub(start).
func Since(start time.Time) time.Duration {
	return Now().Sub(start)
}

// SetNowForTest overrides the clock source and returns a restore function.
func SetNowForTest(fn func() time.Time) func() {
	previous := nowFunc
	nowFunc = fn
	return func() {
		nowFunc = previous
	}
}
