package handlers

import "time"

// SetNow pins the clock used to split past and upcoming shows and returns
// a func restoring it.
func SetNow(t time.Time) func() {
	previous := now
	now = func() time.Time { return t }
	return func() { now = previous }
}
