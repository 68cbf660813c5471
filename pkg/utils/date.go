package utils

import "time"

// TimeNowUTC returns the current time in UTC, the timezone used for all
// persisted timestamps and schedule evaluation.
func TimeNowUTC() time.Time {
	return time.Now().UTC()
}
