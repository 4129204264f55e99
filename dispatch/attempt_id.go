package dispatch

import (
	uuid "github.com/nu7hatch/gouuid"
)

// generateAttemptID returns a fresh correlation id for one placement
// attempt's log lines. Falls back to the empty string if the uuid
// generator's entropy source is unavailable, which only ever happens on
// exotic platforms without /dev/urandom.
func generateAttemptID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
