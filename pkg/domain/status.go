package domain

import "time"

// State of the supervisor loop
type State string

// enum of supervisor states
const (
	StateAttempting State = "attempting"
	StateBackoff    State = "backoff"
	StateIdle       State = "idle"
)

// Status is a snapshot of the supervisor
type Status struct {
	State       State     `json:"state"`
	Attempts    int       `json:"attempts"` // attempts made in the current round
	Failures    int       `json:"failures"` // failures since start
	LastError   string    `json:"last_error,omitempty"`
	LastAttempt time.Time `json:"last_attempt"`
	LastSuccess time.Time `json:"last_success"`
	ImageURL    string    `json:"image_url,omitempty"`
	ImagePath   string    `json:"image_path,omitempty"`
}
