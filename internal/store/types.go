package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/cwbudde/tourclimb/internal/tour"
)

// RunConfig records the inputs of a solve
type RunConfig struct {
	CityFile  string `json:"cityFile"`
	CityCount int    `json:"cityCount"`
	Restarts  int    `json:"restarts"`
	Strategy  string `json:"strategy"`
	Seed      int64  `json:"seed"`
}

// Result is a finished solve as stored on disk
type Result struct {
	ID string `json:"id"`

	// Route and Distance are the best tour; Found is false when Distance
	// is the no-improvement sentinel rather than a measured length.
	Route    []int   `json:"route"`
	Distance float64 `json:"distance"`
	Found    bool    `json:"found"`

	InitialDistance float64       `json:"initialDistance"`
	Restarts        int           `json:"restarts"`
	Converged       bool          `json:"converged,omitempty"`
	Elapsed         time.Duration `json:"elapsed"`
	Timestamp       time.Time     `json:"timestamp"`

	Config RunConfig `json:"config"`
}

// ResultInfo is the listing view of a Result, without the route
type ResultInfo struct {
	ID        string    `json:"id"`
	Distance  float64   `json:"distance"`
	Restarts  int       `json:"restarts"`
	Timestamp time.Time `json:"timestamp"`
	Strategy  string    `json:"strategy"`
	CityCount int       `json:"cityCount"`
	CityFile  string    `json:"cityFile"`
}

// NewResult creates a result with a fresh ID and the current time
func NewResult(config RunConfig, best tour.Answer, initial float64, restarts int) *Result {
	return &Result{
		ID:              uuid.New().String(),
		Route:           append([]int(nil), best.Route...),
		Distance:        best.Distance,
		Found:           best.Found(),
		InitialDistance: initial,
		Restarts:        restarts,
		Timestamp:       time.Now(),
		Config:          config,
	}
}

// ToInfo converts a Result to its listing view
func (r *Result) ToInfo() ResultInfo {
	return ResultInfo{
		ID:        r.ID,
		Distance:  r.Distance,
		Restarts:  r.Restarts,
		Timestamp: r.Timestamp,
		Strategy:  r.Config.Strategy,
		CityCount: r.Config.CityCount,
		CityFile:  r.Config.CityFile,
	}
}

// Validate checks that a stored result is self-consistent
func (r *Result) Validate() error {
	if r.ID == "" {
		return &ValidationError{Field: "ID", Reason: "cannot be empty"}
	}
	if r.Config.CityCount < 2 {
		return &ValidationError{Field: "Config.CityCount", Reason: "must be at least 2"}
	}
	if err := tour.ValidateRoute(r.Route, r.Config.CityCount); err != nil {
		return &ValidationError{Field: "Route", Reason: err.Error()}
	}
	if r.Distance < 0 {
		return &ValidationError{Field: "Distance", Reason: "cannot be negative"}
	}
	if r.Restarts <= 0 {
		return &ValidationError{Field: "Restarts", Reason: "must be positive"}
	}
	if r.Config.Restarts > 0 && r.Restarts > r.Config.Restarts {
		return &ValidationError{
			Field:  "Restarts",
			Reason: fmt.Sprintf("ran %d of %d configured", r.Restarts, r.Config.Restarts),
		}
	}
	if r.Timestamp.IsZero() {
		return &ValidationError{Field: "Timestamp", Reason: "cannot be zero"}
	}
	return nil
}

// ValidationError represents a result validation error
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + " " + e.Reason
}
