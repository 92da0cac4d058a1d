package tour

import (
	"errors"
	"math"
)

// MaxCities is the largest city count a solve accepts
const MaxCities = 100

// NoImprovement is the sentinel distance a search starts from.
// An Answer still carrying it never recorded a real tour length.
const NoImprovement = 1.0e10

var (
	// ErrTooFewCities is returned when fewer than two cities are supplied
	ErrTooFewCities = errors.New("tour: at least 2 cities are required")

	// ErrTooManyCities is returned when more than MaxCities cities are supplied
	ErrTooManyCities = errors.New("tour: too many cities")

	// ErrInvalidRoute is returned when a route is not a permutation of all city indices
	ErrInvalidRoute = errors.New("tour: route is not a permutation of the cities")

	// ErrTruncatedFile is returned when a city file ends before all cities are read
	ErrTruncatedFile = errors.New("tour: truncated city file")
)

// City is an integer map coordinate
type City struct {
	X, Y int
}

// Distance returns the Euclidean distance between two cities
func Distance(a, b City) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Answer pairs a route with its closed-tour length.
// Answers compare by Distance only; lower is better.
type Answer struct {
	Route    []int   `json:"route"`
	Distance float64 `json:"distance"`
}

// NewAnswer returns an Answer with no route and the sentinel distance
func NewAnswer() Answer {
	return Answer{Distance: NoImprovement}
}

// Found reports whether the answer holds a measured tour length
// rather than the NoImprovement sentinel.
func (a Answer) Found() bool {
	return a.Distance < NoImprovement
}

// Better reports whether a is strictly shorter than other
func (a Answer) Better(other Answer) bool {
	return a.Distance < other.Distance
}

// Clone returns a copy of the answer that shares no memory with a
func (a Answer) Clone() Answer {
	return Answer{
		Route:    append([]int(nil), a.Route...),
		Distance: a.Distance,
	}
}
