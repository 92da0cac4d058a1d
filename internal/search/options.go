package search

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/cwbudde/tourclimb/internal/opt"
	"github.com/cwbudde/tourclimb/internal/tour"
)

// Strategy names a local search engine
const (
	StrategySweep  = "sweep"
	StrategySwap   = "swap"
	StrategyMayfly = "mayfly"
)

// Options configures a multi-start solve
type Options struct {
	// Restarts is how many random starting routes are climbed
	Restarts int `validate:"gt=0"`

	// Strategy selects the climber: sweep (default), swap or mayfly
	Strategy string `validate:"oneof=sweep swap mayfly"`

	// Patience stops the run after this many restarts without a relative
	// improvement of at least Threshold. Zero runs every restart.
	Patience  int     `validate:"gte=0"`
	Threshold float64 `validate:"gte=0,lt=1"`

	// Mayfly budget per restart, used by the mayfly strategy.
	// The mayfly adapter raises MayflyPop to opt.MinMayflyPopulation.
	MayflyIters int `validate:"gt=0"`
	MayflyPop   int

	// OnRestart, if set, is called after every restart
	OnRestart func(RestartInfo) `validate:"-"`
}

// RestartInfo describes one finished restart
type RestartInfo struct {
	Restart int
	Answer  tour.Answer
	Best    tour.Answer
}

// DefaultOptions returns options for a plain sweep run with the given restart count
func DefaultOptions(restarts int) Options {
	return Options{
		Restarts:    restarts,
		Strategy:    StrategySweep,
		Threshold:   0.001,
		MayflyIters: 100,
		MayflyPop:   opt.MinMayflyPopulation,
	}
}

// OptionsError reports invalid solve options
type OptionsError struct {
	Fields []string
	err    error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("invalid options: %v", e.err)
}

func (e *OptionsError) Unwrap() error {
	return e.err
}

var validate = validator.New()

// Validate checks option ranges
func (o Options) Validate() error {
	err := validate.Struct(o)
	if err == nil {
		return nil
	}

	oe := &OptionsError{err: err}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			oe.Fields = append(oe.Fields, fe.Field())
		}
	}
	return oe
}

// Climber returns the local search engine selected by Strategy
func (o Options) Climber() Climber {
	switch o.Strategy {
	case StrategySwap:
		return Swap{}
	case StrategyMayfly:
		return RandomKey{NewOptimizer: opt.MayflyFactory(o.MayflyIters, o.MayflyPop)}
	default:
		return Sweep{}
	}
}
