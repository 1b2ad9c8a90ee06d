// Package cutplane: solve configuration.
package cutplane

// Default knobs. Tolerances and limits mirror the long-standing values of
// LP-based PSD separation; all of them are overridable through Options.
const (
	// DefaultEigenTol is the PSD tolerance: an eigenvalue below -DefaultEigenTol
	// counts as a violation, in both separation phases.
	DefaultEigenTol = 1e-5

	// DefaultRoundingTrials is the number of independent Gaussian hyperplane
	// samples drawn by the rounder.
	DefaultRoundingTrials = 20

	// DefaultConstraintFailLimit is the number of *consecutive* generator
	// failures tolerated before falling back to rounding.
	DefaultConstraintFailLimit = 5

	// DefaultSlackThreshold prunes rows whose slack exceeds it before a new
	// cut is installed. Untuned heuristic; see Options.SlackThreshold.
	DefaultSlackThreshold = 0.99
)

// Options configures a cutting-plane solve.
//
// Seed                — RNG seed shared by separation and rounding
//
//	(0 ⇒ fixed internal default; see rng.go).
//
// EigenTol            — PSD violation tolerance (> 0).
// RoundingTrials      — hyperplane samples to draw (>= 1).
// ConstraintFailLimit — consecutive generator failures before rounding (>= 1).
// SlackThreshold      — row-pruning slack threshold (>= 0). A heuristic
//
//	bound-size control: larger keeps more rows, smaller
//	risks discarding a still-useful constraint.
//
// MaxIterations       — Solving-pass budget, checked at the top of each pass
//
//	(0 ⇒ unlimited). Exhaustion terminates through the
//	rounding path so an assignment is still produced.
type Options struct {
	Seed                int64
	EigenTol            float64
	RoundingTrials      int
	ConstraintFailLimit int
	SlackThreshold      float64
	MaxIterations       int
}

// DefaultOptions returns Options with the package defaults and Seed 0
// (deterministic internal stream).
func DefaultOptions() Options {
	return Options{
		Seed:                0,
		EigenTol:            DefaultEigenTol,
		RoundingTrials:      DefaultRoundingTrials,
		ConstraintFailLimit: DefaultConstraintFailLimit,
		SlackThreshold:      DefaultSlackThreshold,
		MaxIterations:       0,
	}
}

// validateOptions checks internal consistency; only ErrBadOptions is returned.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.EigenTol <= 0 {
		return ErrBadOptions
	}
	if opts.RoundingTrials < 1 {
		return ErrBadOptions
	}
	if opts.ConstraintFailLimit < 1 {
		return ErrBadOptions
	}
	if opts.SlackThreshold < 0 {
		return ErrBadOptions
	}
	if opts.MaxIterations < 0 {
		return ErrBadOptions
	}

	return nil
}
