// Package cutplane - the cutting-plane orchestrator.
//
// Solve drives the iterative tightening loop over the linear relaxation:
//
//	Solving → Separating → (Cutting | Rounding) → Solving | Converged
//
// Semantics per state:
//   - Solving: run the LP engine. Fatal statuses abort the solve
//     (ErrEngineFatal wrapping the status); "numerical instability" is a
//     warning — continue on the last available iterate. An optimal solve
//     tightens the upper bound monotonically.
//   - Separating: search the relaxation point for a minimal non-PSD core.
//     An empty core means the point is exact — Converged. Otherwise the
//     constraint generator is consulted; a generator failure increments a
//     consecutive-failure counter (limit ⇒ Rounding, otherwise re-separate
//     with a fresh random order).
//   - Cutting: prune high-slack rows, install the generated inequality with
//     its local pair indices mapped back to global relaxation variables,
//     return to Solving.
//   - Converged: extract the integral assignment directly from the point
//     (first variable fixed to +1 as the reference sign).
//   - Rounding: PSD-correct the correlation matrix and sample Gaussian
//     hyperplanes, keeping the best-scoring trial. Terminates the solve with
//     a heuristic (non-certified) result.
//
// Design principles (shared across the module):
//   - Deterministic: one seedable RNG per solve, shared by separation and
//     rounding; no time-based randomness.
//   - Strict sentinels from types.go; no panics on user input.
//   - Structured control flow: an explicit state enum with a loop + switch.
package cutplane

import (
	"fmt"

	"github.com/katalvlaran/clqo/lpengine"
)

// solveState enumerates the orchestrator's states.
type solveState int

const (
	stateSolving solveState = iota
	stateSeparating
	stateCutting
	stateRounding
	stateConverged
)

// Solve runs the cutting-plane algorithm with the default pure-Go simplex
// engine and the eigenvector-cut generator.
//
// Errors: ErrInvalidProblem, ErrBadOptions, ErrEngineFatal (wrapped with the
// engine status), ErrEigenFailed.
func Solve(p Problem, opts Options) (Result, error) {
	return SolveWithEngine(p, lpengine.NewSimplex(), EigenCut{Tol: opts.EigenTol}, opts)
}

// SolveWithEngine runs the cutting-plane algorithm against a caller-supplied
// LP engine and constraint generator.
//
// Contracts:
//   - p != nil with N() >= 1; eng and gen non-nil.
//   - eng is used exclusively by this solve (single-threaded, blocking).
//   - The returned Result.Assignment is exclusively owned by the caller.
func SolveWithEngine(p Problem, eng lpengine.Engine, gen ConstraintGenerator, opts Options) (Result, error) {
	// Stage 1 - validation.
	if p == nil || p.N() < 1 {
		return Result{}, ErrInvalidProblem
	}
	if eng == nil {
		return Result{}, ErrNilEngine
	}
	if gen == nil {
		return Result{}, ErrNilGenerator
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	// Stage 2 - shared deterministic RNG and component setup.
	var (
		rng = rngFromSeed(opts.Seed)
		sep = &oracle{tol: opts.EigenTol, rng: rng}
		rd  = &rounder{trials: opts.RoundingTrials, rng: rng}
	)
	rel, err := newRelaxation(p, eng)
	if err != nil {
		return Result{}, err
	}

	// Stage 3 - the state machine.
	var (
		state    = stateSolving
		failures int // consecutive generator failures
		iters    int // completed Solving passes
		cuts     int // accepted cutting-plane rows
		core     []int
		coefs    []float64
		rhs      float64
		ok       bool
	)
	for {
		switch state {
		case stateSolving:
			// Iteration budget is checked at the top of every Solving pass;
			// exhaustion still yields an assignment through Rounding.
			if opts.MaxIterations > 0 && iters >= opts.MaxIterations {
				state = stateRounding

				continue
			}
			iters++
			if st := rel.solve(); st.Fatal() {
				return Result{}, fmt.Errorf("%w: %s", ErrEngineFatal, st)
			}
			state = stateSeparating

		case stateSeparating:
			core = sep.findCore(rel)
			if len(core) == 0 {
				state = stateConverged

				continue
			}
			coefs, rhs, ok = gen.FindConstraint(rel.submatrix(core))
			if !ok {
				failures++
				if failures >= opts.ConstraintFailLimit {
					state = stateRounding
				}
				// Otherwise stay in Separating: a fresh random core may
				// expose a different, separable violation.

				continue
			}
			failures = 0
			state = stateCutting

		case stateCutting:
			rel.pruneSlack(opts.SlackThreshold)
			if err = rel.addCut(core, coefs, rhs); err != nil {
				return Result{}, err
			}
			cuts++
			state = stateSolving

		case stateRounding:
			assign, score, rerr := rd.round(p, rel.fullMatrix())
			if rerr != nil {
				return Result{}, rerr
			}
			rel.recordFeasible(score)

			return Result{
				Assignment:  assign,
				Score:       score,
				LowerBound:  rel.lowerBound,
				UpperBound:  rel.upperBound,
				Exact:       false,
				Iterations:  iters,
				CutsApplied: cuts,
			}, nil

		case stateConverged:
			assign := extractAssignment(rel)
			score := p.Score(assign)
			rel.recordFeasible(score)

			return Result{
				Assignment:  assign,
				Score:       score,
				LowerBound:  rel.lowerBound,
				UpperBound:  rel.upperBound,
				Exact:       true,
				Iterations:  iters,
				CutsApplied: cuts,
			}, nil
		}
	}
}

// extractAssignment reads the integral assignment off a PSD-certified extreme
// point: the first variable fixes the reference sign (+1); every other
// variable i takes the sign of the pair value (0, i), which sits at ±1 at
// such a point (M_{0,i} ≈ sign(0)·sign(i)).
func extractAssignment(rel *relaxation) []float64 {
	var (
		n      = rel.prob.N()
		assign = make([]float64, n)
		i      int
		val    float64
	)
	assign[0] = 1
	for i = 1; i < n; i++ {
		val, _ = rel.value(0, i)
		if val >= 0 {
			assign[i] = 1
		} else {
			assign[i] = -1
		}
	}

	return assign
}
