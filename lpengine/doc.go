// SPDX-License-Identifier: MIT
// Package lpengine abstracts the linear-programming backend consumed by the
// cutting-plane solver (package cutplane).
//
// The Engine interface models an incrementally maintained LP:
//
//   - a fixed set of bounded continuous columns with linear objective weights,
//   - a dynamic set of ">=" rows identified positionally (index in the model),
//   - a blocking Solve that reports a Status, after which the primal point
//     (column values and row activities) is readable.
//
// Two interchangeable backends are provided:
//
//   - Simplex — pure Go, built on gonum's optimize/convex/lp. The default;
//     no cgo, suitable for tests and small/medium instances.
//   - HiGHS — built on github.com/lanl/highs (cgo bindings to the HiGHS
//     solver). Preferred for large instances.
//
// Both backends share the same dense bookkeeping (see model): rows are added
// and deleted at indices, and the last successfully obtained primal point is
// retained so a StatusNumericalInstability solve leaves a usable iterate
// behind. Engines are NOT goroutine-safe; at most one Solve may be in flight.
package lpengine
