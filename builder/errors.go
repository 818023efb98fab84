// SPDX-License-Identifier: MIT
// Package: shortestpath/builder
//
// errors.go - sentinel errors. Callers branch with errors.Is.
//
// Validation order inside constructors:
//   • ErrTooFewVertices     : size/domain checks first (n, rows, cols).
//   • ErrInvalidProbability : then probability ranges.
//   • ErrNeedRandSource     : then RNG presence for stochastic builders.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires WithSeed.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidCostRange indicates a cost range with a negative bound or hi < lo.
var ErrInvalidCostRange = errors.New("builder: invalid cost range")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
