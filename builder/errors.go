// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewNodes indicates a node count below the constructor minimum.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrInvalidProbability indicates an edge probability outside [0, 1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidBounds indicates a bounding box with min > max on either axis.
var ErrInvalidBounds = errors.New("builder: invalid bounds")
