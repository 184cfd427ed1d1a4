// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/geograph/core"
)

// Bounds is a latitude/longitude box in decimal degrees.
type Bounds struct {
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

// JavaBounds roughly covers the island of Java.
var JavaBounds = Bounds{MinLat: -8.8, MinLon: 105.2, MaxLat: -5.8, MaxLon: 114.6}

const defaultNamePrefix = "N"

// Option configures a constructor.
type Option func(*config)

// config aggregates all builder knobs. Passed by value to constructors.
type config struct {
	rng        *rand.Rand
	bounds     Bounds
	namePrefix string
	directed   bool
	weightFn   func(r *rand.Rand, km float64) float64
	graphOpts  []core.GraphOption
}

func newConfig(opts ...Option) config {
	cfg := config{
		bounds:     JavaBounds,
		namePrefix: defaultNamePrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed uses a new math/rand source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand uses r as the random source. A nil r is ignored.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithBounds sets the box RandomGeo scatters nodes in.
func WithBounds(b Bounds) Option {
	return func(c *config) { c.bounds = b }
}

// WithNamePrefix sets the prefix of generated node names.
func WithNamePrefix(prefix string) Option {
	return func(c *config) { c.namePrefix = prefix }
}

// WithDirected makes RandomGeo try every ordered pair and insert one-way edges.
func WithDirected() Option {
	return func(c *config) { c.directed = true }
}

// WithWeightFn sets explicit edge weights computed from the random source and
// the great-circle distance between the endpoints.
func WithWeightFn(fn func(r *rand.Rand, km float64) float64) Option {
	return func(c *config) { c.weightFn = fn }
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}

func (c config) name(i int) string {
	return c.namePrefix + strconv.Itoa(i)
}
