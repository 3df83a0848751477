// SPDX-License-Identifier: MIT
// Functional options for CentralExtensionBasis.
// Option constructors panic on meaningless input; computations never panic.

package cocycle

// Option customises a computation.
type Option func(*config)

type config struct {
	weights []int
}

// WithWeights supplies the grading weight of every generator, indexed in
// parallel with the bracket table. Required in graded modes, ignored in
// Nilpotent mode. Panics on nil. The slice is copied.
func WithWeights(weights []int) Option {
	if weights == nil {
		panic("cocycle: WithWeights(nil)")
	}
	w := make([]int, len(weights))
	copy(w, weights)

	return func(c *config) {
		c.weights = w
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
