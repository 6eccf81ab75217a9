// Package noise turns measured volatility into bounded perturbation envelopes
// and draws "noise-based values" from them.
//
// A Range is the closed interval [0, Max] with Max ∈ [0,1]. It is a magnitude
// cap for random variation, not a probability distribution: Value never
// leaves its target interval and collapses to the interval midpoint when the
// range is [0,0].
//
// Streams are plain *rand.Rand values seeded with a fixed seed. Stages that
// need randomness open their own stream, so each stage is reproducible on its
// own.
package noise
