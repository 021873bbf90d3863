// Package core defines the shared value type and capability interfaces for
// sequence-to-sequence components. Concrete encoders, decoders, and
// generators are supplied by callers; this package only fixes the contracts
// between them.
package core

// Encoder maps a source sequence of symbol representations (x1, ..., xn) to
// a sequence of continuous representations (z1, ..., zn) of the same
// length. How an implementation computes (attention, recurrence,
// convolution) is its own concern.
type Encoder interface {
	Encode(src *Representation) *Representation
}

// Decoder maps the encoder's output together with a target-side input
// sequence to decoder hidden states.
type Decoder interface {
	Decode(memory, tgt *Representation) *Representation
}

// Generator maps decoder hidden states to an output distribution over a
// vocabulary.
type Generator interface {
	Generate(hidden *Representation) *Representation
}
