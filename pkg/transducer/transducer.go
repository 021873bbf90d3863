// Package transducer defines the encoder/decoder/generator composition at
// the heart of a sequence-to-sequence architecture, as set out in the paper
// "Attention is all you need" at https://arxiv.org/pdf/1706.03762.pdf.
package transducer

import "github.com/nlpgo/transducer/pkg/core"

// SequenceTransducer bundles an encoder, a decoder, and an output generator
// behind a single handle. The intended order of invocation is: encode the
// source sequence, decode the target-side input against the encoded memory,
// then generate an output distribution from the decoder's hidden states.
// The container performs none of these steps itself; it only holds the
// parts, which live exactly as long as it does.
type SequenceTransducer struct {
	encoder   core.Encoder
	decoder   core.Decoder
	generator core.Generator
}

// New creates a SequenceTransducer from three fully constructed components.
// The components are stored as supplied: no copies are made, no calls are
// performed on them, and no compatibility check runs between them. A
// dimensional mismatch between encoder and decoder is not detected here; it
// surfaces only when the components are eventually invoked.
func New(encoder core.Encoder, decoder core.Decoder, generator core.Generator) *SequenceTransducer {
	return &SequenceTransducer{
		encoder:   encoder,
		decoder:   decoder,
		generator: generator,
	}
}

// Encoder returns the stored encoder.
func (t *SequenceTransducer) Encoder() core.Encoder { return t.encoder }

// Decoder returns the stored decoder.
func (t *SequenceTransducer) Decoder() core.Decoder { return t.decoder }

// Generator returns the stored generator.
func (t *SequenceTransducer) Generator() core.Generator { return t.generator }
