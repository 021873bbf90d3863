// Package testutil provides shared testify mocks for the sequence
// component interfaces.
package testutil

import (
	"github.com/nlpgo/transducer/pkg/core"
	"github.com/stretchr/testify/mock"
)

var (
	_ core.Encoder   = (*MockEncoder)(nil)
	_ core.Decoder   = (*MockDecoder)(nil)
	_ core.Generator = (*MockGenerator)(nil)
	_ core.Encoder   = (*MockComponent)(nil)
	_ core.Decoder   = (*MockComponent)(nil)
	_ core.Generator = (*MockComponent)(nil)
)

// MockEncoder is a mock implementation of the core.Encoder interface.
type MockEncoder struct {
	mock.Mock
}

func (m *MockEncoder) Encode(src *core.Representation) *core.Representation {
	args := m.Called(src)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*core.Representation)
}

// MockDecoder is a mock implementation of the core.Decoder interface.
type MockDecoder struct {
	mock.Mock
}

func (m *MockDecoder) Decode(memory, tgt *core.Representation) *core.Representation {
	args := m.Called(memory, tgt)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*core.Representation)
}

// MockGenerator is a mock implementation of the core.Generator interface.
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(hidden *core.Representation) *core.Representation {
	args := m.Called(hidden)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*core.Representation)
}

// MockComponent satisfies all three component interfaces at once, for tests
// that supply one value to more than one slot.
type MockComponent struct {
	mock.Mock
}

func (m *MockComponent) Encode(src *core.Representation) *core.Representation {
	args := m.Called(src)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*core.Representation)
}

func (m *MockComponent) Decode(memory, tgt *core.Representation) *core.Representation {
	args := m.Called(memory, tgt)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*core.Representation)
}

func (m *MockComponent) Generate(hidden *core.Representation) *core.Representation {
	args := m.Called(hidden)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*core.Representation)
}
