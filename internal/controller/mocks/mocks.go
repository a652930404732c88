// Package mocks provides testify mocks for the controller interfaces.
package mocks

import (
	m "github.com/mouse-blink/fretwise/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockUI is a mock of controller.UI.
type MockUI struct {
	mock.Mock
}

// NewMockUI creates a MockUI that asserts its expectations on cleanup.
func NewMockUI(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockUI {
	mu := &MockUI{}
	mu.Test(t)
	t.Cleanup(func() { mu.AssertExpectations(t) })

	return mu
}

// DisplayScale mocks UI.DisplayScale.
func (mu *MockUI) DisplayScale(base m.Pitch, name string, scale m.Scale) error {
	return mu.Called(base, name, scale).Error(0)
}

// DisplayChord mocks UI.DisplayChord.
func (mu *MockUI) DisplayChord(name string, chord m.Chord) error {
	return mu.Called(name, chord).Error(0)
}

// DisplayFingerings mocks UI.DisplayFingerings.
func (mu *MockUI) DisplayFingerings(result m.SearchResult, limit int) error {
	return mu.Called(result, limit).Error(0)
}

// DisplayInstruments mocks UI.DisplayInstruments.
func (mu *MockUI) DisplayInstruments(instruments []m.Instrument) error {
	return mu.Called(instruments).Error(0)
}
