// Package mocks provides testify mocks for the adapter interfaces.
package mocks

import (
	"io"

	m "github.com/mouse-blink/fretwise/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockLayoutStore is a mock of adapter.LayoutStore.
type MockLayoutStore struct {
	mock.Mock
}

// NewMockLayoutStore creates a MockLayoutStore that asserts its expectations on cleanup.
func NewMockLayoutStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLayoutStore {
	ms := &MockLayoutStore{}
	ms.Test(t)
	t.Cleanup(func() { ms.AssertExpectations(t) })

	return ms
}

// List mocks LayoutStore.List.
func (ms *MockLayoutStore) List() ([]m.Instrument, error) {
	args := ms.Called()

	instruments, _ := args.Get(0).([]m.Instrument)

	return instruments, args.Error(1)
}

// Get mocks LayoutStore.Get.
func (ms *MockLayoutStore) Get(name string) (m.Instrument, error) {
	args := ms.Called(name)

	inst, _ := args.Get(0).(m.Instrument)

	return inst, args.Error(1)
}

// MockMIDIExporter is a mock of adapter.MIDIExporter.
type MockMIDIExporter struct {
	mock.Mock
}

// NewMockMIDIExporter creates a MockMIDIExporter that asserts its expectations on cleanup.
func NewMockMIDIExporter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockMIDIExporter {
	me := &MockMIDIExporter{}
	me.Test(t)
	t.Cleanup(func() { me.AssertExpectations(t) })

	return me
}

// Export mocks MIDIExporter.Export.
func (me *MockMIDIExporter) Export(path m.Path, result m.SearchResult) error {
	return me.Called(path, result).Error(0)
}

// Write mocks MIDIExporter.Write.
func (me *MockMIDIExporter) Write(w io.Writer, result m.SearchResult) error {
	return me.Called(w, result).Error(0)
}

