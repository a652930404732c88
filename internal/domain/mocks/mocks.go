// Package mocks provides testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"github.com/mouse-blink/fretwise/internal/domain"
	m "github.com/mouse-blink/fretwise/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

// NewMockWorkflow creates a MockWorkflow that asserts its expectations on cleanup.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mw := &MockWorkflow{}
	mw.Test(t)
	t.Cleanup(func() { mw.AssertExpectations(t) })

	return mw
}

// Scale mocks Workflow.Scale.
func (mw *MockWorkflow) Scale(args domain.ScaleArgs) error {
	return mw.Called(args).Error(0)
}

// Chord mocks Workflow.Chord.
func (mw *MockWorkflow) Chord(args domain.ChordArgs) error {
	return mw.Called(args).Error(0)
}

// Find mocks Workflow.Find.
func (mw *MockWorkflow) Find(ctx context.Context, args domain.FindArgs) error {
	return mw.Called(ctx, args).Error(0)
}

// Search mocks Workflow.Search.
func (mw *MockWorkflow) Search(ctx context.Context, args domain.FindArgs) (m.SearchResult, error) {
	ret := mw.Called(ctx, args)

	result, _ := ret.Get(0).(m.SearchResult)

	return result, ret.Error(1)
}

// Instruments mocks Workflow.Instruments.
func (mw *MockWorkflow) Instruments() error {
	return mw.Called().Error(0)
}

// MockFinder is a mock of domain.Finder.
type MockFinder struct {
	mock.Mock
}

// NewMockFinder creates a MockFinder that asserts its expectations on cleanup.
func NewMockFinder(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFinder {
	mf := &MockFinder{}
	mf.Test(t)
	t.Cleanup(func() { mf.AssertExpectations(t) })

	return mf
}

// Find mocks Finder.Find.
func (mf *MockFinder) Find(ctx context.Context, req domain.FindRequest) ([]m.Fingering, error) {
	ret := mf.Called(ctx, req)

	fingerings, _ := ret.Get(0).([]m.Fingering)

	return fingerings, ret.Error(1)
}
