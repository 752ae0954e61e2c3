// Package mocks provides mock implementations of core interfaces for testing.
package mocks

import (
	"context"
	"boostgraph/internal/types"

	"github.com/stretchr/testify/mock"
)

// MockCommandRunner is a mock implementation of types.CommandRunner
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(ctx context.Context, spec types.CommandSpec) (types.CommandResult, error) {
	args := m.Called(ctx, spec)
	if args.Get(0) == nil {
		return types.CommandResult{}, args.Error(1)
	}
	return args.Get(0).(types.CommandResult), args.Error(1)
}

// MockGraphBuilder is a mock implementation of types.GraphBuilder
type MockGraphBuilder struct {
	mock.Mock
}

func (m *MockGraphBuilder) Build(ctx context.Context, params types.GraphParams, env []string) (types.GraphResult, error) {
	args := m.Called(ctx, params, env)
	if args.Get(0) == nil {
		return types.GraphResult{}, args.Error(1)
	}
	return args.Get(0).(types.GraphResult), args.Error(1)
}
