package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/hayeah/ccdb/namespace"
)

// MockProvider implements namespace.Provider for testing across packages
type MockProvider struct {
	mock.Mock
}

var _ namespace.Provider = (*MockProvider)(nil)

func (m *MockProvider) GetDirectory(ctx context.Context, absPath string) (*namespace.Directory, error) {
	args := m.Called(ctx, absPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*namespace.Directory), args.Error(1)
}

func (m *MockProvider) SearchDirectories(ctx context.Context, pattern, scopePath string) ([]*namespace.Directory, error) {
	args := m.Called(ctx, pattern, scopePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*namespace.Directory), args.Error(1)
}

func (m *MockProvider) GetTypeTables(ctx context.Context, dir *namespace.Directory) ([]*namespace.TypeTable, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*namespace.TypeTable), args.Error(1)
}

func (m *MockProvider) SearchTypeTables(ctx context.Context, pattern, scopePath string) ([]*namespace.TypeTable, error) {
	args := m.Called(ctx, pattern, scopePath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*namespace.TypeTable), args.Error(1)
}

func (m *MockProvider) GetRootDirectory(ctx context.Context) (*namespace.Directory, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*namespace.Directory), args.Error(1)
}
