// Package mocks provides testify mocks for the transcoder interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"supercut/pkg/transcoder"
)

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) Run(ctx context.Context, req transcoder.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

type MockProber struct {
	mock.Mock
}

func (m *MockProber) Duration(ctx context.Context, path string) (float64, error) {
	args := m.Called(ctx, path)
	return args.Get(0).(float64), args.Error(1)
}
