package handlers_test

import (
	"context"
	"errors"
	"time"

	"github.com/serroba/plugin-registry-go/internal/registry"
)

var errMock = errors.New("mock error")

// mockRepository lets tests inject storage failures per operation.
type mockRepository struct {
	createErr error
	getErr    error
	record    *registry.PluginRecord
}

func (m *mockRepository) Create(_ context.Context, _ registry.PluginMap) (string, error) {
	if m.createErr != nil {
		return "", m.createErr
	}

	return "00000000-0000-4000-8000-000000000000", nil
}

func (m *mockRepository) GetByID(_ context.Context, _ string) (*registry.PluginRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	return m.record, nil
}

func (m *mockRepository) FindOlderThan(_ context.Context, _ time.Time) ([]string, error) {
	return nil, nil
}

func (m *mockRepository) DeleteMany(_ context.Context, _ []string) (int64, error) {
	return 0, nil
}

// mockCounterStore fails every operation; used to prove counter failures
// never fail an upload.
type mockCounterStore struct {
	err error
}

func (m *mockCounterStore) Counts(_ context.Context) (registry.Counters, error) {
	return registry.Counters{}, m.err
}

func (m *mockCounterStore) IncrementExport(_ context.Context) error {
	return m.err
}

func (m *mockCounterStore) IncrementPlugins(_ context.Context, _ int64) error {
	return m.err
}
