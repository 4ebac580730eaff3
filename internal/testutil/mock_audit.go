package testutil

import (
	"context"

	"github.com/poyrazK/zonesync/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockAuditRepo implements ports.AuditRepository using testify mocks.
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) SavePass(ctx context.Context, report *domain.PassReport) error {
	args := m.Called(report)
	return args.Error(0)
}

func (m *MockAuditRepo) ListPasses(ctx context.Context, limit int) ([]domain.PassSummary, error) {
	args := m.Called(limit)
	return args.Get(0).([]domain.PassSummary), args.Error(1)
}

func (m *MockAuditRepo) Ping(ctx context.Context) error {
	args := m.Called()
	return args.Error(0)
}
