package contract

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/wayscan/wayscan/schema"
)

// MockArchiveClient is a testify mock for the ArchiveClient interface.
type MockArchiveClient struct {
	mock.Mock
}

var _ ArchiveClient = &MockArchiveClient{} // Compile-time check

// FetchSnapshots implements the ArchiveClient interface.
func (m *MockArchiveClient) FetchSnapshots(ctx context.Context, domain string) ([]schema.SnapshotRecord, error) {
	ret := m.Called(ctx, domain)
	records, _ := ret.Get(0).([]schema.SnapshotRecord)
	return records, ret.Error(1)
}
