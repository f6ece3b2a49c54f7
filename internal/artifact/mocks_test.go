package artifact

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/ItemForge_Go/internal/domain"
)

// MockOwner implements Owner for testing
type MockOwner struct {
	mock.Mock
}

func (m *MockOwner) MeetsCondition(conditionID uint32) bool {
	args := m.Called(conditionID)
	return args.Bool(0)
}

func (m *MockOwner) ApplyArtifactPowerRank(ctx context.Context, rank domain.ArtifactPowerRank, apply bool) {
	m.Called(ctx, rank, apply)
}
