package postgres

import (
	"context"
	"testing"

	"orderservice/internal/domain/entity"
	"orderservice/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedOrderStatuses_Idempotent(t *testing.T) {
	db := newTestDB(t)

	// newTestDB already seeded once.
	require.NoError(t, SeedOrderStatuses(context.Background(), db))

	var statuses []model.OrderStatusModel
	require.NoError(t, db.Order("name").Find(&statuses).Error)

	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.Name)
		assert.Equal(t, StatusID(s.Name), s.ID.UUID())
	}
	assert.ElementsMatch(t, []string{
		entity.StatusNameCompleted,
		entity.StatusNameCreated,
		entity.StatusNameFailed,
		entity.StatusNameInProgress,
	}, names)
}

func TestStatusID_IsStableAndCaseInsensitive(t *testing.T) {
	assert.Equal(t, StatusID("Completed"), StatusID("COMPLETED"))
	assert.NotEqual(t, StatusID("Completed"), StatusID("Failed"))
}
