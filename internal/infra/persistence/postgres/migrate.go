package postgres

import (
	"context"
	"strings"

	"orderservice/internal/domain/entity"
	"orderservice/internal/errors"
	"orderservice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderStatusNamespace derives stable status ids so every environment seeds the same values.
var orderStatusNamespace = uuid.MustParse("5b0c7c3e-4f7a-4a53-9a2e-0f6f3d8e2c11")

// seedStatusNames is the order-status reference data.
var seedStatusNames = []string{
	entity.StatusNameCreated,
	entity.StatusNameInProgress,
	entity.StatusNameFailed,
	entity.StatusNameCompleted,
}

// StatusID returns the seeded id of a status name. Names differing only by case share an id.
func StatusID(name string) uuid.UUID {
	return uuid.NewSHA1(orderStatusNamespace, []byte(strings.ToLower(name)))
}

// Migrate creates or updates every order table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate order schema")
	}

	return nil
}

// SeedOrderStatuses inserts the reference statuses that are not present yet.
func SeedOrderStatuses(ctx context.Context, db *gorm.DB) error {
	for _, name := range seedStatusNames {
		statusM := model.OrderStatusModel{
			ID:   model.EncodeID(StatusID(name)),
			Name: name,
		}

		if err := db.WithContext(ctx).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&statusM).Error; err != nil {
			return errors.Wrapf(err, "failed to seed order status %q", name)
		}
	}

	return nil
}
