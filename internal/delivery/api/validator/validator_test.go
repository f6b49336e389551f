package validator

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	StatusID    uuid.UUID `json:"status_id" validate:"required"`
	Name        string    `json:"new_status_name" validate:"required,max=20"`
	CreatedDate time.Time `json:"created_date" validate:"required"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	t.Run("valid", func(t *testing.T) {
		err := v.Validate(&sampleRequest{
			StatusID:    uuid.New(),
			Name:        "Completed",
			CreatedDate: time.Now(),
		})
		assert.NoError(t, err)
	})

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Validate(&sampleRequest{
			Name: "a status name that is far too long",
		})
		require.Error(t, err)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.ElementsMatch(t, []FieldError{
			{Field: "status_id", Rule: "required"},
			{Field: "new_status_name", Rule: "max", Param: "20"},
			{Field: "created_date", Rule: "required"},
		}, validationErr.Fields)
		assert.Contains(t, err.Error(), "status_id failed required")
	})
}
