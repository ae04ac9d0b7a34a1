package apperror_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mealfinder/backend/internal/apperror"
)

func TestErrorMessageHidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := apperror.Wrap(apperror.KindInternal, "failed to list favorites", cause)

	assert.Equal(t, "failed to list favorites", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, apperror.KindValidation, apperror.KindOf(apperror.Validation("bad input")))
	assert.Equal(t, apperror.KindAuth, apperror.KindOf(apperror.Auth("no")))
	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(apperror.NotFound("gone")))
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(apperror.Conflict("dup")))

	// Unclassified errors default to internal.
	assert.Equal(t, apperror.KindInternal, apperror.KindOf(errors.New("boom")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("looking up recipe: %w", apperror.NotFound("recipe not found"))

	assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.False(t, apperror.IsKind(nil, apperror.KindNotFound))
}
