package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError(t *testing.T) {
	t.Run("matches sentinels by code", func(t *testing.T) {
		err := NewDomainError(CodeNotFound, "Company not found")
		assert.True(t, errors.Is(err, ErrNotFound))
		assert.False(t, errors.Is(err, ErrConflict))
	})

	t.Run("wrapped errors keep their code and cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := fmt.Errorf("listing: %w", WrapDomainError(CodeInternal, "Database error", cause))

		assert.Equal(t, CodeInternal, CodeOf(err))
		assert.True(t, errors.Is(err, cause))
	})

	t.Run("plain errors are internal", func(t *testing.T) {
		assert.Equal(t, CodeInternal, CodeOf(errors.New("boom")))
		assert.False(t, IsNotFound(nil))
		assert.True(t, IsConflict(ErrConflict))
	})
}
