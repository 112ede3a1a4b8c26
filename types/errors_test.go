package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsConfigurationError(t *testing.T) {
	for _, sentinel := range []error{
		ErrInvalidConfig,
		ErrInvalidCapacity,
		ErrNoItems,
		ErrUnresolvedColumns,
		ErrEmptyRoster,
	} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			require.True(t, IsConfigurationError(sentinel))
			require.True(t, IsConfigurationError(fmt.Errorf("context: %w", sentinel)))
			require.False(t, IsCapacityError(sentinel))
		})
	}

	t.Run("unrelated errors are not configuration errors", func(t *testing.T) {
		require.False(t, IsConfigurationError(errors.New("boom")))
		require.False(t, IsConfigurationError(nil))
	})
}

func TestIsCapacityError(t *testing.T) {
	for _, sentinel := range []error{
		ErrCohortOverCapacity,
		ErrTooManyCohorts,
		ErrCohortIntegrity,
	} {
		t.Run(sentinel.Error(), func(t *testing.T) {
			require.True(t, IsCapacityError(sentinel))
			require.True(t, IsCapacityError(fmt.Errorf("context: %w", sentinel)))
			require.False(t, IsConfigurationError(sentinel))
		})
	}

	t.Run("unrelated errors are not capacity errors", func(t *testing.T) {
		require.False(t, IsCapacityError(errors.New("boom")))
		require.False(t, IsCapacityError(nil))
	})
}

func TestStoreErrorsAreUnclassified(t *testing.T) {
	for _, sentinel := range []error{ErrSnapshotNotFound, ErrInvalidSnapshotKey, ErrStoreRequired} {
		require.False(t, IsConfigurationError(sentinel))
		require.False(t, IsCapacityError(sentinel))
	}
}
