package queries_test

import (
	"testing"

	"tradlogistics/internal/core/application/usecases/queries"
	"tradlogistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerDeliveriesQuery(t *testing.T) {
	t.Run("should create query with valid customer id", func(t *testing.T) {
		query, err := queries.NewGetCustomerDeliveriesQuery(kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("should reject zero customer id", func(t *testing.T) {
		_, err := queries.NewGetCustomerDeliveriesQuery(kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.GetCustomerDeliveriesQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetCustomerDeliveriesQueryIsNotConstructed)
	})
}

func TestNewGetDeliveryQuery(t *testing.T) {
	t.Run("should create query with valid identifiers", func(t *testing.T) {
		query, err := queries.NewGetDeliveryQuery(kernel.NewUUID(), kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, query.Validate())
	})

	t.Run("should reject zero requester id", func(t *testing.T) {
		_, err := queries.NewGetDeliveryQuery(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
	})
}

func TestNewGetAvailableDeliveriesQuery(t *testing.T) {
	t.Run("should create parameterless query", func(t *testing.T) {
		query := queries.NewGetAvailableDeliveriesQuery()

		require.NoError(t, query.Validate())
	})

	t.Run("should reject zero value query", func(t *testing.T) {
		var query queries.GetAvailableDeliveriesQuery

		err := query.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, queries.ErrGetAvailableDeliveriesQueryIsNotConstructed)
	})
}
