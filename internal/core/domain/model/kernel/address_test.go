package kernel_test

import (
	"testing"

	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create valid address", func(t *testing.T) {
		addr, err := kernel.NewAddress("12 Hope Rd, Kingston", 18.0179, -76.8099)

		require.NoError(t, err)
		require.NoError(t, addr.Validate())
		assert.Equal(t, "12 Hope Rd, Kingston", addr.Label())
		assert.InDelta(t, 18.0179, addr.Latitude(), 0.0001)
		assert.InDelta(t, -76.8099, addr.Longitude(), 0.0001)
	})

	t.Run("should fail with empty label", func(t *testing.T) {
		_, err := kernel.NewAddress("", 18.0179, -76.8099)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with latitude out of range", func(t *testing.T) {
		_, err := kernel.NewAddress("somewhere", 90.5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "latitude")
	})

	t.Run("should fail with longitude out of range", func(t *testing.T) {
		_, err := kernel.NewAddress("somewhere", 0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "longitude")
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		for _, coords := range [][2]float64{{-90, -180}, {90, 180}, {0, 0}} {
			addr, err := kernel.NewAddress("boundary", coords[0], coords[1])
			require.NoError(t, err)
			require.NoError(t, addr.Validate())
		}
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrAddressIsNotConstructed, err)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, err := kernel.NewAddress("12 Hope Rd", 18, -76.8)
	require.NoError(t, err)
	b, err := kernel.NewAddress("12 Hope Rd", 18, -76.8)
	require.NoError(t, err)
	c, err := kernel.NewAddress("1 Port Royal St", 17.97, -76.79)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
