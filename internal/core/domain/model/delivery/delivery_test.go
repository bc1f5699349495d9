package delivery_test

import (
	"testing"
	"time"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(t *testing.T) delivery.Request {
	t.Helper()
	request, err := delivery.NewRequest(validPickupParams(), time.Now())
	require.NoError(t, err)
	return request
}

func newTestDelivery(t *testing.T) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), newTestRequest(t))
	require.NoError(t, err)
	return d
}

func deliveryInStatus(t *testing.T, status delivery.Status) (*delivery.Delivery, kernel.UUID) {
	t.Helper()
	d := newTestDelivery(t)
	driverID := kernel.NewUUID()

	steps := map[delivery.Status][]func() error{
		delivery.StatusPending:   {},
		delivery.StatusSearching: {d.StartSearching},
		delivery.StatusDriverAssigned: {
			d.StartSearching,
			func() error { return d.AssignDriver(driverID) },
		},
		delivery.StatusPickedUp: {
			d.StartSearching,
			func() error { return d.AssignDriver(driverID) },
			func() error { return d.AdvanceStatus(driverID, delivery.StatusPickedUp) },
		},
		delivery.StatusInTransit: {
			d.StartSearching,
			func() error { return d.AssignDriver(driverID) },
			func() error { return d.AdvanceStatus(driverID, delivery.StatusPickedUp) },
			func() error { return d.AdvanceStatus(driverID, delivery.StatusInTransit) },
		},
		delivery.StatusDelivered: {
			d.StartSearching,
			func() error { return d.AssignDriver(driverID) },
			func() error { return d.AdvanceStatus(driverID, delivery.StatusPickedUp) },
			func() error { return d.AdvanceStatus(driverID, delivery.StatusInTransit) },
			func() error { return d.AdvanceStatus(driverID, delivery.StatusDelivered) },
		},
	}

	for _, step := range steps[status] {
		require.NoError(t, step())
	}
	require.Equal(t, status, d.Status())
	return d, driverID
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create pending delivery with a fresh pin", func(t *testing.T) {
		customerID := kernel.NewUUID()
		d, err := delivery.NewDelivery(kernel.NewUUID(), customerID, newTestRequest(t))

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusPending, d.Status())
		assert.Nil(t, d.DriverID())
		assert.Len(t, d.VerificationPIN(), delivery.VerificationPINLength)
		assert.True(t, d.IsOwnedBy(customerID))
		assert.Zero(t, d.Price())
		assert.False(t, d.IsDeleted())
	})

	t.Run("should generate only digit pins", func(t *testing.T) {
		for range 20 {
			d := newTestDelivery(t)
			for _, c := range d.VerificationPIN() {
				assert.GreaterOrEqual(t, c, '0')
				assert.LessOrEqual(t, c, '9')
			}
		}
	})

	t.Run("should reject unconstructed request", func(t *testing.T) {
		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), delivery.Request{})

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrRequestIsNotConstructed)
	})
}

func TestDelivery_ApplyQuote(t *testing.T) {
	t.Run("should set price and breakdown", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.ApplyQuote(120, delivery.PriceBreakdown{BaseFare: 120, Total: 120})

		require.NoError(t, err)
		assert.Equal(t, float64(120), d.Price())
		assert.Equal(t, float64(120), d.PriceBreakdown().BaseFare)
	})

	t.Run("should reject non-positive price", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.ApplyQuote(0, delivery.PriceBreakdown{})

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestDelivery_StartSearching(t *testing.T) {
	t.Run("should move pending delivery to searching", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.StartSearching())
		assert.Equal(t, delivery.StatusSearching, d.Status())
	})

	t.Run("should fail from any other status", func(t *testing.T) {
		d, _ := deliveryInStatus(t, delivery.StatusSearching)

		err := d.StartSearching()

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
	})
}

func TestDelivery_AssignDriver(t *testing.T) {
	t.Run("should assign driver to searching delivery", func(t *testing.T) {
		d, _ := deliveryInStatus(t, delivery.StatusSearching)
		driverID := kernel.NewUUID()

		err := d.AssignDriver(driverID)

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusDriverAssigned, d.Status())
		require.NotNil(t, d.DriverID())
		assert.True(t, d.DriverID().IsEqual(driverID))
		assert.True(t, d.IsAssignedTo(driverID))
	})

	t.Run("should never replace an assigned driver", func(t *testing.T) {
		d, driverID := deliveryInStatus(t, delivery.StatusDriverAssigned)

		err := d.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
		assert.True(t, d.DriverID().IsEqual(driverID))
	})

	t.Run("should fail on pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		err := d.AssignDriver(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
		assert.Nil(t, d.DriverID())
	})
}

func TestDelivery_AdvanceStatus(t *testing.T) {
	t.Run("should walk the full happy path", func(t *testing.T) {
		d, driverID := deliveryInStatus(t, delivery.StatusDriverAssigned)

		require.NoError(t, d.AdvanceStatus(driverID, delivery.StatusPickedUp))
		require.NoError(t, d.AdvanceStatus(driverID, delivery.StatusInTransit))
		require.NoError(t, d.AdvanceStatus(driverID, delivery.StatusDelivered))
		assert.Equal(t, delivery.StatusDelivered, d.Status())
	})

	t.Run("should let the assigned driver cancel after assignment", func(t *testing.T) {
		d, driverID := deliveryInStatus(t, delivery.StatusDriverAssigned)

		require.NoError(t, d.AdvanceStatus(driverID, delivery.StatusCancelled))
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("should forbid a different driver", func(t *testing.T) {
		d, _ := deliveryInStatus(t, delivery.StatusDriverAssigned)

		err := d.AdvanceStatus(kernel.NewUUID(), delivery.StatusPickedUp)

		require.Error(t, err)
		assert.IsType(t, &errs.AccessForbiddenError{}, err)
		assert.Equal(t, delivery.StatusDriverAssigned, d.Status())
	})

	t.Run("should reject skipping a step", func(t *testing.T) {
		d, driverID := deliveryInStatus(t, delivery.StatusDriverAssigned)

		err := d.AdvanceStatus(driverID, delivery.StatusDelivered)

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
	})

	t.Run("should reject any advance out of delivered", func(t *testing.T) {
		d, driverID := deliveryInStatus(t, delivery.StatusDelivered)

		err := d.AdvanceStatus(driverID, delivery.StatusInTransit)

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
	})
}

func TestDelivery_Cancel(t *testing.T) {
	t.Run("should cancel pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.StatusCancelled, d.Status())
	})

	t.Run("should cancel after assignment keeping the driver", func(t *testing.T) {
		d, driverID := deliveryInStatus(t, delivery.StatusDriverAssigned)

		require.NoError(t, d.Cancel())
		assert.Equal(t, delivery.StatusCancelled, d.Status())
		assert.True(t, d.DriverID().IsEqual(driverID))
	})

	t.Run("should fail on a second cancel", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.Cancel())

		err := d.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
	})

	t.Run("should block driver updates after cancellation", func(t *testing.T) {
		d, driverID := deliveryInStatus(t, delivery.StatusDriverAssigned)
		require.NoError(t, d.Cancel())

		err := d.AdvanceStatus(driverID, delivery.StatusPickedUp)

		require.Error(t, err)
		assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
	})
}

func TestDelivery_Edit(t *testing.T) {
	t.Run("should edit pending delivery", func(t *testing.T) {
		d := newTestDelivery(t)

		params := validPickupParams()
		params.Description = "fragile glassware"
		params.Fragile = true
		edited, err := delivery.NewRequest(params, time.Now())
		require.NoError(t, err)

		require.NoError(t, d.Edit(edited))
		assert.Equal(t, "fragile glassware", d.Request().Description())
		assert.True(t, d.Request().Fragile())
	})

	t.Run("should reject edit after searching started", func(t *testing.T) {
		d, _ := deliveryInStatus(t, delivery.StatusSearching)

		err := d.Edit(newTestRequest(t))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestDelivery_MarkRemoved(t *testing.T) {
	t.Run("should soft delete a non-terminal delivery", func(t *testing.T) {
		d := newTestDelivery(t)
		now := time.Now()

		require.NoError(t, d.MarkRemoved(now))
		assert.True(t, d.IsDeleted())
		require.NotNil(t, d.DeletedAt())
		assert.True(t, d.DeletedAt().Equal(now))
	})

	t.Run("should reject removing a delivered delivery", func(t *testing.T) {
		d, _ := deliveryInStatus(t, delivery.StatusDelivered)

		err := d.MarkRemoved(time.Now())

		require.Error(t, err)
	})

	t.Run("should reject removing twice", func(t *testing.T) {
		d := newTestDelivery(t)
		require.NoError(t, d.MarkRemoved(time.Now()))

		err := d.MarkRemoved(time.Now())

		require.Error(t, err)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("should restore a delivered delivery", func(t *testing.T) {
		original, driverID := deliveryInStatus(t, delivery.StatusDelivered)

		restored, err := delivery.RestoreDelivery(
			original.ID(),
			original.CustomerID(),
			&driverID,
			original.Request(),
			150,
			delivery.PriceBreakdown{BaseFare: 150, Total: 150},
			original.VerificationPIN(),
			delivery.StatusDelivered,
			false,
			nil,
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, delivery.StatusDelivered, restored.Status())
		assert.Equal(t, float64(150), restored.Price())
	})

	t.Run("should reject driver on searching delivery", func(t *testing.T) {
		original := newTestDelivery(t)
		driverID := kernel.NewUUID()

		_, err := delivery.RestoreDelivery(
			original.ID(),
			original.CustomerID(),
			&driverID,
			original.Request(),
			120,
			delivery.PriceBreakdown{},
			original.VerificationPIN(),
			delivery.StatusSearching,
			false,
			nil,
		)

		require.Error(t, err)
	})

	t.Run("should reject malformed pin", func(t *testing.T) {
		original := newTestDelivery(t)

		_, err := delivery.RestoreDelivery(
			original.ID(),
			original.CustomerID(),
			nil,
			original.Request(),
			120,
			delivery.PriceBreakdown{},
			"12",
			delivery.StatusPending,
			false,
			nil,
		)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}
