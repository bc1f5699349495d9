package delivery_test

import (
	"fmt"
	"testing"

	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []delivery.Status {
	return []delivery.Status{
		delivery.StatusPending,
		delivery.StatusSearching,
		delivery.StatusDriverAssigned,
		delivery.StatusPickedUp,
		delivery.StatusInTransit,
		delivery.StatusDelivered,
		delivery.StatusCancelled,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate all lifecycle statuses", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown statuses", func(t *testing.T) {
		for _, raw := range []string{"", "PENDING", "done", "in transit"} {
			t.Run(fmt.Sprintf("should reject %q", raw), func(t *testing.T) {
				err := delivery.Status(raw).Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
			})
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid values", func(t *testing.T) {
		status, err := delivery.StatusFromString("driver_assigned")

		require.NoError(t, err)
		assert.Equal(t, delivery.StatusDriverAssigned, status)
	})

	t.Run("should fail on unknown value", func(t *testing.T) {
		_, err := delivery.StatusFromString("assigned")

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	testCases := map[delivery.Status]bool{
		delivery.StatusPending:        false,
		delivery.StatusSearching:      false,
		delivery.StatusDriverAssigned: false,
		delivery.StatusPickedUp:       false,
		delivery.StatusInTransit:      false,
		delivery.StatusDelivered:      true,
		delivery.StatusCancelled:      true,
	}

	for status, expected := range testCases {
		t.Run(fmt.Sprintf("should report %v for %s", expected, status), func(t *testing.T) {
			assert.Equal(t, expected, status.IsTerminal())
		})
	}
}

func TestStatus_ValidateDriverAdvance(t *testing.T) {
	allowed := map[delivery.Status][]delivery.Status{
		delivery.StatusDriverAssigned: {delivery.StatusPickedUp, delivery.StatusCancelled},
		delivery.StatusPickedUp:       {delivery.StatusInTransit},
		delivery.StatusInTransit:      {delivery.StatusDelivered},
	}

	isAllowed := func(from, to delivery.Status) bool {
		for _, candidate := range allowed[from] {
			if candidate == to {
				return true
			}
		}
		return false
	}

	t.Run("should allow exactly the transitions in the table", func(t *testing.T) {
		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					err := from.ValidateDriverAdvance(to)

					if isAllowed(from, to) {
						require.NoError(t, err)
						return
					}

					require.Error(t, err)
					require.ErrorIs(t, err, delivery.ErrIllegalTransition)

					var transitionErr *delivery.IllegalTransitionError
					require.ErrorAs(t, err, &transitionErr)
					assert.Equal(t, from, transitionErr.From)
					assert.Equal(t, to, transitionErr.To)
				})
			}
		}
	})

	t.Run("should reject unknown target status before table lookup", func(t *testing.T) {
		err := delivery.StatusDriverAssigned.ValidateDriverAdvance(delivery.Status("lost"))

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
	})
}

func TestStatus_ValidateCancel(t *testing.T) {
	t.Run("should allow cancel from non-terminal statuses", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusPending,
			delivery.StatusSearching,
			delivery.StatusDriverAssigned,
			delivery.StatusPickedUp,
			delivery.StatusInTransit,
		} {
			require.NoError(t, status.ValidateCancel(), "cancel from %s", status)
		}
	})

	t.Run("should reject cancel from terminal statuses", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.StatusDelivered, delivery.StatusCancelled} {
			err := status.ValidateCancel()

			require.Error(t, err, "cancel from %s", status)
			assert.ErrorIs(t, err, delivery.ErrIllegalTransition)
		}
	})
}

func TestStatus_ValidateCanHaveDriver(t *testing.T) {
	t.Run("should require no driver before assignment", func(t *testing.T) {
		for _, status := range []delivery.Status{delivery.StatusPending, delivery.StatusSearching} {
			require.NoError(t, status.ValidateCanHaveDriver(false))
			require.Error(t, status.ValidateCanHaveDriver(true), "%s with driver", status)
		}
	})

	t.Run("should require a driver from assignment onwards", func(t *testing.T) {
		for _, status := range []delivery.Status{
			delivery.StatusDriverAssigned,
			delivery.StatusPickedUp,
			delivery.StatusInTransit,
			delivery.StatusDelivered,
		} {
			require.NoError(t, status.ValidateCanHaveDriver(true))
			require.Error(t, status.ValidateCanHaveDriver(false), "%s without driver", status)
		}
	})

	t.Run("should allow cancelled with or without driver", func(t *testing.T) {
		require.NoError(t, delivery.StatusCancelled.ValidateCanHaveDriver(true))
		require.NoError(t, delivery.StatusCancelled.ValidateCanHaveDriver(false))
	})
}
