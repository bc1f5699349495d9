package commands_test

import (
	"testing"

	"tradlogistics/internal/core/application/usecases/commands"
	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func deliveredDelivery(t *testing.T, customerID, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d := searchingDelivery(t, customerID)
	require.NoError(t, d.AssignDriver(driverID))
	require.NoError(t, d.AdvanceStatus(driverID, delivery.StatusPickedUp))
	require.NoError(t, d.AdvanceStatus(driverID, delivery.StatusInTransit))
	require.NoError(t, d.AdvanceStatus(driverID, delivery.StatusDelivered))
	return d
}

func TestRateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testDelivery := deliveredDelivery(t, customerID, driverID)

	profile, err := account.NewDriverProfile(driverID)
	require.NoError(t, err)

	cmd, err := commands.NewRateDeliveryCommand(testDelivery.ID(), customerID, 5, "excellent")
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	accountRepo := &MockAccountRepository{}
	feedbackRepo := &MockFeedbackRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("FeedbackRepository").Return(feedbackRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	feedbackRepo.On("AddRating", ctx, mock.MatchedBy(func(r *delivery.Rating) bool {
		return r.DeliveryID().IsEqual(testDelivery.ID()) &&
			r.DriverID().IsEqual(driverID) &&
			r.Value() == 5
	})).Return(nil)
	accountRepo.On("GetDriverProfile", ctx, driverID).Return(profile, nil)
	accountRepo.On("UpdateDriverProfile", ctx, profile).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, profile.RatingCount())
	assert.Equal(t, float64(5), profile.AverageRating())
	feedbackRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
}

func TestRateDeliveryCommandHandler_Handle_AlreadyRated(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testDelivery := deliveredDelivery(t, customerID, driverID)

	cmd, err := commands.NewRateDeliveryCommand(testDelivery.ID(), customerID, 4, "")
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	feedbackRepo := &MockFeedbackRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	duplicate := errs.NewObjectAlreadyExistsError("rating", testDelivery.ID().String())

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("FeedbackRepository").Return(feedbackRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	feedbackRepo.On("AddRating", ctx, mock.Anything).Return(duplicate)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ObjectAlreadyExistsError{}, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRateDeliveryCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	testDelivery := searchingDelivery(t, customerID)

	cmd, err := commands.NewRateDeliveryCommand(testDelivery.ID(), customerID, 5, "")
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.ValueIsInvalidError{}, err)
}

func TestRateDeliveryCommandHandler_Handle_NonOwnerForbidden(t *testing.T) {
	ctx := t.Context()
	testDelivery := deliveredDelivery(t, kernel.NewUUID(), kernel.NewUUID())
	strangerID := kernel.NewUUID()

	cmd, err := commands.NewRateDeliveryCommand(testDelivery.ID(), strangerID, 3, "")
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewRateDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.AccessForbiddenError{}, err)
}

func TestNewRateDeliveryCommand_Validation(t *testing.T) {
	t.Run("should reject out of range value", func(t *testing.T) {
		for _, value := range []int{0, 6} {
			_, err := commands.NewRateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), value, "")

			require.Error(t, err, "value %d", value)
			assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		}
	})
}
