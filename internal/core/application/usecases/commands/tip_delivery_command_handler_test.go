package commands_test

import (
	"testing"

	"tradlogistics/internal/core/application/usecases/commands"
	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTipDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testDelivery := deliveredDelivery(t, customerID, driverID)

	profile, err := account.NewDriverProfile(driverID)
	require.NoError(t, err)

	cmd, err := commands.NewTipDeliveryCommand(testDelivery.ID(), customerID, 50)
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	accountRepo := &MockAccountRepository{}
	feedbackRepo := &MockFeedbackRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("FeedbackRepository").Return(feedbackRepo)
	uow.On("AccountRepository").Return(accountRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	feedbackRepo.On("AddTip", ctx, mock.AnythingOfType("*delivery.Tip")).Return(nil)
	accountRepo.On("GetDriverProfile", ctx, driverID).Return(profile, nil)
	accountRepo.On("UpdateDriverProfile", ctx, profile).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewTipDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.InDelta(t, 50.0, profile.Balance(), 0.001)
	feedbackRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
}

func TestTipDeliveryCommandHandler_Handle_NotOwner(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	testDelivery := deliveredDelivery(t, kernel.NewUUID(), driverID)

	cmd, err := commands.NewTipDeliveryCommand(testDelivery.ID(), kernel.NewUUID(), 50)
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewTipDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	var forbiddenErr *errs.AccessForbiddenError
	require.ErrorAs(t, err, &forbiddenErr)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestTipDeliveryCommandHandler_Handle_NotDelivered(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	testDelivery := searchingDelivery(t, customerID)

	cmd, err := commands.NewTipDeliveryCommand(testDelivery.ID(), customerID, 50)
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewTipDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestTipDeliveryCommandHandler_Handle_DuplicateTip(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	driverID := kernel.NewUUID()
	testDelivery := deliveredDelivery(t, customerID, driverID)

	cmd, err := commands.NewTipDeliveryCommand(testDelivery.ID(), customerID, 50)
	require.NoError(t, err)

	duplicateErr := errs.NewObjectAlreadyExistsError("tip", testDelivery.ID().String())

	deliveryRepo := &MockDeliveryRepository{}
	feedbackRepo := &MockFeedbackRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("FeedbackRepository").Return(feedbackRepo)
	deliveryRepo.On("Get", ctx, testDelivery.ID()).Return(testDelivery, nil)
	feedbackRepo.On("AddTip", ctx, mock.AnythingOfType("*delivery.Tip")).Return(duplicateErr)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewTipDeliveryCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	var existsErr *errs.ObjectAlreadyExistsError
	require.ErrorAs(t, err, &existsErr)
	uow.AssertNotCalled(t, "Commit", ctx)
}
