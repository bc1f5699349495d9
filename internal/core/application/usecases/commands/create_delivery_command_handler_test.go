package commands_test

import (
	"testing"

	"tradlogistics/internal/core/application/usecases/commands"
	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/core/domain/services"
	"tradlogistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	deliveryID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(deliveryID, customerID, pickupParams())
	require.NoError(t, err)

	deliveryRepo := &MockDeliveryRepository{}
	accountRepo := &MockAccountRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AccountRepository").Return(accountRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	accountRepo.On("Get", ctx, customerID).Return(customerAccount(t, customerID), nil)
	deliveryRepo.On("Add", ctx, mock.MatchedBy(func(d *delivery.Delivery) bool {
		return d.ID().IsEqual(deliveryID) &&
			d.Status() == delivery.StatusPending &&
			d.Price() == float64(services.BaseFare) &&
			len(d.VerificationPIN()) == delivery.VerificationPINLength
	})).Return(nil)
	uow.On("Commit", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewCreateDeliveryCommandHandler(factory, services.NewPricer())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateDeliveryCommandHandler_Handle_DriverForbidden(t *testing.T) {
	ctx := t.Context()
	requesterID := kernel.NewUUID()

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), requesterID, pickupParams())
	require.NoError(t, err)

	accountRepo := &MockAccountRepository{}
	uow := &MockUoW{}
	factory := &MockUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("Begin", ctx).Return(nil)
	uow.On("AccountRepository").Return(accountRepo)
	accountRepo.On("Get", ctx, requesterID).Return(driverAccount(t, requesterID), nil)
	uow.On("Rollback", ctx).Return(nil)

	handler := commands.NewCreateDeliveryCommandHandler(factory, services.NewPricer())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.IsType(t, &errs.AccessForbiddenError{}, err)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCreateDeliveryCommandHandler_Handle_InvalidRequest(t *testing.T) {
	ctx := t.Context()
	params := pickupParams()
	params.DropoffLabel = ""
	params.DropoffLatitude = nil

	cmd, err := commands.NewCreateDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), params)
	require.NoError(t, err)

	factory := &MockUoWFactory{}

	handler := commands.NewCreateDeliveryCommandHandler(factory, services.NewPricer())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dropoff_address")
	assert.Contains(t, err.Error(), "dropoff_lat")
	factory.AssertNotCalled(t, "Create")
}

func TestNewCreateDeliveryCommand_Validation(t *testing.T) {
	t.Run("should reject empty delivery id", func(t *testing.T) {
		_, err := commands.NewCreateDeliveryCommand(kernel.UUID{}, kernel.NewUUID(), pickupParams())

		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.CreateDeliveryCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreateDeliveryCommandIsNotConstructed)
	})
}
