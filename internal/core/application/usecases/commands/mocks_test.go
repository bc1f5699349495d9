package commands_test

import (
	"context"
	"time"

	"tradlogistics/internal/core/application/usecases/commands"
	"tradlogistics/internal/core/domain/model/account"
	"tradlogistics/internal/core/domain/model/delivery"
	"tradlogistics/internal/core/domain/model/kernel"
	"tradlogistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) UpdateWhereStatus(
	ctx context.Context,
	d *delivery.Delivery,
	expected delivery.Status,
) (bool, error) {
	args := m.Called(ctx, d, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetScheduledPendingDue(
	ctx context.Context,
	now time.Time,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*delivery.Delivery), args.Error(1)
}

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) Add(ctx context.Context, a *account.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) AddDriverProfile(ctx context.Context, p *account.DriverProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockAccountRepository) GetDriverProfile(
	ctx context.Context,
	accountID kernel.UUID,
) (*account.DriverProfile, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.DriverProfile), args.Error(1)
}

func (m *MockAccountRepository) UpdateDriverProfile(ctx context.Context, p *account.DriverProfile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type MockFeedbackRepository struct{ mock.Mock }

func (m *MockFeedbackRepository) AddRating(ctx context.Context, r *delivery.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockFeedbackRepository) AddTip(ctx context.Context, t *delivery.Tip) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) AccountRepository() ports.AccountRepository {
	args := m.Called()
	return args.Get(0).(ports.AccountRepository)
}

func (m *MockUoW) FeedbackRepository() ports.FeedbackRepository {
	args := m.Called()
	return args.Get(0).(ports.FeedbackRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}
