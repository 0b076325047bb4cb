package commands_test

import (
	"testing"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApplyPaymentOutcomeCommandHandler_Handle_SuccessConfirmsOrder(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	cmd, err := commands.NewApplyPaymentOutcomeCommand(o.ID(), contracts.PaymentOutcomeSuccess)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		repo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("contracts.OrderEvent")).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyPaymentOutcomeCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.StatusConfirmed, o.Status())
	assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestApplyPaymentOutcomeCommandHandler_Handle_FailureBlocksOrder(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)
	cmd, err := commands.NewApplyPaymentOutcomeCommand(o.ID(), contracts.PaymentOutcomeFailure)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	repo.On("Update", mock.Anything, o).Return(nil).Once()

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewApplyPaymentOutcomeCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))

	// The order stays PENDING with a failed payment; no confirmation goes out.
	assert.Equal(t, order.StatusPending, o.Status())
	assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}
