package eventhandlers_test

import (
	"log/slog"
	"testing"
	"time"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/application/eventhandlers"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentEventsHandler(factory commands.OrderUoWFactory, publisher *MockEventPublisher) eventhandlers.PaymentEventsHandler {
	return eventhandlers.NewPaymentEventsHandler(
		commands.NewApplyPaymentOutcomeCommandHandler(factory, publisher),
		slog.Default(),
	)
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", 1, decimal.NewFromFloat(9.50))
	require.NoError(t, err)
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"12 Baker Street", "", []order.LineItem{item}, time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestPaymentEventsHandler_Handle_SuccessConfirmsOrder(t *testing.T) {
	for _, status := range []string{"SUCCESS", "PAYMENT_SUCCESS", "COMPLETED"} {
		t.Run(status, func(t *testing.T) {
			ctx := t.Context()
			o := newPendingOrder(t)

			repo := new(MockOrderRepository)
			uow := new(MockOrderUoW)
			uow.On("Begin", ctx).Return(nil).Once()
			uow.On("OrderRepository").Return(repo).Once()
			uow.On("Commit", ctx).Return(nil).Once()
			uow.On("Rollback", ctx).Return(nil).Once()
			repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
			repo.On("Update", mock.Anything, o).Return(nil).Once()

			publisher := new(MockEventPublisher)
			publisher.On("PublishOrderEvent", ctx, mock.AnythingOfType("contracts.OrderEvent")).Return(nil).Once()

			factory := new(MockOrderUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := newPaymentEventsHandler(factory, publisher)
			event := contracts.PaymentEvent{OrderID: o.ID().String(), Status: status}
			require.NoError(t, h.Handle(ctx, event))

			assert.Equal(t, order.StatusConfirmed, o.Status())
			assert.Equal(t, order.PaymentCompleted, o.PaymentStatus())
			publisher.AssertExpectations(t)
		})
	}
}

func TestPaymentEventsHandler_Handle_FailureBlocksOrder(t *testing.T) {
	ctx := t.Context()
	o := newPendingOrder(t)

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

	h := newPaymentEventsHandler(factory, publisher)
	event := contracts.PaymentEvent{OrderID: o.ID().String(), Status: "PAYMENT_FAILED", Reason: "card declined"}
	require.NoError(t, h.Handle(ctx, event))

	assert.Equal(t, order.StatusPending, o.Status())
	assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
	publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
}

func TestPaymentEventsHandler_Handle_UnknownOrderIsDropped(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id)).Once()

	publisher := new(MockEventPublisher)
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := newPaymentEventsHandler(factory, publisher)
	event := contracts.PaymentEvent{OrderID: id.String(), Status: "SUCCESS"}
	require.NoError(t, h.Handle(ctx, event))
}

func TestPaymentEventsHandler_Handle_MalformedOrderIDIsTerminal(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	h := newPaymentEventsHandler(factory, new(MockEventPublisher))
	event := contracts.PaymentEvent{OrderID: "not-a-uuid", Status: "SUCCESS"}
	err := h.Handle(ctx, event)
	require.Error(t, err)
	assert.True(t, eventhandlers.IsTerminal(err))
	factory.AssertNotCalled(t, "Create")
}
