package commands_test

import (
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAssignedDelivery(t *testing.T, assigned *agent.Agent) *delivery.Delivery {
	t.Helper()
	d := newPendingDelivery(t)
	now := time.Now().UTC()
	require.NoError(t, d.Assign(assigned.ID(), now, now.Add(30*time.Minute)))
	return d
}

func TestUpdateDeliveryStatusCommandHandler_Handle_DeliveredReleasesAgent(t *testing.T) {
	ctx := t.Context()
	assigned := newBusyAgent(t)
	d := newAssignedDelivery(t, assigned)
	before := assigned.TotalDeliveries()

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.StatusDelivered, "handed over")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	mock.InOrder(
		deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once(),
		agentRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once(),
		agentRepo.On("Update", mock.Anything, assigned).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishDeliveryEvent", ctx, mock.AnythingOfType("contracts.DeliveryEvent")).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher, testSettings(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusDelivered, d.Status())
	assert.Equal(t, agent.StatusAvailable, assigned.Status())
	assert.Equal(t, before+1, assigned.TotalDeliveries())
	deliveryRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_CancelledReleasesWithoutCounting(t *testing.T) {
	ctx := t.Context()
	assigned := newBusyAgent(t)
	d := newAssignedDelivery(t, assigned)
	before := assigned.TotalDeliveries()

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.StatusCancelled, "customer unreachable")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	agentRepo.On("Update", mock.Anything, assigned).Return(nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishDeliveryEvent", ctx, mock.AnythingOfType("contracts.DeliveryEvent")).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher, testSettings(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, agent.StatusAvailable, assigned.Status())
	assert.Equal(t, before, assigned.TotalDeliveries())
	assert.Equal(t, "customer unreachable", d.CancellationReason())
}

func TestUpdateDeliveryStatusCommandHandler_Handle_ReplayedTerminalUpdateSkipsRelease(t *testing.T) {
	ctx := t.Context()
	assigned := newBusyAgent(t)
	d := newAssignedDelivery(t, assigned)

	// First DELIVERED already released the agent back to AVAILABLE.
	assigned.Release(true, time.Now().UTC())
	before := assigned.TotalDeliveries()

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.StatusDelivered, "handed over")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishDeliveryEvent", ctx, mock.AnythingOfType("contracts.DeliveryEvent")).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher, testSettings(t))
	require.NoError(t, h.Handle(ctx, cmd))

	// The delivery count must not move twice for one delivery.
	assert.Equal(t, before, assigned.TotalDeliveries())
	agentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_NonTerminalKeepsAgentBusy(t *testing.T) {
	ctx := t.Context()
	assigned := newBusyAgent(t)
	d := newAssignedDelivery(t, assigned)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.StatusPickedUp, "left restaurant")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, assigned.ID()).Return(assigned, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishDeliveryEvent", ctx, mock.AnythingOfType("contracts.DeliveryEvent")).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher, testSettings(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusPickedUp, d.Status())
	assert.Equal(t, agent.StatusBusy, assigned.Status())
	assert.NotNil(t, d.PickedUpAt())
	agentRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateDeliveryStatusCommandHandler_Handle_UnassignedDelivery(t *testing.T) {
	ctx := t.Context()
	d := newPendingDelivery(t)

	cmd, err := commands.NewUpdateDeliveryStatusCommand(d.ID(), delivery.StatusCancelled, "no agent found in time")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("PublishDeliveryEvent", ctx, mock.AnythingOfType("contracts.DeliveryEvent")).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateDeliveryStatusCommandHandler(factory, publisher, testSettings(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusCancelled, d.Status())
	uow.AssertNotCalled(t, "AgentRepository")
}
