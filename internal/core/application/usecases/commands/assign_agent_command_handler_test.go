package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/delivery"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignAgentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	d := newPendingDelivery(t)
	claimed := newAvailableAgent(t, 18.53, 73.86)

	cmd, err := commands.NewAssignAgentCommand(d.ID(), claimed.ID())
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
		agentRepo.On("Get", mock.Anything, claimed.ID()).Return(claimed, nil).Once(),
		agentRepo.On("ClaimAvailable", mock.Anything, claimed.ID()).Return(nil).Once(),
		deliveryRepo.On("Update", mock.Anything, d).Return(nil).Once(),
		agentRepo.On("Update", mock.Anything, claimed).Return(nil).Once(),
	)

	publisher := new(MockEventPublisher)
	publisher.On("PublishDeliveryEvent", ctx, mock.AnythingOfType("contracts.DeliveryEvent")).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory, publisher, testSettings(t))
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, delivery.StatusAssigned, d.Status())
	require.NotNil(t, d.AgentID())
	assert.True(t, claimed.ID().IsEqual(*d.AgentID()))
	assert.Equal(t, agent.StatusBusy, claimed.Status())
	assert.NotNil(t, d.EstimatedDeliveryTime())
	deliveryRepo.AssertExpectations(t)
	agentRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAssignAgentCommandHandler_Handle_AgentNotAvailable(t *testing.T) {
	ctx := t.Context()
	d := newPendingDelivery(t)
	claimed := newBusyAgent(t)

	cmd, err := commands.NewAssignAgentCommand(d.ID(), claimed.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, claimed.ID()).Return(claimed, nil).Once()
	agentRepo.On("ClaimAvailable", mock.Anything, claimed.ID()).
		Return(errs.NewInvalidStateError("agent", "BUSY", "claim")).Once()

	publisher := new(MockEventPublisher)
	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory, publisher, testSettings(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
	publisher.AssertNotCalled(t, "PublishDeliveryEvent", mock.Anything, mock.Anything)
}

func TestAssignAgentCommandHandler_Handle_DeliveryAlreadyAssigned(t *testing.T) {
	ctx := t.Context()
	first := newBusyAgent(t)
	d := newAssignedDelivery(t, first)
	second := newAvailableAgent(t, 18.54, 73.87)

	cmd, err := commands.NewAssignAgentCommand(d.ID(), second.ID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	agentRepo := new(MockAgentRepository)
	uow := new(MockDeliveryUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("AgentRepository").Return(agentRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	deliveryRepo.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()
	agentRepo.On("Get", mock.Anything, second.ID()).Return(second, nil).Once()
	agentRepo.On("ClaimAvailable", mock.Anything, second.ID()).Return(nil).Once()

	publisher := new(MockEventPublisher)
	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignAgentCommandHandler(factory, publisher, testSettings(t))
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}
