package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrRegisterAgentCommandIsNotConstructed = errors.New(
		"RegisterAgentCommand must be created via NewRegisterAgentCommand constructor",
	)
	ErrAgentNameIsRequired  = errors.New("agent name is required")
	ErrAgentPhoneIsRequired = errors.New("agent phone is required")
)

// RegisterAgentCommand represents a request to register a new delivery
// agent.
type RegisterAgentCommand struct { //nolint:recvcheck //using for validation
	agentID     kernel.UUID
	name        string
	phone       string
	vehicleType agent.VehicleType
	position    *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterAgentCommand creates a command to register an agent. The
// initial position is optional.
func NewRegisterAgentCommand(
	agentID kernel.UUID,
	name string,
	phone string,
	vehicleType agent.VehicleType,
	position *kernel.GeoPoint,
) (RegisterAgentCommand, error) {
	cmd := RegisterAgentCommand{
		position: position,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAgentID(agentID),
		cmd.setName(name),
		cmd.setPhone(phone),
		cmd.setVehicleType(vehicleType),
	); err != nil {
		return RegisterAgentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAgentCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAgentCommandIsNotConstructed)
}

// AgentID returns the unique identifier for the new agent.
func (c RegisterAgentCommand) AgentID() kernel.UUID {
	return c.agentID
}

// Name returns the agent's display name.
func (c RegisterAgentCommand) Name() string {
	return c.name
}

// Phone returns the agent's contact phone.
func (c RegisterAgentCommand) Phone() string {
	return c.phone
}

// VehicleType returns the agent's delivery vehicle.
func (c RegisterAgentCommand) VehicleType() agent.VehicleType {
	return c.vehicleType
}

// Position returns the optional initial position.
func (c RegisterAgentCommand) Position() *kernel.GeoPoint {
	return c.position
}

func (c *RegisterAgentCommand) setAgentID(agentID kernel.UUID) error {
	if err := agentID.Validate(); err != nil {
		return err
	}
	c.agentID = agentID
	return nil
}

func (c *RegisterAgentCommand) setName(name string) error {
	if name == "" {
		return ErrAgentNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterAgentCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrAgentPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *RegisterAgentCommand) setVehicleType(vehicleType agent.VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	c.vehicleType = vehicleType
	return nil
}
