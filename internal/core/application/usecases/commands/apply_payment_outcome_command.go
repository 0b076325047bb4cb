package commands

import (
	"errors"

	"fooddelivery/internal/contracts"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrApplyPaymentOutcomeCommandIsNotConstructed = errors.New(
	"ApplyPaymentOutcomeCommand must be created via NewApplyPaymentOutcomeCommand constructor",
)

// ApplyPaymentOutcomeCommand represents a normalized payment result for an
// order, produced from a payment event.
type ApplyPaymentOutcomeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	outcome contracts.PaymentOutcome

	guard guard.ConstructorGuard
}

// NewApplyPaymentOutcomeCommand creates a command carrying a payment outcome.
func NewApplyPaymentOutcomeCommand(orderID kernel.UUID, outcome contracts.PaymentOutcome) (ApplyPaymentOutcomeCommand, error) {
	cmd := ApplyPaymentOutcomeCommand{
		outcome: outcome,
		guard:   guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ApplyPaymentOutcomeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyPaymentOutcomeCommand) Validate() error {
	return c.guard.Validate(ErrApplyPaymentOutcomeCommandIsNotConstructed)
}

// OrderID returns the paid (or unpaid) order.
func (c ApplyPaymentOutcomeCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Outcome returns the normalized payment outcome.
func (c ApplyPaymentOutcomeCommand) Outcome() contracts.PaymentOutcome {
	return c.outcome
}

func (c *ApplyPaymentOutcomeCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
