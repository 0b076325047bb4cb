package commands

import (
	"errors"
	"time"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkStaleAgentsOfflineCommandIsNotConstructed = errors.New(
	"MarkStaleAgentsOfflineCommand must be created via NewMarkStaleAgentsOfflineCommand constructor",
)

// MarkStaleAgentsOfflineCommand triggers the liveness sweep: agents that
// have not reported activity within the window are taken off shift so the
// directory does not advertise dead couriers.
type MarkStaleAgentsOfflineCommand struct { //nolint:recvcheck //using for validation
	window time.Duration

	guard guard.ConstructorGuard
}

// NewMarkStaleAgentsOfflineCommand creates a command for a liveness sweep
// with the given inactivity window.
func NewMarkStaleAgentsOfflineCommand(window time.Duration) (MarkStaleAgentsOfflineCommand, error) {
	cmd := MarkStaleAgentsOfflineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setWindow(window); err != nil {
		return MarkStaleAgentsOfflineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkStaleAgentsOfflineCommand) Validate() error {
	return c.guard.Validate(ErrMarkStaleAgentsOfflineCommandIsNotConstructed)
}

// Window returns the inactivity window after which an agent is stale.
func (c MarkStaleAgentsOfflineCommand) Window() time.Duration {
	return c.window
}

func (c *MarkStaleAgentsOfflineCommand) setWindow(window time.Duration) error {
	if window <= 0 {
		return errs.NewValueIsInvalidError("window")
	}
	c.window = window
	return nil
}
