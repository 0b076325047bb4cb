package jobs

import (
	"context"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AgentLivenessJob periodically sweeps the agent directory and marks
// AVAILABLE agents that have gone quiet as OFFLINE, so dispatch never
// offers deliveries to dead couriers.
type AgentLivenessJob struct {
	handler commands.MarkStaleAgentsOfflineCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAgentLivenessJob creates the liveness sweep job. The window is the
// inactivity period after which an agent is considered stale.
func NewAgentLivenessJob(
	handler commands.MarkStaleAgentsOfflineCommandHandler,
	window time.Duration,
	logger *slog.Logger,
) *AgentLivenessJob {
	return &AgentLivenessJob{
		handler: handler,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "agent_liveness_job"),
	}
}

// Start begins the liveness sweep, running once a minute.
func (j *AgentLivenessJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewMarkStaleAgentsOfflineCommand(j.window)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Agent liveness sweep misconfigured", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			j.logger.ErrorContext(ctx, "Agent liveness sweep failed", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Agent liveness job started (running every minute)",
		"window", j.window.String())
	return nil
}

// Stop stops the liveness sweep.
func (j *AgentLivenessJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Agent liveness job stopped")
}
