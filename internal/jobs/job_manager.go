package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	agentLivenessJob *AgentLivenessJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	markStaleAgentsOfflineHandler commands.MarkStaleAgentsOfflineCommandHandler,
	livenessWindow time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		agentLivenessJob: NewAgentLivenessJob(markStaleAgentsOfflineHandler, livenessWindow, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.agentLivenessJob.Start(); err != nil {
		return fmt.Errorf("failed to start agent liveness job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.agentLivenessJob.Stop()
}
