package agentrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormAgentRepository implements AgentRepository using GORM.
type GormAgentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormAgentRepository creates a new GORM agent repository.
func NewGormAgentRepository(db *gorm.DB, tracker aggregateTracker) *GormAgentRepository {
	return &GormAgentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new agent to the database.
func (r *GormAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing agent to the database.
func (r *GormAgentRepository) Update(ctx context.Context, aggregate *agent.Agent) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&AgentDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an agent by ID.
func (r *GormAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("agent", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByStatus retrieves all agents with the given availability.
func (r *GormAgentRepository) GetAllByStatus(ctx context.Context, status agent.Status) ([]*agent.Agent, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []AgentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status.String()).Error; err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

// ClaimAvailable atomically moves the agent from AVAILABLE to BUSY. The
// conditional update closes the race between concurrent assignments: only
// one of them sees RowsAffected == 1.
func (r *GormAgentRepository) ClaimAvailable(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AgentDTO{}).
		Where("id = ? AND status = ?", id.Bytes(), agent.StatusAvailable.String()).
		Updates(map[string]any{
			"status":         agent.StatusBusy.String(),
			"last_active_at": time.Now().UTC(),
			"updated_at":     time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 1 {
		return nil
	}

	// The claim failed. Look the row up to tell a missing agent apart
	// from one that lost the race.
	var dto AgentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundError("agent", id.String())
		}
		return err
	}

	return errs.NewInvalidStateError("agent", dto.Status, "claim")
}

// GetAllStale retrieves agents that have not reported activity since the
// cutoff and are not already offline.
func (r *GormAgentRepository) GetAllStale(ctx context.Context, cutoff time.Time) ([]*agent.Agent, error) {
	var dtos []AgentDTO
	err := r.db.WithContext(ctx).
		Where("status <> ? AND last_active_at < ?", agent.StatusOffline.String(), cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainSlice(dtos)
}

func (r *GormAgentRepository) toDomainSlice(dtos []AgentDTO) ([]*agent.Agent, error) {
	agents := make([]*agent.Agent, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}

	return agents, nil
}
