// Package agentrepo implements agent persistence with GORM. Claiming an
// agent for a delivery uses a conditional update so two concurrent
// assignments cannot both take the same agent.
package agentrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/agent"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// AgentDTO represents the database structure for persisting agents.
type AgentDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string
	Phone           string
	VehicleType     string `gorm:"type:varchar(16)"`
	Latitude        *float64
	Longitude       *float64
	Status          string `gorm:"type:varchar(16);index"`
	TotalDeliveries int
	Rating          float64
	LastActiveAt    time.Time `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for agent entities.
func (AgentDTO) TableName() string {
	return "agents"
}

// fromDomain converts an agent aggregate to its database representation.
func fromDomain(aggregate *agent.Agent) AgentDTO {
	dto := AgentDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Phone:           aggregate.Phone(),
		VehicleType:     aggregate.VehicleType().String(),
		Status:          aggregate.Status().String(),
		TotalDeliveries: aggregate.TotalDeliveries(),
		Rating:          aggregate.Rating(),
		LastActiveAt:    aggregate.LastActiveAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}

	if position := aggregate.Position(); position != nil {
		lat, long := position.Latitude(), position.Longitude()
		dto.Latitude, dto.Longitude = &lat, &long
	}

	return dto
}

// toDomain reconstructs an agent aggregate from its database
// representation using RestoreAgent.
func toDomain(dto AgentDTO) (*agent.Agent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vehicleType, err := agent.VehicleTypeFromString(dto.VehicleType)
	if err != nil {
		return nil, err
	}
	status, err := agent.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var position *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		restored, posErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if posErr != nil {
			return nil, posErr
		}
		position = &restored
	}

	return agent.RestoreAgent(
		id, dto.Name, dto.Phone, vehicleType, position, status,
		dto.TotalDeliveries, dto.Rating,
		dto.LastActiveAt, dto.CreatedAt, dto.UpdatedAt,
	)
}
