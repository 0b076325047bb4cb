package agent

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrAgentIsNotConstructed is returned when an Agent instance was not
// created through the NewAgent or RestoreAgent factory methods.
var ErrAgentIsNotConstructed = errors.New("Agent must be created via NewAgent or RestoreAgent constructor")

// Agent represents a delivery agent: a courier who picks orders up from
// restaurants and delivers them to customers.
//
// Agent follows these invariants:
//   - Must have a valid unique identifier, a name and a phone number
//   - Claiming for a delivery requires StatusAvailable
//   - Position updates and status changes stamp lastActiveAt
//   - The cumulative delivery count only grows, and only on completed deliveries
//   - Can only be created through NewAgent or RestoreAgent
type Agent struct {
	// id is the unique identifier for the agent
	id kernel.UUID

	name  string
	phone string

	vehicleType VehicleType

	// position is the last self-reported location (nil until first report)
	position *kernel.GeoPoint

	// status is the agent's availability
	status Status

	// totalDeliveries counts completed deliveries
	totalDeliveries int

	rating float64

	// lastActiveAt is stamped on every position or status change and is
	// used to sweep stale agents offline
	lastActiveAt time.Time

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the agent was created via a factory method
	isConstructed bool
}

// NewAgent registers a new delivery agent. Agents start OFFLINE and must
// explicitly go AVAILABLE before the dispatcher will consider them.
//
// Parameters:
//   - id: unique identifier for the agent (must be a valid UUID)
//   - name: the agent's display name (must be non-empty)
//   - phone: contact phone number (must be non-empty)
//   - vehicleType: the delivery vehicle (must be a valid VehicleType)
//   - position: optional initial position, nil when unknown
//   - now: registration timestamp
//
// Returns:
//   - *Agent: the registered agent if all validations pass
//   - error: validation error if any parameter is invalid
func NewAgent(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType VehicleType,
	position *kernel.GeoPoint,
	now time.Time,
) (*Agent, error) {
	a := &Agent{
		status:        StatusOffline,
		lastActiveAt:  now,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setPhone(phone),
		a.setVehicleType(vehicleType),
		a.setPosition(position),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// RestoreAgent reconstructs an Agent from persistence, trusting the stored
// status, counters and timestamps.
func RestoreAgent(
	id kernel.UUID,
	name string,
	phone string,
	vehicleType VehicleType,
	position *kernel.GeoPoint,
	status Status,
	totalDeliveries int,
	rating float64,
	lastActiveAt time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Agent, error) {
	a := &Agent{
		totalDeliveries: totalDeliveries,
		rating:          rating,
		lastActiveAt:    lastActiveAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setPhone(phone),
		a.setVehicleType(vehicleType),
		a.setPosition(position),
		a.setStatus(status),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the Agent instance was properly constructed through a
// factory method.
func (a *Agent) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAgentIsNotConstructed
	}

	return nil
}

// IsEqual compares two agents by their unique identifiers.
func (a *Agent) IsEqual(other *Agent) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the agent's unique identifier.
func (a *Agent) ID() kernel.UUID {
	return a.id
}

// Name returns the agent's display name.
func (a *Agent) Name() string {
	return a.name
}

// Phone returns the agent's contact phone number.
func (a *Agent) Phone() string {
	return a.phone
}

// VehicleType returns the agent's delivery vehicle.
func (a *Agent) VehicleType() VehicleType {
	return a.vehicleType
}

// Position returns the last reported position, or nil if the agent has
// never reported one.
func (a *Agent) Position() *kernel.GeoPoint {
	return a.position
}

// Status returns the agent's availability.
func (a *Agent) Status() Status {
	return a.status
}

// TotalDeliveries returns the number of completed deliveries.
func (a *Agent) TotalDeliveries() int {
	return a.totalDeliveries
}

// Rating returns the agent's average customer rating.
func (a *Agent) Rating() float64 {
	return a.rating
}

// LastActiveAt returns when the agent last reported activity.
func (a *Agent) LastActiveAt() time.Time {
	return a.lastActiveAt
}

// CreatedAt returns when the agent registered.
func (a *Agent) CreatedAt() time.Time {
	return a.createdAt
}

// UpdatedAt returns when the agent was last modified.
func (a *Agent) UpdatedAt() time.Time {
	return a.updatedAt
}

// UpdatePosition records a self-reported position fix and stamps
// lastActiveAt.
func (a *Agent) UpdatePosition(position kernel.GeoPoint, now time.Time) error {
	if err := position.Validate(); err != nil {
		return err
	}

	a.position = &position
	a.lastActiveAt = now
	a.updatedAt = now
	return nil
}

// SetStatus changes the agent's availability and stamps lastActiveAt.
func (a *Agent) SetStatus(status Status, now time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}

	a.status = status
	a.lastActiveAt = now
	a.updatedAt = now
	return nil
}

// MarkBusy claims the agent for a delivery.
//
// Returns:
//   - nil on success, with the agent now StatusBusy
//   - an invalid-state error if the agent is not StatusAvailable
//
// In concurrent assignment paths the persistence layer must additionally
// enforce this with an atomic conditional update; this method guards the
// single-process view.
func (a *Agent) MarkBusy(now time.Time) error {
	if a.status != StatusAvailable {
		return errs.NewInvalidStateError("agent", a.status.String(), "mark busy")
	}

	a.status = StatusBusy
	a.lastActiveAt = now
	a.updatedAt = now
	return nil
}

// Release returns the agent to StatusAvailable after a delivery ends.
// When completed is true the cumulative delivery count is incremented;
// cancelled and failed deliveries release the agent without counting.
func (a *Agent) Release(completed bool, now time.Time) {
	a.status = StatusAvailable
	if completed {
		a.totalDeliveries++
	}
	a.lastActiveAt = now
	a.updatedAt = now
}

// MarkOffline takes the agent off shift. Used both by explicit sign-off
// and by the liveness sweep for agents that stopped reporting.
func (a *Agent) MarkOffline(now time.Time) {
	a.status = StatusOffline
	a.updatedAt = now
}

func (a *Agent) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Agent) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Agent) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	a.phone = phone
	return nil
}

func (a *Agent) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	a.vehicleType = vehicleType
	return nil
}

func (a *Agent) setPosition(position *kernel.GeoPoint) error {
	if position == nil {
		return nil
	}
	if err := position.Validate(); err != nil {
		return err
	}
	a.position = position
	return nil
}

func (a *Agent) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	a.status = status
	return nil
}
