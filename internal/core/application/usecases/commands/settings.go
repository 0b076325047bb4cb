package commands

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// AssignmentSettings carries the operational defaults used by delivery
// command handlers.
type AssignmentSettings struct {
	// SLA is the promised delivery window; the estimated delivery time
	// of an assignment is the assignment time plus SLA.
	SLA time.Duration

	// DefaultPosition is the tracking position of last resort, used when
	// neither the agent nor the delivery carries coordinates.
	DefaultPosition kernel.GeoPoint
}
