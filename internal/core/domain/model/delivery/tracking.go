package delivery

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

// ErrTrackingEntryIsNotConstructed is returned when attempting to use an
// improperly initialized TrackingEntry.
var ErrTrackingEntryIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking entry must be created via NewTrackingEntry constructor")

// TrackingEntry is one immutable record in a delivery's audit trail: a
// position fix, the delivery status at that moment, optional remarks and
// a timestamp. Entries are appended, never edited or deleted.
type TrackingEntry struct {
	position  kernel.GeoPoint
	status    Status
	remarks   string
	timestamp time.Time
	guard     guard.ConstructorGuard
}

// NewTrackingEntry creates a validated TrackingEntry.
func NewTrackingEntry(position kernel.GeoPoint, status Status, remarks string, timestamp time.Time) (TrackingEntry, error) {
	entry := TrackingEntry{
		remarks:   remarks,
		timestamp: timestamp,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entry.setPosition(position),
		entry.setStatus(status),
	); err != nil {
		return TrackingEntry{}, err
	}

	return entry, nil
}

// Validate checks that the TrackingEntry was created through NewTrackingEntry.
func (e TrackingEntry) Validate() error {
	return e.guard.Validate(ErrTrackingEntryIsNotConstructed)
}

// Position returns the recorded position fix.
func (e TrackingEntry) Position() kernel.GeoPoint {
	return e.position
}

// Status returns the delivery status at the time of the entry.
func (e TrackingEntry) Status() Status {
	return e.status
}

// Remarks returns the optional free-form note attached to the entry.
func (e TrackingEntry) Remarks() string {
	return e.remarks
}

// Timestamp returns when the entry was recorded.
func (e TrackingEntry) Timestamp() time.Time {
	return e.timestamp
}

func (e *TrackingEntry) setPosition(position kernel.GeoPoint) error {
	if err := position.Validate(); err != nil {
		return err
	}
	e.position = position
	return nil
}

func (e *TrackingEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
