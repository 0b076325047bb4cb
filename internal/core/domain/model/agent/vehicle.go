package agent

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// VehicleType represents the vehicle an agent delivers with.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	// VehicleBike is a motorbike.
	VehicleBike

	// VehicleScooter is a scooter.
	VehicleScooter

	// VehicleCar is a car.
	VehicleCar

	// VehicleBicycle is a pedal bicycle.
	VehicleBicycle
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown: "UNKNOWN",
		VehicleBike:    "BIKE",
		VehicleScooter: "SCOOTER",
		VehicleCar:     "CAR",
		VehicleBicycle: "BICYCLE",
	}
}

func getValidVehicleTypeStrings() map[VehicleType]string {
	//nolint:exhaustive // VehicleUnknown is intentionally excluded as it's invalid
	return map[VehicleType]string{
		VehicleBike:    "BIKE",
		VehicleScooter: "SCOOTER",
		VehicleCar:     "CAR",
		VehicleBicycle: "BICYCLE",
	}
}

// VehicleTypeFromString parses a vehicle type from its canonical wire
// representation ("BIKE", "SCOOTER", "CAR", "BICYCLE").
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vehicleType, str := range getValidVehicleTypeStrings() {
		if str == s {
			return vehicleType, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicle type is invalid",
		fmt.Errorf("%q is not a valid vehicle type", s),
	)
}

// Validate checks if the VehicleType value is valid.
func (v VehicleType) Validate() error {
	if _, ok := getValidVehicleTypeStrings()[v]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle type is invalid",
			fmt.Errorf("%d is not a valid vehicle type", v),
		)
	}
	return nil
}

// String returns the canonical name of the vehicle type.
// It implements fmt.Stringer; invalid values render as "UNKNOWN".
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "UNKNOWN"
}
