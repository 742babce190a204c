package pricing

import (
	"errors"

	"logistica_iac/internal/domain/entities"
)

var (
	ErrNegativeValue     = errors.New("negative measurement value")
	ErrNegativeDimension = errors.New("negative dimension")
	ErrUnknownMode       = errors.New("unknown transport mode")
)

// RateTable maps a transport mode to its currency rate per unit (kg for AIR,
// cubic foot for OCEAN, flat unit for DOMESTIC). Rates are deployment
// configuration, injected by the caller, never baked in here.

type RateTable map[entities.TransportMode]float64

// DefaultRates carries the historically observed deployment defaults. Used
// only when the environment provides no override.
func DefaultRates() RateTable {
	return RateTable{
		entities.TransportModeAir:      5.0,
		entities.TransportModeOcean:    16.0,
		entities.TransportModeDomestic: 5.0,
	}
}

// ComputeAmount converts a physical measurement into a monetary amount.
// A zero value prices to 0.0; a negative value is a caller error.
func ComputeAmount(value float64, mode entities.TransportMode, rates RateTable) (float64, error) {
	if value < 0 {
		return 0, ErrNegativeValue
	}
	rate, ok := rates[mode]
	if !ok {
		return 0, ErrUnknownMode
	}
	return value * rate, nil
}

// CubicFeet converts linear dimensions in inches to cubic feet
// (1 ft^3 = 1728 in^3). Used to derive the billable volume of OCEAN
// shipments registered with L*W*H instead of a pre-computed volume.
func CubicFeet(length, width, height float64) (float64, error) {
	if length < 0 || width < 0 || height < 0 {
		return 0, ErrNegativeDimension
	}
	return (length * width * height) / 1728.0, nil
}
