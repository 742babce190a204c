package request

import (
	"errors"
	"strings"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/domain/pricing"
)

var (
	ErrInvalidMeasurementValue = errors.New("invalid measurement value")
	ErrInvalidTransportMode    = errors.New("invalid transport mode")
	ErrInvalidStatusValue      = errors.New("invalid status value")
)

// DimensionsRequest carries a package's dimensions in inches. It is the
// measurement shape for ocean freight, which is billed per cubic foot.
type DimensionsRequest struct {
	LengthInches float64 `json:"length_in" binding:"required"`
	WidthInches  float64 `json:"width_in" binding:"required"`
	HeightInches float64 `json:"height_in" binding:"required"`
}

// RegisterShipmentRequest is the intake payload. Air and domestic shipments
// send weight_kg; ocean shipments send either dimensions or volume_ft3
// directly. pay_now settles the quoted amount at registration.
type RegisterShipmentRequest struct {
	TrackingID      string             `json:"tracking_id" binding:"required"`
	CustomerName    string             `json:"customer_name" binding:"required"`
	CustomerEmail   string             `json:"customer_email" binding:"required"`
	Description     string             `json:"description"`
	TransportMode   string             `json:"transport_mode" binding:"required"`
	WeightKg        float64            `json:"weight_kg"`
	VolumeCubicFeet float64            `json:"volume_ft3"`
	Dimensions      *DimensionsRequest `json:"dimensions"`
	PayNow          bool               `json:"pay_now"`
}

func (r RegisterShipmentRequest) ResolveTransportMode() (entities.TransportMode, error) {
	mode, ok := entities.ParseTransportMode(strings.TrimSpace(r.TransportMode))
	if !ok {
		return "", ErrInvalidTransportMode
	}
	return mode, nil
}

// ResolveDeclaredValue normalizes the measurement to the mode's billable
// unit: kilograms for air and domestic, cubic feet for ocean.
func (r RegisterShipmentRequest) ResolveDeclaredValue(mode entities.TransportMode) (float64, error) {
	if mode == entities.TransportModeOcean {
		if r.Dimensions != nil {
			return r.Dimensions.resolveCubicFeet()
		}
		if r.VolumeCubicFeet > 0 {
			return r.VolumeCubicFeet, nil
		}
		return 0, ErrInvalidMeasurementValue
	}

	if r.WeightKg < 0 {
		return 0, ErrInvalidMeasurementValue
	}
	return r.WeightKg, nil
}

func (d DimensionsRequest) resolveCubicFeet() (float64, error) {
	ft3, err := pricing.CubicFeet(d.LengthInches, d.WidthInches, d.HeightInches)
	if err != nil {
		return 0, ErrInvalidMeasurementValue
	}
	return ft3, nil
}

// VerifyShipmentRequest is the warehouse weigh-in payload. The verified
// measurement follows the same shape as intake; threshold_ratio optionally
// overrides the configured discrepancy tolerance for this call.
type VerifyShipmentRequest struct {
	VerifiedValue  float64            `json:"verified_value"`
	Dimensions     *DimensionsRequest `json:"dimensions"`
	ThresholdRatio float64            `json:"threshold_ratio"`
}

func (r VerifyShipmentRequest) ResolveVerifiedValue() (float64, error) {
	if r.Dimensions != nil {
		return r.Dimensions.resolveCubicFeet()
	}
	if r.VerifiedValue < 0 {
		return 0, ErrInvalidMeasurementValue
	}
	return r.VerifiedValue, nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) ResolveStatus() (entities.ShipmentStatus, error) {
	status, ok := entities.ParseShipmentStatus(strings.TrimSpace(r.Status))
	if !ok {
		return "", ErrInvalidStatusValue
	}
	return status, nil
}
