package request

import (
	"errors"
	"testing"

	"logistica_iac/internal/domain/entities"
)

func TestRegisterShipmentRequest_ResolveTransportMode(t *testing.T) {
	r := RegisterShipmentRequest{TransportMode: " air "}
	mode, err := r.ResolveTransportMode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != entities.TransportModeAir {
		t.Fatalf("expected AIR, got %q", mode)
	}

	r2 := RegisterShipmentRequest{TransportMode: "teleport"}
	if _, err := r2.ResolveTransportMode(); !errors.Is(err, ErrInvalidTransportMode) {
		t.Fatalf("expected ErrInvalidTransportMode, got %v", err)
	}
}

func TestRegisterShipmentRequest_ResolveDeclaredValue(t *testing.T) {
	r := RegisterShipmentRequest{WeightKg: 12.5}
	v, err := r.ResolveDeclaredValue(entities.TransportModeAir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 12.5 {
		t.Fatalf("expected 12.5, got %v", v)
	}

	r2 := RegisterShipmentRequest{WeightKg: -1}
	if _, err := r2.ResolveDeclaredValue(entities.TransportModeDomestic); !errors.Is(err, ErrInvalidMeasurementValue) {
		t.Fatalf("expected ErrInvalidMeasurementValue, got %v", err)
	}

	r3 := RegisterShipmentRequest{Dimensions: &DimensionsRequest{LengthInches: 12, WidthInches: 12, HeightInches: 12}}
	v, err = r3.ResolveDeclaredValue(entities.TransportModeOcean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1.0 {
		t.Fatalf("expected 1 cubic foot, got %v", v)
	}

	r4 := RegisterShipmentRequest{VolumeCubicFeet: 3.5}
	v, err = r4.ResolveDeclaredValue(entities.TransportModeOcean)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 3.5 {
		t.Fatalf("expected 3.5, got %v", v)
	}

	r5 := RegisterShipmentRequest{}
	if _, err := r5.ResolveDeclaredValue(entities.TransportModeOcean); !errors.Is(err, ErrInvalidMeasurementValue) {
		t.Fatalf("expected ErrInvalidMeasurementValue, got %v", err)
	}
}

func TestVerifyShipmentRequest_ResolveVerifiedValue(t *testing.T) {
	r := VerifyShipmentRequest{VerifiedValue: 104.9}
	v, err := r.ResolveVerifiedValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 104.9 {
		t.Fatalf("expected 104.9, got %v", v)
	}

	r2 := VerifyShipmentRequest{Dimensions: &DimensionsRequest{LengthInches: 24, WidthInches: 12, HeightInches: 6}}
	v, err = r2.ResolveVerifiedValue()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1.0 {
		t.Fatalf("expected 1 cubic foot, got %v", v)
	}

	r3 := VerifyShipmentRequest{Dimensions: &DimensionsRequest{LengthInches: -1, WidthInches: 1, HeightInches: 1}}
	if _, err := r3.ResolveVerifiedValue(); !errors.Is(err, ErrInvalidMeasurementValue) {
		t.Fatalf("expected ErrInvalidMeasurementValue, got %v", err)
	}
}

func TestUpdateStatusRequest_ResolveStatus(t *testing.T) {
	r := UpdateStatusRequest{Status: " in_transit "}
	status, err := r.ResolveStatus()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != entities.StatusInTransit {
		t.Fatalf("expected IN_TRANSIT, got %q", status)
	}

	r2 := UpdateStatusRequest{Status: "LOST_IN_SPACE"}
	if _, err := r2.ResolveStatus(); !errors.Is(err, ErrInvalidStatusValue) {
		t.Fatalf("expected ErrInvalidStatusValue, got %v", err)
	}
}
