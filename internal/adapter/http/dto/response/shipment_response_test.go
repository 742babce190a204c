package response

import (
	"testing"
	"time"

	"logistica_iac/internal/domain/entities"
)

func TestFromShipment(t *testing.T) {
	s := entities.Shipment{
		TrackingID:   "IAC-001",
		AmountDue:    51.5,
		AmountPaid:   30.0,
		PaymentState: entities.PaymentStatePending,
		Status:       entities.StatusInTransit,
		UpdatedAt:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}

	r := FromShipment(s, entities.ClassificationOverdue)
	if r.Outstanding != 21.5 {
		t.Fatalf("expected outstanding 21.5, got %v", r.Outstanding)
	}
	if r.PaymentState != "PENDING" || r.PaymentClassification != "OVERDUE" {
		t.Fatalf("state and classification must be reported separately, got %s/%s", r.PaymentState, r.PaymentClassification)
	}

	pub := FromShipmentPublic(s)
	if pub.TrackingID != "IAC-001" || pub.Status != "IN_TRANSIT" {
		t.Fatalf("unexpected public view: %+v", pub)
	}
}
