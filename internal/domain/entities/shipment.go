package entities

import (
	"strings"
	"time"
)

// TransportMode selects the rate applied when pricing a shipment.
//
// AIR shipments are priced per kilogram, OCEAN shipments per cubic foot
// (computed from L*W*H inches when dimensions are given), DOMESTIC is a flat
// per-unit fallback.

type TransportMode string

const (
	TransportModeAir      TransportMode = "AIR"
	TransportModeOcean    TransportMode = "OCEAN"
	TransportModeDomestic TransportMode = "DOMESTIC"
)

func ParseTransportMode(s string) (TransportMode, bool) {
	switch TransportMode(strings.ToUpper(strings.TrimSpace(s))) {
	case TransportModeAir:
		return TransportModeAir, true
	case TransportModeOcean:
		return TransportModeOcean, true
	case TransportModeDomestic:
		return TransportModeDomestic, true
	}
	return "", false
}

// ShipmentStatus is the transit state of a shipment.
//
// The admin console offers a free-choice status update at every step, so any
// status is reachable from any status. DELIVERED is not enforced as terminal.

type ShipmentStatus string

const (
	StatusReceivedAtWarehouse  ShipmentStatus = "RECEIVED_AT_WAREHOUSE"
	StatusInTransit            ShipmentStatus = "IN_TRANSIT"
	StatusArrivedAtDestination ShipmentStatus = "ARRIVED_AT_DESTINATION_WAREHOUSE"
	StatusDelivered            ShipmentStatus = "DELIVERED"
)

func ParseShipmentStatus(s string) (ShipmentStatus, bool) {
	switch ShipmentStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusReceivedAtWarehouse:
		return StatusReceivedAtWarehouse, true
	case StatusInTransit:
		return StatusInTransit, true
	case StatusArrivedAtDestination:
		return StatusArrivedAtDestination, true
	case StatusDelivered:
		return StatusDelivered, true
	}
	return "", false
}

// PaymentState is the stored payment status of a shipment. OVERDUE is never
// stored; it is derived at query time by ClassifyPayment.

type PaymentState string

const (
	PaymentStatePending PaymentState = "PENDING"
	PaymentStatePaid    PaymentState = "PAID"
)

// PaymentClassification is the read-side payment view shown to the admin and
// the customer portal.

type PaymentClassification string

const (
	ClassificationPending PaymentClassification = "PENDING"
	ClassificationPaid    PaymentClassification = "PAID"
	ClassificationOverdue PaymentClassification = "OVERDUE"
)

// PaymentEpsilon absorbs floating-point drift when comparing paid vs. due
// amounts (currency units).
const PaymentEpsilon = 0.01

// Shipment is the central record of the system.
//
// Monetary invariants:
//   - AmountDue always equals the priced measurement (verified when available,
//     declared otherwise) for the record's transport mode.
//   - AmountPaid never exceeds AmountDue beyond PaymentEpsilon; postings are
//     capped at the outstanding balance.
//   - PaymentState is PAID exactly when Outstanding() <= PaymentEpsilon.

type Shipment struct {
	TrackingID    string         `json:"tracking_id"`
	CustomerName  string         `json:"customer_name"`
	CustomerEmail string         `json:"customer_email"`
	Description   string         `json:"description"`
	TransportMode TransportMode  `json:"transport_mode"`
	DeclaredValue float64        `json:"declared_value"`
	VerifiedValue float64        `json:"verified_value"`
	IsVerified    bool           `json:"is_verified"`
	AmountDue     float64        `json:"amount_due"`
	AmountPaid    float64        `json:"amount_paid"`
	PaymentState  PaymentState   `json:"payment_state"`
	Status        ShipmentStatus `json:"status"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// BillableValue is the measurement AmountDue must be derived from.
func (s Shipment) BillableValue() float64 {
	if s.IsVerified {
		return s.VerifiedValue
	}
	return s.DeclaredValue
}

// Outstanding is the balance still owed, never negative.
func (s Shipment) Outstanding() float64 {
	if out := s.AmountDue - s.AmountPaid; out > 0 {
		return out
	}
	return 0
}

// ClassifyPayment derives the read-side payment view of a shipment at a given
// instant. It is a pure function of (shipment, now); the OVERDUE bucket is
// recomputed on every query so the cutoff is always evaluated against "now".
func ClassifyPayment(s Shipment, now time.Time, overdueAfterDays int) PaymentClassification {
	if s.PaymentState == PaymentStatePaid {
		return ClassificationPaid
	}
	if now.Sub(s.CreatedAt) > time.Duration(overdueAfterDays)*24*time.Hour {
		return ClassificationOverdue
	}
	return ClassificationPending
}

// NormalizeEmail lowercases and trims a customer email; emails are the foreign
// key linking shipments to accounts and must compare canonically.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
