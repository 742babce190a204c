package response

import (
	"time"

	"logistica_iac/internal/domain/entities"
)

type ShipmentResponse struct {
	TrackingID            string    `json:"tracking_id"`
	CustomerName          string    `json:"customer_name"`
	CustomerEmail         string    `json:"customer_email"`
	Description           string    `json:"description"`
	TransportMode         string    `json:"transport_mode"`
	DeclaredValue         float64   `json:"declared_value"`
	VerifiedValue         float64   `json:"verified_value"`
	IsVerified            bool      `json:"is_verified"`
	AmountDue             float64   `json:"amount_due"`
	AmountPaid            float64   `json:"amount_paid"`
	Outstanding           float64   `json:"outstanding"`
	PaymentState          string    `json:"payment_state"`
	PaymentClassification string    `json:"payment_classification"`
	Status                string    `json:"status"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

func FromShipment(s entities.Shipment, classification entities.PaymentClassification) ShipmentResponse {
	return ShipmentResponse{
		TrackingID:            s.TrackingID,
		CustomerName:          s.CustomerName,
		CustomerEmail:         s.CustomerEmail,
		Description:           s.Description,
		TransportMode:         string(s.TransportMode),
		DeclaredValue:         s.DeclaredValue,
		VerifiedValue:         s.VerifiedValue,
		IsVerified:            s.IsVerified,
		AmountDue:             s.AmountDue,
		AmountPaid:            s.AmountPaid,
		Outstanding:           s.Outstanding(),
		PaymentState:          string(s.PaymentState),
		PaymentClassification: string(classification),
		Status:                string(s.Status),
		CreatedAt:             s.CreatedAt,
		UpdatedAt:             s.UpdatedAt,
	}
}

func FromShipments(ss []entities.Shipment, classify func(entities.Shipment) entities.PaymentClassification) []ShipmentResponse {
	out := make([]ShipmentResponse, 0, len(ss))
	for _, s := range ss {
		out = append(out, FromShipment(s, classify(s)))
	}
	return out
}

// TrackingResponse is the public view served without authentication. It
// deliberately omits customer identity and billing fields.
type TrackingResponse struct {
	TrackingID string    `json:"tracking_id"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromShipmentPublic(s entities.Shipment) TrackingResponse {
	return TrackingResponse{
		TrackingID: s.TrackingID,
		Status:     string(s.Status),
		UpdatedAt:  s.UpdatedAt,
	}
}

type ValidationResponse struct {
	Shipment            ShipmentResponse `json:"shipment"`
	DiscrepancyDetected bool             `json:"discrepancy_detected"`
	DiscrepancyAmount   float64          `json:"discrepancy_amount"`
}

type StatusChangeResponse struct {
	Shipment  ShipmentResponse `json:"shipment"`
	OldStatus string           `json:"old_status"`
	NewStatus string           `json:"new_status"`
}
