package entities

import "time"

// AbonoSource records where a posting came from.

type AbonoSource string

const (
	AbonoSourceAdmin   AbonoSource = "admin"
	AbonoSourceGateway AbonoSource = "gateway"
)

// Abono is a partial payment applied against a shipment's outstanding balance.
//
// Amount is the applied amount after capping, which may be lower than what the
// caller posted. Rows are append-only audit data; the running total lives on
// the shipment itself.

type Abono struct {
	ID         string      `json:"id"`
	TrackingID string      `json:"tracking_id"`
	Amount     float64     `json:"amount"`
	Source     AbonoSource `json:"source"`
	Reference  string      `json:"reference,omitempty"`
	Date       time.Time   `json:"date"`
}
