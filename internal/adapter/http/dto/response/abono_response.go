package response

import (
	"time"

	"logistica_iac/internal/domain/entities"
)

type AbonoResponse struct {
	ID         string    `json:"id"`
	TrackingID string    `json:"tracking_id"`
	Amount     float64   `json:"amount"`
	Source     string    `json:"source"`
	Reference  string    `json:"reference,omitempty"`
	Date       time.Time `json:"date"`
}

func FromAbono(a entities.Abono) AbonoResponse {
	return AbonoResponse{
		ID:         a.ID,
		TrackingID: a.TrackingID,
		Amount:     a.Amount,
		Source:     string(a.Source),
		Reference:  a.Reference,
		Date:       a.Date,
	}
}

func FromAbonos(as []entities.Abono) []AbonoResponse {
	out := make([]AbonoResponse, 0, len(as))
	for _, a := range as {
		out = append(out, FromAbono(a))
	}
	return out
}
