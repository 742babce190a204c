package notification

import (
	"context"
	"log"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"
)

// LogNotifier writes every shipment event to the process log. It is the
// default sink; swapping in email or webhook delivery only needs another
// INotifier implementation.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) OnDiscrepancy(ctx context.Context, trackingID string, declared, verified, delta float64) {
	log.Printf("[notification][discrepancy] tracking_id=%s declared=%.2f verified=%.2f delta=%.2f", trackingID, declared, verified, delta)
}

func (n *LogNotifier) OnStatusChange(ctx context.Context, trackingID string, oldStatus, newStatus entities.ShipmentStatus, customerEmail string) {
	log.Printf("[notification][status] tracking_id=%s old=%s new=%s customer=%s", trackingID, oldStatus, newStatus, customerEmail)
}

func (n *LogNotifier) OnPaymentPosted(ctx context.Context, trackingID string, amount float64, customerEmail string) {
	log.Printf("[notification][payment] tracking_id=%s amount=%.2f customer=%s", trackingID, amount, customerEmail)
}
