package interfaces

import (
	"context"

	"logistica_iac/internal/domain/entities"
)

// INotifier receives the events the core emits on state changes. Delivery
// (console, in-app list, email) is entirely the implementation's concern;
// the core only guarantees the event fields.

type INotifier interface {
	OnDiscrepancy(ctx context.Context, trackingID string, declared, verified, delta float64)
	OnStatusChange(ctx context.Context, trackingID string, oldStatus, newStatus entities.ShipmentStatus, customerEmail string)
	OnPaymentPosted(ctx context.Context, trackingID string, amount float64, customerEmail string)
}
