package interfaces

import (
	"context"

	"logistica_iac/internal/domain/entities"
)

// IShipmentRepository abstracts persistence for Shipment records.
//
// Conventions shared by every backend:
//   - a missing record is reported as a zero-value Shipment with a nil error;
//     usecases translate that into their NotFound sentinel
//   - Create fails when the tracking id already exists
//   - deletes are soft: MoveToTrash relocates the record unchanged into a
//     separate trash collection, RestoreFromTrash moves it back

type IShipmentRepository interface {
	Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	GetByTrackingID(ctx context.Context, trackingID string) (entities.Shipment, error)
	ListAll(ctx context.Context) ([]entities.Shipment, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]entities.Shipment, error)
	Update(ctx context.Context, s entities.Shipment) (entities.Shipment, error)
	MoveToTrash(ctx context.Context, trackingID string) (entities.Shipment, error)
	RestoreFromTrash(ctx context.Context, trackingID string) (entities.Shipment, error)
	ListTrash(ctx context.Context) ([]entities.Shipment, error)
}
