package interfaces

import (
	"context"

	"logistica_iac/internal/domain/entities"
)

// IAbonoRepository abstracts the append-only abono audit trail.

type IAbonoRepository interface {
	Create(ctx context.Context, a entities.Abono) (entities.Abono, error)
	ListByTrackingID(ctx context.Context, trackingID string) ([]entities.Abono, error)
}
