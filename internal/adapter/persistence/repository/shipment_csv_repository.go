package repository

import (
	"context"
	"errors"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"
)

const (
	shipmentsFileName = "shipments.csv"
	trashFileName     = "shipments_trash.csv"
)

var ErrDuplicateTrackingID = errors.New("duplicate tracking id")

var shipmentHeader = []string{
	"tracking_id", "customer_name", "customer_email", "description",
	"transport_mode", "declared_value", "verified_value", "is_verified",
	"amount_due", "amount_paid", "payment_state", "status",
	"created_at", "updated_at",
}

// ShipmentCSVRepository persists shipments as two flat CSV tables (active and
// trash). A single mutex serializes every operation: each one reads the whole
// collection, mutates one element by tracking id and writes the whole
// collection back. Sized for a single admin and low request rates.

type ShipmentCSVRepository struct {
	mu         sync.Mutex
	activePath string
	trashPath  string
}

var _ interfaces.IShipmentRepository = (*ShipmentCSVRepository)(nil)

func NewShipmentCSVRepository(dataDir string) *ShipmentCSVRepository {
	return &ShipmentCSVRepository{
		activePath: filepath.Join(dataDir, shipmentsFileName),
		trashPath:  filepath.Join(dataDir, trashFileName),
	}
}

func (r *ShipmentCSVRepository) Create(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load(r.activePath)
	for _, existing := range all {
		if existing.TrackingID == s.TrackingID {
			return entities.Shipment{}, ErrDuplicateTrackingID
		}
	}
	all = append(all, s)
	if err := r.save(r.activePath, all); err != nil {
		return entities.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentCSVRepository) GetByTrackingID(ctx context.Context, trackingID string) (entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range r.load(r.activePath) {
		if s.TrackingID == trackingID {
			return s, nil
		}
	}
	return entities.Shipment{}, nil
}

func (r *ShipmentCSVRepository) ListAll(ctx context.Context) ([]entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(r.activePath), nil
}

func (r *ShipmentCSVRepository) ListByCustomerEmail(ctx context.Context, email string) ([]entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Shipment, 0)
	for _, s := range r.load(r.activePath) {
		if s.CustomerEmail == email {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *ShipmentCSVRepository) Update(ctx context.Context, s entities.Shipment) (entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load(r.activePath)
	for i, existing := range all {
		if existing.TrackingID == s.TrackingID {
			all[i] = s
			if err := r.save(r.activePath, all); err != nil {
				return entities.Shipment{}, err
			}
			return s, nil
		}
	}
	return entities.Shipment{}, nil
}

func (r *ShipmentCSVRepository) MoveToTrash(ctx context.Context, trackingID string) (entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	active := r.load(r.activePath)
	for i, s := range active {
		if s.TrackingID == trackingID {
			active = append(active[:i], active[i+1:]...)
			trash := append(r.load(r.trashPath), s)
			if err := r.save(r.trashPath, trash); err != nil {
				return entities.Shipment{}, err
			}
			if err := r.save(r.activePath, active); err != nil {
				return entities.Shipment{}, err
			}
			return s, nil
		}
	}
	return entities.Shipment{}, nil
}

func (r *ShipmentCSVRepository) RestoreFromTrash(ctx context.Context, trackingID string) (entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trash := r.load(r.trashPath)
	for i, s := range trash {
		if s.TrackingID == trackingID {
			trash = append(trash[:i], trash[i+1:]...)
			active := append(r.load(r.activePath), s)
			if err := r.save(r.activePath, active); err != nil {
				return entities.Shipment{}, err
			}
			if err := r.save(r.trashPath, trash); err != nil {
				return entities.Shipment{}, err
			}
			return s, nil
		}
	}
	return entities.Shipment{}, nil
}

func (r *ShipmentCSVRepository) ListTrash(ctx context.Context) ([]entities.Shipment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(r.trashPath), nil
}

func (r *ShipmentCSVRepository) load(path string) []entities.Shipment {
	rows := readCSVTable(path, len(shipmentHeader))
	out := make([]entities.Shipment, 0, len(rows))
	for _, row := range rows {
		out = append(out, shipmentFromRow(row))
	}
	return out
}

func (r *ShipmentCSVRepository) save(path string, all []entities.Shipment) error {
	rows := make([][]string, 0, len(all))
	for _, s := range all {
		rows = append(rows, shipmentToRow(s))
	}
	return writeCSVTable(path, shipmentHeader, rows)
}

func shipmentToRow(s entities.Shipment) []string {
	return []string{
		s.TrackingID,
		s.CustomerName,
		s.CustomerEmail,
		s.Description,
		string(s.TransportMode),
		formatFloat(s.DeclaredValue),
		formatFloat(s.VerifiedValue),
		strconv.FormatBool(s.IsVerified),
		formatFloat(s.AmountDue),
		formatFloat(s.AmountPaid),
		string(s.PaymentState),
		string(s.Status),
		s.CreatedAt.UTC().Format(time.RFC3339Nano),
		s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func shipmentFromRow(row []string) entities.Shipment {
	createdAt, _ := time.Parse(time.RFC3339Nano, row[12])
	updatedAt, _ := time.Parse(time.RFC3339Nano, row[13])
	isVerified, _ := strconv.ParseBool(row[7])
	return entities.Shipment{
		TrackingID:    row[0],
		CustomerName:  row[1],
		CustomerEmail: row[2],
		Description:   row[3],
		TransportMode: entities.TransportMode(row[4]),
		DeclaredValue: parseFloat(row[5]),
		VerifiedValue: parseFloat(row[6]),
		IsVerified:    isVerified,
		AmountDue:     parseFloat(row[8]),
		AmountPaid:    parseFloat(row[9]),
		PaymentState:  entities.PaymentState(row[10]),
		Status:        entities.ShipmentStatus(row[11]),
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}
