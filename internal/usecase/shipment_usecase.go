package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/domain/pricing"
	"logistica_iac/internal/usecase/interfaces"
)

var (
	ErrShipmentNotFound      = errors.New("shipment not found")
	ErrShipmentAlreadyExists = errors.New("shipment already exists")
	ErrShipmentNotInTrash    = errors.New("shipment not in trash")
	ErrInvalidTrackingID     = errors.New("invalid tracking id")
	ErrInvalidCustomer       = errors.New("invalid customer")
	ErrInvalidMeasurement    = errors.New("invalid measurement")
	ErrInvalidTransportMode  = errors.New("invalid transport mode")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrNotShipmentOwner      = errors.New("shipment belongs to another customer")
)

// ShipmentConfig carries the deployment-tunable constants of the core.
// Thresholds are configuration, never literals inside the logic.

type ShipmentConfig struct {
	Rates                     pricing.RateTable
	DiscrepancyThresholdRatio float64
	OverdueAfterDays          int
}

// RegisterShipmentInput is the intake command. DeclaredValue is the billable
// measurement already resolved to the mode's unit (kg for AIR, cubic feet for
// OCEAN). PayNow settles the full quoted amount at registration.

type RegisterShipmentInput struct {
	TrackingID    string
	CustomerName  string
	CustomerEmail string
	Description   string
	TransportMode entities.TransportMode
	DeclaredValue float64
	PayNow        bool
}

// ValidationResult is the outcome of a warehouse weigh-in.
//
// A flagged discrepancy is advisory: it is surfaced and notified but never
// blocks later lifecycle transitions.

type ValidationResult struct {
	Shipment            entities.Shipment
	DiscrepancyDetected bool
	DiscrepancyAmount   float64
}

// StatusChange reports a lifecycle transition, including the state it left.

type StatusChange struct {
	Shipment  entities.Shipment
	OldStatus entities.ShipmentStatus
	NewStatus entities.ShipmentStatus
}

// IShipmentUseCase exposes the shipment lifecycle operations:
// intake with quotation, weigh-in validation, free-choice transit updates,
// soft delete/restore and the scoped read views.

type IShipmentUseCase interface {
	Register(ctx context.Context, in RegisterShipmentInput) (entities.Shipment, error)
	GetByTrackingID(ctx context.Context, trackingID string) (entities.Shipment, error)
	GetForCustomer(ctx context.Context, customerEmail, trackingID string) (entities.Shipment, error)
	ListAll(ctx context.Context) ([]entities.Shipment, error)
	ListByCustomerEmail(ctx context.Context, customerEmail string) ([]entities.Shipment, error)
	Verify(ctx context.Context, trackingID string, verifiedValue, thresholdRatio float64) (ValidationResult, error)
	UpdateStatus(ctx context.Context, trackingID string, newStatus entities.ShipmentStatus) (StatusChange, error)
	Delete(ctx context.Context, trackingID string) (entities.Shipment, error)
	Restore(ctx context.Context, trackingID string) (entities.Shipment, error)
	ListTrash(ctx context.Context) ([]entities.Shipment, error)
}

type ShipmentUseCase struct {
	repo     interfaces.IShipmentRepository
	notifier interfaces.INotifier
	cfg      ShipmentConfig
}

var _ IShipmentUseCase = (*ShipmentUseCase)(nil)

func NewShipmentUseCase(repo interfaces.IShipmentRepository, notifier interfaces.INotifier, cfg ShipmentConfig) *ShipmentUseCase {
	if cfg.Rates == nil {
		cfg.Rates = pricing.DefaultRates()
	}
	if cfg.DiscrepancyThresholdRatio <= 0 {
		cfg.DiscrepancyThresholdRatio = 0.05
	}
	if cfg.OverdueAfterDays <= 0 {
		cfg.OverdueAfterDays = 15
	}
	return &ShipmentUseCase{repo: repo, notifier: notifier, cfg: cfg}
}

func (u *ShipmentUseCase) Register(ctx context.Context, in RegisterShipmentInput) (entities.Shipment, error) {
	trackingID := strings.TrimSpace(in.TrackingID)
	if trackingID == "" {
		return entities.Shipment{}, ErrInvalidTrackingID
	}
	name := strings.TrimSpace(in.CustomerName)
	email := entities.NormalizeEmail(in.CustomerEmail)
	if name == "" || email == "" {
		return entities.Shipment{}, ErrInvalidCustomer
	}
	if in.DeclaredValue < 0 {
		return entities.Shipment{}, ErrInvalidMeasurement
	}

	amount, err := pricing.ComputeAmount(in.DeclaredValue, in.TransportMode, u.cfg.Rates)
	if err != nil {
		if errors.Is(err, pricing.ErrUnknownMode) {
			return entities.Shipment{}, ErrInvalidTransportMode
		}
		return entities.Shipment{}, ErrInvalidMeasurement
	}

	if existing, err := u.repo.GetByTrackingID(ctx, trackingID); err != nil {
		return entities.Shipment{}, err
	} else if existing.TrackingID != "" {
		return entities.Shipment{}, ErrShipmentAlreadyExists
	}

	now := time.Now().UTC()
	s := entities.Shipment{
		TrackingID:    trackingID,
		CustomerName:  name,
		CustomerEmail: email,
		Description:   strings.TrimSpace(in.Description),
		TransportMode: in.TransportMode,
		DeclaredValue: in.DeclaredValue,
		AmountDue:     amount,
		PaymentState:  entities.PaymentStatePending,
		Status:        entities.StatusReceivedAtWarehouse,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.PayNow {
		s.AmountPaid = amount
		s.PaymentState = entities.PaymentStatePaid
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		return entities.Shipment{}, err
	}
	log.Printf("[shipment][usecase] registered tracking_id=%s mode=%s declared=%.2f amount_due=%.2f", created.TrackingID, created.TransportMode, created.DeclaredValue, created.AmountDue)
	if in.PayNow && u.notifier != nil {
		u.notifier.OnPaymentPosted(ctx, created.TrackingID, created.AmountPaid, created.CustomerEmail)
	}
	return created, nil
}

func (u *ShipmentUseCase) GetByTrackingID(ctx context.Context, trackingID string) (entities.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return entities.Shipment{}, ErrInvalidTrackingID
	}

	s, err := u.repo.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.TrackingID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	return s, nil
}

// GetForCustomer scopes a lookup to the acting customer. A record owned by
// someone else is reported as not owned rather than leaked.
func (u *ShipmentUseCase) GetForCustomer(ctx context.Context, customerEmail, trackingID string) (entities.Shipment, error) {
	s, err := u.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.CustomerEmail != entities.NormalizeEmail(customerEmail) {
		return entities.Shipment{}, ErrNotShipmentOwner
	}
	return s, nil
}

func (u *ShipmentUseCase) ListAll(ctx context.Context) ([]entities.Shipment, error) {
	return u.repo.ListAll(ctx)
}

func (u *ShipmentUseCase) ListByCustomerEmail(ctx context.Context, customerEmail string) ([]entities.Shipment, error) {
	email := entities.NormalizeEmail(customerEmail)
	if email == "" {
		return nil, ErrInvalidCustomer
	}
	return u.repo.ListByCustomerEmail(ctx, email)
}

// Verify records the warehouse-verified measurement, reprices the record from
// it and checks the declared value for a discrepancy. Re-verifying overwrites
// the previous verified value and re-evaluates the discrepancy from scratch.
// thresholdRatio <= 0 selects the configured default.
func (u *ShipmentUseCase) Verify(ctx context.Context, trackingID string, verifiedValue, thresholdRatio float64) (ValidationResult, error) {
	if verifiedValue < 0 {
		return ValidationResult{}, ErrInvalidMeasurement
	}
	if thresholdRatio <= 0 {
		thresholdRatio = u.cfg.DiscrepancyThresholdRatio
	}

	s, err := u.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return ValidationResult{}, err
	}

	s.VerifiedValue = verifiedValue
	s.IsVerified = true
	amount, err := pricing.ComputeAmount(s.BillableValue(), s.TransportMode, u.cfg.Rates)
	if err != nil {
		return ValidationResult{}, err
	}
	s.AmountDue = amount
	if s.Outstanding() <= entities.PaymentEpsilon {
		s.PaymentState = entities.PaymentStatePaid
	} else {
		s.PaymentState = entities.PaymentStatePending
	}
	s.UpdatedAt = time.Now().UTC()

	delta := math.Abs(verifiedValue - s.DeclaredValue)
	flagged := delta > s.DeclaredValue*thresholdRatio

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return ValidationResult{}, err
	}
	if updated.TrackingID == "" {
		return ValidationResult{}, ErrShipmentNotFound
	}

	log.Printf("[shipment][usecase] verified tracking_id=%s declared=%.2f verified=%.2f delta=%.2f flagged=%t", updated.TrackingID, updated.DeclaredValue, verifiedValue, delta, flagged)
	if flagged && u.notifier != nil {
		u.notifier.OnDiscrepancy(ctx, updated.TrackingID, updated.DeclaredValue, verifiedValue, delta)
	}

	return ValidationResult{Shipment: updated, DiscrepancyDetected: flagged, DiscrepancyAmount: delta}, nil
}

// UpdateStatus overwrites the transit state. Any status is reachable from any
// status by explicit admin action; the console has always offered a
// free-choice dropdown and ops rely on it to correct mis-clicks.
func (u *ShipmentUseCase) UpdateStatus(ctx context.Context, trackingID string, newStatus entities.ShipmentStatus) (StatusChange, error) {
	if _, ok := entities.ParseShipmentStatus(string(newStatus)); !ok {
		return StatusChange{}, ErrInvalidStatus
	}

	s, err := u.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return StatusChange{}, err
	}

	oldStatus := s.Status
	s.Status = newStatus
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, s)
	if err != nil {
		return StatusChange{}, err
	}
	if updated.TrackingID == "" {
		return StatusChange{}, ErrShipmentNotFound
	}

	log.Printf("[shipment][usecase] status change tracking_id=%s old=%s new=%s", updated.TrackingID, oldStatus, newStatus)
	if u.notifier != nil {
		u.notifier.OnStatusChange(ctx, updated.TrackingID, oldStatus, newStatus, updated.CustomerEmail)
	}

	return StatusChange{Shipment: updated, OldStatus: oldStatus, NewStatus: newStatus}, nil
}

func (u *ShipmentUseCase) Delete(ctx context.Context, trackingID string) (entities.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return entities.Shipment{}, ErrInvalidTrackingID
	}

	moved, err := u.repo.MoveToTrash(ctx, trackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if moved.TrackingID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	log.Printf("[shipment][usecase] soft-deleted tracking_id=%s", moved.TrackingID)
	return moved, nil
}

func (u *ShipmentUseCase) Restore(ctx context.Context, trackingID string) (entities.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return entities.Shipment{}, ErrInvalidTrackingID
	}

	restored, err := u.repo.RestoreFromTrash(ctx, trackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if restored.TrackingID == "" {
		return entities.Shipment{}, ErrShipmentNotInTrash
	}
	log.Printf("[shipment][usecase] restored tracking_id=%s", restored.TrackingID)
	return restored, nil
}

func (u *ShipmentUseCase) ListTrash(ctx context.Context) ([]entities.Shipment, error) {
	return u.repo.ListTrash(ctx)
}
