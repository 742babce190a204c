package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidPaymentAmount  = errors.New("invalid payment amount")
	ErrShipmentAlreadyPaid   = errors.New("shipment already paid")
	ErrPaymentGatewayNotSet  = errors.New("payment gateway not configured")
	ErrPaymentNotApproved    = errors.New("payment not approved by gateway")
	ErrInvalidGatewayPayload = errors.New("invalid payment gateway payload")
)

// IPaymentUseCase is the payment ledger: capped abono postings against a
// shipment's outstanding balance, the abono audit trail, the derived
// PENDING/PAID/OVERDUE classification, and the online checkout flow that
// charges the outstanding balance through the payment gateway.

type IPaymentUseCase interface {
	PostPayment(ctx context.Context, trackingID string, postedAmount float64) (entities.Shipment, error)
	PayOutstandingOnline(ctx context.Context, customerEmail, trackingID string, gatewayPayload json.RawMessage) (entities.Shipment, error)
	ListAbonos(ctx context.Context, trackingID string) ([]entities.Abono, error)
	Classify(s entities.Shipment, now time.Time) entities.PaymentClassification
}

type PaymentUseCase struct {
	shipments interfaces.IShipmentRepository
	abonos    interfaces.IAbonoRepository
	gateway   interfaces.IPaymentGateway
	notifier  interfaces.INotifier
	cfg       ShipmentConfig
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(shipments interfaces.IShipmentRepository, abonos interfaces.IAbonoRepository, gateway interfaces.IPaymentGateway, notifier interfaces.INotifier, cfg ShipmentConfig) *PaymentUseCase {
	if cfg.OverdueAfterDays <= 0 {
		cfg.OverdueAfterDays = 15
	}
	return &PaymentUseCase{shipments: shipments, abonos: abonos, gateway: gateway, notifier: notifier, cfg: cfg}
}

// PostPayment applies an abono to a shipment. The applied amount is
// min(postedAmount, outstanding) so postings never push AmountPaid past
// AmountDue; posting against a settled record applies nothing and is rejected.
func (u *PaymentUseCase) PostPayment(ctx context.Context, trackingID string, postedAmount float64) (entities.Shipment, error) {
	if postedAmount < 0 {
		return entities.Shipment{}, ErrInvalidPaymentAmount
	}
	return u.applyPayment(ctx, trackingID, postedAmount, entities.AbonoSourceAdmin, "")
}

func (u *PaymentUseCase) applyPayment(ctx context.Context, trackingID string, postedAmount float64, source entities.AbonoSource, reference string) (entities.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return entities.Shipment{}, ErrInvalidTrackingID
	}

	s, err := u.shipments.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.TrackingID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}

	outstanding := s.Outstanding()
	if outstanding <= entities.PaymentEpsilon {
		return entities.Shipment{}, ErrShipmentAlreadyPaid
	}

	applied := postedAmount
	if applied > outstanding {
		applied = outstanding
	}

	s.AmountPaid += applied
	if s.Outstanding() <= entities.PaymentEpsilon {
		s.PaymentState = entities.PaymentStatePaid
	}
	s.UpdatedAt = time.Now().UTC()

	updated, err := u.shipments.Update(ctx, s)
	if err != nil {
		return entities.Shipment{}, err
	}
	if updated.TrackingID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}

	abono := entities.Abono{
		ID:         uuid.NewString(),
		TrackingID: updated.TrackingID,
		Amount:     applied,
		Source:     source,
		Reference:  reference,
		Date:       time.Now().UTC(),
	}
	if _, err := u.abonos.Create(ctx, abono); err != nil {
		// The running total on the record already committed; a lost audit row
		// must not be silent.
		log.Printf("[payment][usecase] abono audit write failed tracking_id=%s amount=%.2f err=%v", updated.TrackingID, applied, err)
		return entities.Shipment{}, err
	}

	log.Printf("[payment][usecase] abono posted tracking_id=%s posted=%.2f applied=%.2f paid=%.2f/%.2f state=%s", updated.TrackingID, postedAmount, applied, updated.AmountPaid, updated.AmountDue, updated.PaymentState)
	if u.notifier != nil {
		u.notifier.OnPaymentPosted(ctx, updated.TrackingID, applied, updated.CustomerEmail)
	}
	return updated, nil
}

// PayOutstandingOnline charges the full outstanding balance through the
// external gateway and, once approved, posts it as a gateway abono. The
// amount is always taken from the record, never from the client payload.
func (u *PaymentUseCase) PayOutstandingOnline(ctx context.Context, customerEmail, trackingID string, gatewayPayload json.RawMessage) (entities.Shipment, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return entities.Shipment{}, ErrInvalidTrackingID
	}
	if u.gateway == nil {
		return entities.Shipment{}, ErrPaymentGatewayNotSet
	}
	if len(gatewayPayload) == 0 || !json.Valid(gatewayPayload) {
		return entities.Shipment{}, ErrInvalidGatewayPayload
	}

	s, err := u.shipments.GetByTrackingID(ctx, trackingID)
	if err != nil {
		return entities.Shipment{}, err
	}
	if s.TrackingID == "" {
		return entities.Shipment{}, ErrShipmentNotFound
	}
	if s.CustomerEmail != entities.NormalizeEmail(customerEmail) {
		return entities.Shipment{}, ErrNotShipmentOwner
	}

	outstanding := s.Outstanding()
	if outstanding <= entities.PaymentEpsilon {
		return entities.Shipment{}, ErrShipmentAlreadyPaid
	}

	// The record is the source of truth for the charged amount.
	var reqMap map[string]any
	if err := json.Unmarshal(gatewayPayload, &reqMap); err != nil {
		return entities.Shipment{}, ErrInvalidGatewayPayload
	}
	reqMap["transaction_amount"] = outstanding
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = s.TrackingID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Shipment %s outstanding balance", s.TrackingID)
	}
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Shipment{}, err
	}

	log.Printf("[payment][usecase] gateway charge start tracking_id=%s amount=%.2f", s.TrackingID, outstanding)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[payment][usecase] gateway charge failed tracking_id=%s err=%v", s.TrackingID, err)
		return entities.Shipment{}, err
	}
	if !strings.EqualFold(providerStatus, "approved") {
		log.Printf("[payment][usecase] gateway charge not approved tracking_id=%s provider_status=%s", s.TrackingID, providerStatus)
		return entities.Shipment{}, ErrPaymentNotApproved
	}

	return u.applyPayment(ctx, trackingID, outstanding, entities.AbonoSourceGateway, providerPaymentID)
}

func (u *PaymentUseCase) ListAbonos(ctx context.Context, trackingID string) ([]entities.Abono, error) {
	trackingID = strings.TrimSpace(trackingID)
	if trackingID == "" {
		return nil, ErrInvalidTrackingID
	}
	return u.abonos.ListByTrackingID(ctx, trackingID)
}

// Classify derives the read-side payment view against "now"; OVERDUE is never
// written back to the record.
func (u *PaymentUseCase) Classify(s entities.Shipment, now time.Time) entities.PaymentClassification {
	return entities.ClassifyPayment(s, now, u.cfg.OverdueAfterDays)
}
