package usecase_test

import (
	"context"
	"math"
	"testing"
	"time"

	"logistica_iac/internal/adapter/persistence/repository"
	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase"
	mock_interfaces "logistica_iac/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// Full lifecycle against the real CSV store: register, weigh in, settle the
// balance, deliver.
func TestShipmentLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	notifier := mock_interfaces.NewMockINotifier(ctrl)

	dataDir := t.TempDir()
	shipments := repository.NewShipmentCSVRepository(dataDir)
	abonos := repository.NewAbonoCSVRepository(dataDir)

	cfg := usecase.ShipmentConfig{}
	shipmentUC := usecase.NewShipmentUseCase(shipments, notifier, cfg)
	paymentUC := usecase.NewPaymentUseCase(shipments, abonos, nil, notifier, cfg)

	registered, err := shipmentUC.Register(ctx, usecase.RegisterShipmentInput{
		TrackingID:    "IAC-001",
		CustomerName:  "Ana Torres",
		CustomerEmail: "Ana@Example.com",
		TransportMode: entities.TransportModeAir,
		DeclaredValue: 10.0,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if registered.AmountDue != 50.0 {
		t.Fatalf("expected quote 50.0, got %v", registered.AmountDue)
	}
	if registered.Status != entities.StatusReceivedAtWarehouse || registered.PaymentState != entities.PaymentStatePending {
		t.Fatalf("unexpected initial state: %+v", registered)
	}

	// 10.3 vs 10.0 is a 3% delta, under the default 5% tolerance.
	result, err := shipmentUC.Verify(ctx, "IAC-001", 10.3, 0)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if result.DiscrepancyDetected {
		t.Fatalf("3%% delta must not be flagged: %+v", result)
	}
	if math.Abs(result.Shipment.AmountDue-51.5) > 1e-9 {
		t.Fatalf("expected repriced 51.5, got %v", result.Shipment.AmountDue)
	}

	notifier.EXPECT().OnPaymentPosted(gomock.Any(), "IAC-001", 51.5, "ana@example.com")
	settled, err := paymentUC.PostPayment(ctx, "IAC-001", 51.5)
	if err != nil {
		t.Fatalf("payment failed: %v", err)
	}
	if settled.PaymentState != entities.PaymentStatePaid {
		t.Fatalf("expected PAID, got %s", settled.PaymentState)
	}
	if got := paymentUC.Classify(settled, time.Now().UTC().Add(30*24*time.Hour)); got != entities.ClassificationPaid {
		t.Fatalf("settled shipment must classify PAID regardless of age, got %s", got)
	}

	history, err := paymentUC.ListAbonos(ctx, "IAC-001")
	if err != nil {
		t.Fatalf("list abonos failed: %v", err)
	}
	if len(history) != 1 || history[0].Amount != 51.5 {
		t.Fatalf("expected one abono of 51.5, got %+v", history)
	}

	// Skipping IN_TRANSIT is legal.
	notifier.EXPECT().OnStatusChange(gomock.Any(), "IAC-001", entities.StatusReceivedAtWarehouse, entities.StatusDelivered, "ana@example.com")
	change, err := shipmentUC.UpdateStatus(ctx, "IAC-001", entities.StatusDelivered)
	if err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	if change.OldStatus != entities.StatusReceivedAtWarehouse || change.NewStatus != entities.StatusDelivered {
		t.Fatalf("unexpected transition: %+v", change)
	}

	final, err := shipmentUC.GetByTrackingID(ctx, "IAC-001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if final.Status != entities.StatusDelivered || final.PaymentState != entities.PaymentStatePaid {
		t.Fatalf("final state not persisted: %+v", final)
	}
}
