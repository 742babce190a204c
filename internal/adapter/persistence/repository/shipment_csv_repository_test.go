package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"logistica_iac/internal/domain/entities"
)

func sampleShipment(trackingID string) entities.Shipment {
	created := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)
	return entities.Shipment{
		TrackingID:    trackingID,
		CustomerName:  "Ana Torres",
		CustomerEmail: "ana@example.com",
		Description:   "electronics",
		TransportMode: entities.TransportModeAir,
		DeclaredValue: 10.0,
		VerifiedValue: 10.3,
		IsVerified:    true,
		AmountDue:     51.5,
		AmountPaid:    30.0,
		PaymentState:  entities.PaymentStatePending,
		Status:        entities.StatusInTransit,
		CreatedAt:     created,
		UpdatedAt:     created.Add(2 * time.Hour),
	}
}

func TestShipmentCSVRepository_CreateGetUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewShipmentCSVRepository(t.TempDir())

	s := sampleShipment("IAC-001")
	if _, err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	t.Run("round-trips all fields", func(t *testing.T) {
		got, err := repo.GetByTrackingID(ctx, "IAC-001")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got != s {
			t.Fatalf("record changed across persistence:\n got %+v\nwant %+v", got, s)
		}
	})

	t.Run("duplicate create rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, s)
		if !errors.Is(err, ErrDuplicateTrackingID) {
			t.Fatalf("expected ErrDuplicateTrackingID, got %v", err)
		}
	})

	t.Run("missing record is zero value", func(t *testing.T) {
		got, err := repo.GetByTrackingID(ctx, "IAC-404")
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.TrackingID != "" {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})

	t.Run("update mutates one element by key", func(t *testing.T) {
		other := sampleShipment("IAC-002")
		other.CustomerEmail = "beto@example.com"
		if _, err := repo.Create(ctx, other); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		s.Status = entities.StatusDelivered
		if _, err := repo.Update(ctx, s); err != nil {
			t.Fatalf("update failed: %v", err)
		}

		got, _ := repo.GetByTrackingID(ctx, "IAC-001")
		if got.Status != entities.StatusDelivered {
			t.Fatalf("expected DELIVERED, got %s", got.Status)
		}
		untouched, _ := repo.GetByTrackingID(ctx, "IAC-002")
		if untouched.Status != entities.StatusInTransit {
			t.Fatalf("neighbor row mutated: %+v", untouched)
		}
	})

	t.Run("list by customer email", func(t *testing.T) {
		mine, err := repo.ListByCustomerEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(mine) != 1 || mine[0].TrackingID != "IAC-001" {
			t.Fatalf("unexpected scoped listing: %+v", mine)
		}
	})
}

func TestShipmentCSVRepository_SoftDeleteRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewShipmentCSVRepository(t.TempDir())

	s := sampleShipment("IAC-001")
	if _, err := repo.Create(ctx, s); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	moved, err := repo.MoveToTrash(ctx, "IAC-001")
	if err != nil {
		t.Fatalf("move to trash failed: %v", err)
	}
	if moved != s {
		t.Fatalf("delete mutated the record: %+v", moved)
	}

	if got, _ := repo.GetByTrackingID(ctx, "IAC-001"); got.TrackingID != "" {
		t.Fatalf("record still active after delete: %+v", got)
	}
	trash, _ := repo.ListTrash(ctx)
	if len(trash) != 1 || trash[0] != s {
		t.Fatalf("trash does not hold the record unchanged: %+v", trash)
	}

	restored, err := repo.RestoreFromTrash(ctx, "IAC-001")
	if err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	if restored != s {
		t.Fatalf("restore mutated the record: %+v", restored)
	}
	if trash, _ := repo.ListTrash(ctx); len(trash) != 0 {
		t.Fatalf("trash not emptied after restore: %+v", trash)
	}
	if got, _ := repo.GetByTrackingID(ctx, "IAC-001"); got != s {
		t.Fatalf("restored record differs from pre-delete state: %+v", got)
	}
}

func TestShipmentCSVRepository_LoadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		repo := NewShipmentCSVRepository(dir)
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("missing file must not error: %v", err)
		}
		if len(all) != 0 {
			t.Fatalf("expected empty collection, got %+v", all)
		}
	})

	t.Run("corrupt file", func(t *testing.T) {
		path := filepath.Join(dir, shipmentsFileName)
		if err := os.WriteFile(path, []byte("not,a\nvalid\"csv,table\n\"x"), 0o644); err != nil {
			t.Fatalf("seed corrupt file: %v", err)
		}
		repo := NewShipmentCSVRepository(dir)
		all, err := repo.ListAll(ctx)
		if err != nil {
			t.Fatalf("corrupt file must not error: %v", err)
		}
		if len(all) != 0 {
			t.Fatalf("expected empty collection, got %+v", all)
		}
	})
}
