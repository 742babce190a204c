package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"logistica_iac/internal/adapter/http/handlers/mocks"
	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newShipmentHandlerForTest(t *testing.T) (*ShipmentHandler, *mocks.MockIShipmentUseCase, *mocks.MockIPaymentUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIShipmentUseCase(ctrl)
	payments := mocks.NewMockIPaymentUseCase(ctrl)
	return NewShipmentHandler(uc, payments), uc, payments
}

func TestShipmentHandler_RegisterShipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		h, _, _ := newShipmentHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/shipments", h.RegisterShipment)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown transport mode", func(t *testing.T) {
		h, _, _ := newShipmentHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/shipments", h.RegisterShipment)

		body := `{"tracking_id":"IAC-001","customer_name":"Ana","customer_email":"ana@example.com","transport_mode":"teleport","weight_kg":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/shipments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("ocean without measurement", func(t *testing.T) {
		h, _, _ := newShipmentHandlerForTest(t)

		r := gin.New()
		r.POST("/v1/shipments", h.RegisterShipment)

		body := `{"tracking_id":"IAC-001","customer_name":"Ana","customer_email":"ana@example.com","transport_mode":"ocean"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/shipments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("duplicate tracking id maps to 409", func(t *testing.T) {
		h, uc, _ := newShipmentHandlerForTest(t)
		uc.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Shipment{}, usecase.ErrShipmentAlreadyExists)

		r := gin.New()
		r.POST("/v1/shipments", h.RegisterShipment)

		body := `{"tracking_id":"IAC-001","customer_name":"Ana","customer_email":"ana@example.com","transport_mode":"air","weight_kg":10}`
		req := httptest.NewRequest(http.MethodPost, "/v1/shipments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success resolves dimensions to cubic feet", func(t *testing.T) {
		h, uc, payments := newShipmentHandlerForTest(t)
		s := entities.Shipment{
			TrackingID:   "IAC-001",
			AmountDue:    16.0,
			PaymentState: entities.PaymentStatePending,
			Status:       entities.StatusReceivedAtWarehouse,
		}
		uc.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in usecase.RegisterShipmentInput) (entities.Shipment, error) {
				if in.TransportMode != entities.TransportModeOcean {
					t.Fatalf("expected OCEAN, got %q", in.TransportMode)
				}
				if in.DeclaredValue != 1.0 {
					t.Fatalf("expected 1 cubic foot, got %v", in.DeclaredValue)
				}
				return s, nil
			})
		payments.EXPECT().Classify(s, gomock.Any()).Return(entities.ClassificationPending)

		r := gin.New()
		r.POST("/v1/shipments", h.RegisterShipment)

		body := `{"tracking_id":"IAC-001","customer_name":"Ana","customer_email":"ana@example.com","transport_mode":"ocean","dimensions":{"length_in":12,"width_in":12,"height_in":12}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/shipments", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["amount_due"] != 16.0 || resp["payment_classification"] != "PENDING" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestShipmentHandler_VerifyShipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("discrepancy surfaces in response", func(t *testing.T) {
		h, uc, payments := newShipmentHandlerForTest(t)
		s := entities.Shipment{TrackingID: "IAC-001", VerifiedValue: 105.1, IsVerified: true, AmountDue: 525.5}
		uc.EXPECT().
			Verify(gomock.Any(), "IAC-001", 105.1, 0.0).
			Return(usecase.ValidationResult{Shipment: s, DiscrepancyDetected: true, DiscrepancyAmount: 5.1}, nil)
		payments.EXPECT().Classify(s, gomock.Any()).Return(entities.ClassificationPending)

		r := gin.New()
		r.PATCH("/v1/shipments/:tracking_id/verify", h.VerifyShipment)

		req := httptest.NewRequest(http.MethodPatch, "/v1/shipments/IAC-001/verify", bytes.NewBufferString(`{"verified_value":105.1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			DiscrepancyDetected bool    `json:"discrepancy_detected"`
			DiscrepancyAmount   float64 `json:"discrepancy_amount"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if !resp.DiscrepancyDetected || resp.DiscrepancyAmount != 5.1 {
			t.Fatalf("unexpected discrepancy report: %+v", resp)
		}
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		h, uc, _ := newShipmentHandlerForTest(t)
		uc.EXPECT().
			Verify(gomock.Any(), "IAC-404", 10.0, 0.0).
			Return(usecase.ValidationResult{}, usecase.ErrShipmentNotFound)

		r := gin.New()
		r.PATCH("/v1/shipments/:tracking_id/verify", h.VerifyShipment)

		req := httptest.NewRequest(http.MethodPatch, "/v1/shipments/IAC-404/verify", bytes.NewBufferString(`{"verified_value":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestShipmentHandler_UpdateShipmentStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status rejected before the usecase", func(t *testing.T) {
		h, _, _ := newShipmentHandlerForTest(t)

		r := gin.New()
		r.PATCH("/v1/shipments/:tracking_id/status", h.UpdateShipmentStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/shipments/IAC-001/status", bytes.NewBufferString(`{"status":"LOST"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success reports old and new status", func(t *testing.T) {
		h, uc, payments := newShipmentHandlerForTest(t)
		s := entities.Shipment{TrackingID: "IAC-001", Status: entities.StatusDelivered}
		uc.EXPECT().
			UpdateStatus(gomock.Any(), "IAC-001", entities.StatusDelivered).
			Return(usecase.StatusChange{Shipment: s, OldStatus: entities.StatusReceivedAtWarehouse, NewStatus: entities.StatusDelivered}, nil)
		payments.EXPECT().Classify(s, gomock.Any()).Return(entities.ClassificationOverdue)

		r := gin.New()
		r.PATCH("/v1/shipments/:tracking_id/status", h.UpdateShipmentStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/shipments/IAC-001/status", bytes.NewBufferString(`{"status":"delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			OldStatus string `json:"old_status"`
			NewStatus string `json:"new_status"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.OldStatus != "RECEIVED_AT_WAREHOUSE" || resp.NewStatus != "DELIVERED" {
			t.Fatalf("unexpected transition report: %+v", resp)
		}
	})
}

func TestShipmentHandler_TrackShipment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h, uc, _ := newShipmentHandlerForTest(t)
	s := entities.Shipment{
		TrackingID:    "IAC-001",
		CustomerEmail: "ana@example.com",
		AmountDue:     50.0,
		Status:        entities.StatusInTransit,
		UpdatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	uc.EXPECT().GetByTrackingID(gomock.Any(), "IAC-001").Return(s, nil)

	r := gin.New()
	r.GET("/v1/tracking/:tracking_id", h.TrackShipment)

	req := httptest.NewRequest(http.MethodGet, "/v1/tracking/IAC-001", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["status"] != "IN_TRANSIT" {
		t.Fatalf("unexpected body: %v", resp)
	}
	if _, leaked := resp["customer_email"]; leaked {
		t.Fatal("public tracking view must not expose customer identity")
	}
	if _, leaked := resp["amount_due"]; leaked {
		t.Fatal("public tracking view must not expose billing fields")
	}
}

func TestShipmentHandler_PortalScoping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list uses the authenticated email", func(t *testing.T) {
		h, uc, _ := newShipmentHandlerForTest(t)
		uc.EXPECT().ListByCustomerEmail(gomock.Any(), "ana@example.com").Return([]entities.Shipment{}, nil)

		r := gin.New()
		r.GET("/v1/portal/shipments", func(c *gin.Context) {
			c.Set(CustomerEmailKey, "ana@example.com")
			h.ListMyShipments(c)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/portal/shipments", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("foreign shipment reads as not found", func(t *testing.T) {
		h, uc, _ := newShipmentHandlerForTest(t)
		uc.EXPECT().
			GetForCustomer(gomock.Any(), "ana@example.com", "IAC-002").
			Return(entities.Shipment{}, usecase.ErrNotShipmentOwner)

		r := gin.New()
		r.GET("/v1/portal/shipments/:tracking_id", func(c *gin.Context) {
			c.Set(CustomerEmailKey, "ana@example.com")
			h.GetMyShipment(c)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/portal/shipments/IAC-002", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestShipmentHandler_TrashFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("restore of active shipment maps to 409", func(t *testing.T) {
		h, uc, _ := newShipmentHandlerForTest(t)
		uc.EXPECT().Restore(gomock.Any(), "IAC-001").Return(entities.Shipment{}, usecase.ErrShipmentNotInTrash)

		r := gin.New()
		r.POST("/v1/shipments/:tracking_id/restore", h.RestoreShipment)

		req := httptest.NewRequest(http.MethodPost, "/v1/shipments/IAC-001/restore", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("delete returns the trashed shipment", func(t *testing.T) {
		h, uc, payments := newShipmentHandlerForTest(t)
		s := entities.Shipment{TrackingID: "IAC-001", PaymentState: entities.PaymentStatePaid}
		uc.EXPECT().Delete(gomock.Any(), "IAC-001").Return(s, nil)
		payments.EXPECT().Classify(s, gomock.Any()).Return(entities.ClassificationPaid)

		r := gin.New()
		r.DELETE("/v1/shipments/:tracking_id", h.DeleteShipment)

		req := httptest.NewRequest(http.MethodDelete, "/v1/shipments/IAC-001", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
