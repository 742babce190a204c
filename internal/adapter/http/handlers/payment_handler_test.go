package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"logistica_iac/internal/adapter/http/handlers/mocks"
	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentHandler_PostPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewPaymentHandler(mocks.NewMockIPaymentUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/payments/:tracking_id", h.PostPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/IAC-001", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("settled shipment maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().PostPayment(gomock.Any(), "IAC-001", 10.0).Return(entities.Shipment{}, usecase.ErrShipmentAlreadyPaid)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:tracking_id", h.PostPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/IAC-001", bytes.NewBufferString(`{"amount":10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success returns the updated balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		updated := entities.Shipment{
			TrackingID:   "IAC-001",
			AmountDue:    50.0,
			AmountPaid:   30.0,
			PaymentState: entities.PaymentStatePending,
		}
		uc.EXPECT().PostPayment(gomock.Any(), "IAC-001", 30.0).Return(updated, nil)
		uc.EXPECT().Classify(updated, gomock.Any()).Return(entities.ClassificationPending)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:tracking_id", h.PostPayment)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/IAC-001", bytes.NewBufferString(`{"amount":30}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["outstanding"] != 20.0 || resp["payment_state"] != "PENDING" {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}

func TestPaymentHandler_ListAbonos(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	uc.EXPECT().ListAbonos(gomock.Any(), "IAC-001").Return([]entities.Abono{
		{ID: "a-1", TrackingID: "IAC-001", Amount: 30.0, Source: entities.AbonoSourceAdmin},
		{ID: "a-2", TrackingID: "IAC-001", Amount: 20.0, Source: entities.AbonoSourceGateway, Reference: "mp-777"},
	}, nil)
	h := NewPaymentHandler(uc)

	r := gin.New()
	r.GET("/v1/payments/:tracking_id", h.ListAbonos)

	req := httptest.NewRequest(http.MethodGet, "/v1/payments/IAC-001", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp) != 2 || resp[1]["source"] != "gateway" || resp[1]["reference"] != "mp-777" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestPaymentHandler_PayOutstanding(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("rejected charge maps to 402", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		uc.EXPECT().
			PayOutstandingOnline(gomock.Any(), "ana@example.com", "IAC-001", gomock.Any()).
			Return(entities.Shipment{}, usecase.ErrPaymentNotApproved)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/portal/payments/:tracking_id", func(c *gin.Context) {
			c.Set(CustomerEmailKey, "ana@example.com")
			h.PayOutstanding(c)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/portal/payments/IAC-001", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
	})

	t.Run("envelope payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaymentUseCase(ctrl)
		settled := entities.Shipment{TrackingID: "IAC-001", AmountDue: 50.0, AmountPaid: 50.0, PaymentState: entities.PaymentStatePaid}
		uc.EXPECT().
			PayOutstandingOnline(gomock.Any(), "ana@example.com", "IAC-001", gomock.Any()).
			DoAndReturn(func(_ any, _, _ string, payload json.RawMessage) (entities.Shipment, error) {
				var inner map[string]any
				if err := json.Unmarshal(payload, &inner); err != nil {
					t.Fatalf("payload not unwrapped: %v", err)
				}
				if inner["payment_method_id"] != "pix" {
					t.Fatalf("unexpected payload: %v", inner)
				}
				return settled, nil
			})
		uc.EXPECT().Classify(settled, gomock.Any()).Return(entities.ClassificationPaid)
		h := NewPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/portal/payments/:tracking_id", func(c *gin.Context) {
			c.Set(CustomerEmailKey, "ana@example.com")
			h.PayOutstanding(c)
		})

		body := `{"gateway_payload":{"payment_method_id":"pix"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/portal/payments/IAC-001", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["payment_state"] != "PAID" || resp["outstanding"] != 0.0 {
			t.Fatalf("unexpected body: %v", resp)
		}
	})
}
