package handlers

import (
	"encoding/json"
	"errors"
	"log"
	request "logistica_iac/internal/adapter/http/dto/request"
	response "logistica_iac/internal/adapter/http/dto/response"
	"logistica_iac/internal/usecase"
	"logistica_iac/pkg"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for the abono ledger: admin postings,
// the abono history of a shipment and the portal's online settlement.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// PostPayment records an admin abono against a shipment. Amounts above the
// outstanding balance are capped by the core.
func (h *PaymentHandler) PostPayment(c *gin.Context) {
	trackingID := c.Param("tracking_id")
	log.Printf("[payment][handler] post start tracking_id=%s", trackingID)

	var payload request.PostPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload tracking_id=%s err=%v", trackingID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.PostPayment(c.Request.Context(), trackingID, payload.Amount)
	if err != nil {
		log.Printf("[payment][handler] post failed tracking_id=%s err=%v", trackingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] post success tracking_id=%s paid=%.2f state=%s", trackingID, updated.AmountPaid, updated.PaymentState)

	c.JSON(http.StatusOK, response.FromShipment(updated, h.usecase.Classify(updated, time.Now().UTC())))
}

// ListAbonos returns the full abono history of a shipment.
func (h *PaymentHandler) ListAbonos(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	abonos, err := h.usecase.ListAbonos(c.Request.Context(), trackingID)
	if err != nil {
		log.Printf("[payment][handler] list failed tracking_id=%s err=%v", trackingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAbonos(abonos))
}

// PayOutstanding settles the authenticated customer's outstanding balance
// through the payment gateway. The chargeable amount always comes from the
// shipment record, never from the request body.
func (h *PaymentHandler) PayOutstanding(c *gin.Context) {
	email := c.GetString(CustomerEmailKey)
	trackingID := c.Param("tracking_id")
	log.Printf("[payment][handler] portal pay start tracking_id=%s", trackingID)

	mockMode := isPaymentGatewayMockEnabled()
	gatewayPayload, err := readGatewayPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload tracking_id=%s err=%v", trackingID, err)
			gatewayPayload = json.RawMessage("{}")
		} else {
			log.Printf("[payment][handler] invalid payload tracking_id=%s err=%v", trackingID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	updated, err := h.usecase.PayOutstandingOnline(c.Request.Context(), email, trackingID, gatewayPayload)
	if err != nil {
		log.Printf("[payment][handler] portal pay failed tracking_id=%s err=%v", trackingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] portal pay success tracking_id=%s state=%s", trackingID, updated.PaymentState)

	c.JSON(http.StatusOK, response.FromShipment(updated, h.usecase.Classify(updated, time.Now().UTC())))
}

// readGatewayPayload accepts either a raw provider payload or an envelope
// with a gateway_payload field.
func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["gateway_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("gateway_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrInvalidGatewayPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentNotFound), errors.Is(err, usecase.ErrNotShipmentOwner):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrShipmentAlreadyPaid):
		return pkg.NewDomainErrorSimple("SHIPMENT_ALREADY_PAID", "Shipment is already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotSet):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
