package handlers

import (
	"errors"
	"log"
	request "logistica_iac/internal/adapter/http/dto/request"
	response "logistica_iac/internal/adapter/http/dto/response"
	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase"
	"logistica_iac/pkg"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CustomerEmailKey is set on the gin context by the portal auth middleware.
const CustomerEmailKey = "customer_email"

var (
	errInvalidShipmentPayload = pkg.NewDomainErrorSimple("INVALID_SHIPMENT_INPUT", "Invalid shipment payload", http.StatusBadRequest)
)

// ShipmentHandler handles HTTP requests for the shipment lifecycle: intake,
// weigh-in verification, status updates, soft delete/restore and the read
// views (admin, portal and public tracking).

type ShipmentHandler struct {
	usecase  usecase.IShipmentUseCase
	payments usecase.IPaymentUseCase
}

func NewShipmentHandler(uc usecase.IShipmentUseCase, payments usecase.IPaymentUseCase) *ShipmentHandler {
	return &ShipmentHandler{usecase: uc, payments: payments}
}

// RegisterShipment quotes and registers a new shipment.
func (h *ShipmentHandler) RegisterShipment(c *gin.Context) {
	var payload request.RegisterShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	mode, err := payload.ResolveTransportMode()
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}
	declared, err := payload.ResolveDeclaredValue(mode)
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Register(c.Request.Context(), usecase.RegisterShipmentInput{
		TrackingID:    payload.TrackingID,
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		Description:   payload.Description,
		TransportMode: mode,
		DeclaredValue: declared,
		PayNow:        payload.PayNow,
	})
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] registered tracking_id=%s amount_due=%.2f", created.TrackingID, created.AmountDue)

	c.JSON(http.StatusCreated, response.FromShipment(created, h.classify(created)))
}

// ListShipments returns every active shipment with its derived payment
// classification.
func (h *ShipmentHandler) ListShipments(c *gin.Context) {
	all, err := h.usecase.ListAll(c.Request.Context())
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipments(all, h.classify))
}

func (h *ShipmentHandler) GetShipment(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	s, err := h.usecase.GetByTrackingID(c.Request.Context(), trackingID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(s, h.classify(s)))
}

// TrackShipment is the public tracking view: status only, no identity or
// billing fields.
func (h *ShipmentHandler) TrackShipment(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	s, err := h.usecase.GetByTrackingID(c.Request.Context(), trackingID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipmentPublic(s))
}

// VerifyShipment records the warehouse weigh-in and reprices the shipment.
func (h *ShipmentHandler) VerifyShipment(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	var payload request.VerifyShipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}
	verified, err := payload.ResolveVerifiedValue()
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.Verify(c.Request.Context(), trackingID, verified, payload.ThresholdRatio)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if result.DiscrepancyDetected {
		log.Printf("[shipment][handler] discrepancy flagged tracking_id=%s delta=%.2f", trackingID, result.DiscrepancyAmount)
	}

	c.JSON(http.StatusOK, response.ValidationResponse{
		Shipment:            response.FromShipment(result.Shipment, h.classify(result.Shipment)),
		DiscrepancyDetected: result.DiscrepancyDetected,
		DiscrepancyAmount:   result.DiscrepancyAmount,
	})
}

// UpdateShipmentStatus moves a shipment to any lifecycle state the operator
// chooses.
func (h *ShipmentHandler) UpdateShipmentStatus(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}
	status, err := payload.ResolveStatus()
	if err != nil {
		c.JSON(errInvalidShipmentPayload.HTTPStatus, errInvalidShipmentPayload.ToHTTPError())
		return
	}

	change, err := h.usecase.UpdateStatus(c.Request.Context(), trackingID, status)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] status updated tracking_id=%s old=%s new=%s", trackingID, change.OldStatus, change.NewStatus)

	c.JSON(http.StatusOK, response.StatusChangeResponse{
		Shipment:  response.FromShipment(change.Shipment, h.classify(change.Shipment)),
		OldStatus: string(change.OldStatus),
		NewStatus: string(change.NewStatus),
	})
}

// DeleteShipment moves a shipment to the trash, untouched.
func (h *ShipmentHandler) DeleteShipment(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	s, err := h.usecase.Delete(c.Request.Context(), trackingID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] moved to trash tracking_id=%s", trackingID)

	c.JSON(http.StatusOK, response.FromShipment(s, h.classify(s)))
}

// RestoreShipment brings a trashed shipment back exactly as it was deleted.
func (h *ShipmentHandler) RestoreShipment(c *gin.Context) {
	trackingID := c.Param("tracking_id")

	s, err := h.usecase.Restore(c.Request.Context(), trackingID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[shipment][handler] restored from trash tracking_id=%s", trackingID)

	c.JSON(http.StatusOK, response.FromShipment(s, h.classify(s)))
}

func (h *ShipmentHandler) ListTrash(c *gin.Context) {
	trash, err := h.usecase.ListTrash(c.Request.Context())
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipments(trash, h.classify))
}

// ListMyShipments serves the portal listing scoped to the authenticated
// customer.
func (h *ShipmentHandler) ListMyShipments(c *gin.Context) {
	email := c.GetString(CustomerEmailKey)

	mine, err := h.usecase.ListByCustomerEmail(c.Request.Context(), email)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipments(mine, h.classify))
}

func (h *ShipmentHandler) GetMyShipment(c *gin.Context) {
	email := c.GetString(CustomerEmailKey)
	trackingID := c.Param("tracking_id")

	s, err := h.usecase.GetForCustomer(c.Request.Context(), email, trackingID)
	if err != nil {
		appErr := mapShipmentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromShipment(s, h.classify(s)))
}

func (h *ShipmentHandler) classify(s entities.Shipment) entities.PaymentClassification {
	return h.payments.Classify(s, time.Now().UTC())
}

func mapShipmentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTrackingID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidMeasurement),
		errors.Is(err, usecase.ErrInvalidTransportMode),
		errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrShipmentAlreadyExists):
		return pkg.NewDomainErrorSimple("SHIPMENT_ALREADY_EXISTS", "Shipment already exists for this tracking id", http.StatusConflict)
	case errors.Is(err, usecase.ErrShipmentNotInTrash):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_IN_TRASH", "Shipment is not in the trash", http.StatusConflict)
	// Ownership failures read as not-found so the portal never confirms
	// another customer's tracking id.
	case errors.Is(err, usecase.ErrShipmentNotFound), errors.Is(err, usecase.ErrNotShipmentOwner):
		return pkg.NewDomainErrorSimple("SHIPMENT_NOT_FOUND", "Shipment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
