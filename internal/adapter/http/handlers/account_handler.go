package handlers

import (
	"errors"
	request "logistica_iac/internal/adapter/http/dto/request"
	response "logistica_iac/internal/adapter/http/dto/response"
	"logistica_iac/internal/usecase"
	"logistica_iac/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAccountPayload = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_INPUT", "Invalid account payload", http.StatusBadRequest)
)

// AccountHandler handles customer self-service sign-up.

type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

func (h *AccountHandler) SignUp(c *gin.Context) {
	var payload request.SignUpRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	account, err := h.usecase.SignUp(c.Request.Context(), payload.Email, payload.DisplayName, payload.Password)
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAccount(account))
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAccountInput), errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAccountAlreadyExists):
		return pkg.NewDomainErrorSimple("ACCOUNT_ALREADY_EXISTS", "An account already exists for this email", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
