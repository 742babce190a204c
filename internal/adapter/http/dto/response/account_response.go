package response

import (
	"time"

	"logistica_iac/internal/domain/entities"
)

// AccountResponse never carries the credential hash.
type AccountResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAccount(a entities.CustomerAccount) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Email:       a.Email,
		DisplayName: a.DisplayName,
		CreatedAt:   a.CreatedAt,
	}
}
