package entities

import "time"

// CustomerAccount is a self-service portal account.
//
// Email is the unique key (lowercase-normalized). CredentialHash is a one-way
// bcrypt hash; the plaintext password is never stored and never serialized.

type CustomerAccount struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"display_name"`
	CredentialHash string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
