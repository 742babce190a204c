package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidAccountInput  = errors.New("invalid account input")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
)

const minPasswordLength = 8

// IAccountUseCase exposes portal account self-service and the credential
// check the portal middleware relies on.

type IAccountUseCase interface {
	SignUp(ctx context.Context, email, displayName, password string) (entities.CustomerAccount, error)
	VerifyCredentials(ctx context.Context, email, password string) (entities.CustomerAccount, error)
}

type AccountUseCase struct {
	repo   interfaces.IAccountRepository
	hasher interfaces.IPasswordHasher
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IAccountRepository, hasher interfaces.IPasswordHasher) *AccountUseCase {
	return &AccountUseCase{repo: repo, hasher: hasher}
}

func (u *AccountUseCase) SignUp(ctx context.Context, email, displayName, password string) (entities.CustomerAccount, error) {
	email = entities.NormalizeEmail(email)
	displayName = strings.TrimSpace(displayName)
	if email == "" || displayName == "" || !strings.Contains(email, "@") {
		return entities.CustomerAccount{}, ErrInvalidAccountInput
	}
	if len(password) < minPasswordLength {
		return entities.CustomerAccount{}, ErrPasswordTooShort
	}

	if existing, err := u.repo.GetByEmail(ctx, email); err != nil {
		return entities.CustomerAccount{}, err
	} else if existing.Email != "" {
		return entities.CustomerAccount{}, ErrAccountAlreadyExists
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return entities.CustomerAccount{}, err
	}

	a := entities.CustomerAccount{
		ID:             uuid.NewString(),
		Email:          email,
		DisplayName:    displayName,
		CredentialHash: hash,
		CreatedAt:      time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, a)
	if err != nil {
		return entities.CustomerAccount{}, err
	}
	log.Printf("[account][usecase] signed up email=%s", created.Email)
	return created, nil
}

// VerifyCredentials returns the account when the password matches its stored
// hash. A missing account and a wrong password are indistinguishable to the
// caller.
func (u *AccountUseCase) VerifyCredentials(ctx context.Context, email, password string) (entities.CustomerAccount, error) {
	email = entities.NormalizeEmail(email)
	if email == "" || password == "" {
		return entities.CustomerAccount{}, ErrInvalidCredentials
	}

	a, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return entities.CustomerAccount{}, err
	}
	if a.Email == "" || !u.hasher.Verify(password, a.CredentialHash) {
		return entities.CustomerAccount{}, ErrInvalidCredentials
	}
	return a, nil
}
