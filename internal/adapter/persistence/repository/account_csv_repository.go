package repository

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"
)

const accountsFileName = "accounts.csv"

var ErrDuplicateEmail = errors.New("duplicate email")

var accountHeader = []string{"id", "email", "display_name", "credential_hash", "created_at"}

// AccountCSVRepository persists customer accounts as one flat CSV table.

type AccountCSVRepository struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.IAccountRepository = (*AccountCSVRepository)(nil)

func NewAccountCSVRepository(dataDir string) *AccountCSVRepository {
	return &AccountCSVRepository{path: filepath.Join(dataDir, accountsFileName)}
}

func (r *AccountCSVRepository) Create(ctx context.Context, a entities.CustomerAccount) (entities.CustomerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := r.load()
	for _, existing := range all {
		if existing.Email == a.Email {
			return entities.CustomerAccount{}, ErrDuplicateEmail
		}
	}
	all = append(all, a)
	if err := r.save(all); err != nil {
		return entities.CustomerAccount{}, err
	}
	return a, nil
}

func (r *AccountCSVRepository) GetByEmail(ctx context.Context, email string) (entities.CustomerAccount, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.load() {
		if a.Email == email {
			return a, nil
		}
	}
	return entities.CustomerAccount{}, nil
}

func (r *AccountCSVRepository) load() []entities.CustomerAccount {
	rows := readCSVTable(r.path, len(accountHeader))
	out := make([]entities.CustomerAccount, 0, len(rows))
	for _, row := range rows {
		createdAt, _ := time.Parse(time.RFC3339Nano, row[4])
		out = append(out, entities.CustomerAccount{
			ID:             row[0],
			Email:          row[1],
			DisplayName:    row[2],
			CredentialHash: row[3],
			CreatedAt:      createdAt,
		})
	}
	return out
}

func (r *AccountCSVRepository) save(all []entities.CustomerAccount) error {
	rows := make([][]string, 0, len(all))
	for _, a := range all {
		rows = append(rows, []string{a.ID, a.Email, a.DisplayName, a.CredentialHash, a.CreatedAt.UTC().Format(time.RFC3339Nano)})
	}
	return writeCSVTable(r.path, accountHeader, rows)
}
