package repository

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"logistica_iac/internal/domain/entities"
	"logistica_iac/internal/usecase/interfaces"
)

const abonosFileName = "abonos.csv"

var abonoHeader = []string{"id", "tracking_id", "amount", "source", "reference", "date"}

// AbonoCSVRepository persists the append-only abono trail as one flat CSV
// table.

type AbonoCSVRepository struct {
	mu   sync.Mutex
	path string
}

var _ interfaces.IAbonoRepository = (*AbonoCSVRepository)(nil)

func NewAbonoCSVRepository(dataDir string) *AbonoCSVRepository {
	return &AbonoCSVRepository{path: filepath.Join(dataDir, abonosFileName)}
}

func (r *AbonoCSVRepository) Create(ctx context.Context, a entities.Abono) (entities.Abono, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := append(r.load(), a)
	if err := r.save(all); err != nil {
		return entities.Abono{}, err
	}
	return a, nil
}

func (r *AbonoCSVRepository) ListByTrackingID(ctx context.Context, trackingID string) ([]entities.Abono, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entities.Abono, 0)
	for _, a := range r.load() {
		if a.TrackingID == trackingID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *AbonoCSVRepository) load() []entities.Abono {
	rows := readCSVTable(r.path, len(abonoHeader))
	out := make([]entities.Abono, 0, len(rows))
	for _, row := range rows {
		date, _ := time.Parse(time.RFC3339Nano, row[5])
		out = append(out, entities.Abono{
			ID:         row[0],
			TrackingID: row[1],
			Amount:     parseFloat(row[2]),
			Source:     entities.AbonoSource(row[3]),
			Reference:  row[4],
			Date:       date,
		})
	}
	return out
}

func (r *AbonoCSVRepository) save(all []entities.Abono) error {
	rows := make([][]string, 0, len(all))
	for _, a := range all {
		rows = append(rows, []string{a.ID, a.TrackingID, formatFloat(a.Amount), string(a.Source), a.Reference, a.Date.UTC().Format(time.RFC3339Nano)})
	}
	return writeCSVTable(r.path, abonoHeader, rows)
}
