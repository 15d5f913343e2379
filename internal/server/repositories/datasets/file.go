package datasets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/dmitrijs2005/datachart/internal/server/models"
	"github.com/dmitrijs2005/datachart/internal/server/tabular"
	"github.com/google/uuid"
)

// datasetRecord is the on-disk shape of a dataset in the flat-file store.
type datasetRecord struct {
	ID          string           `json:"id"`
	Filename    string           `json:"filename"`
	OwnerEmail  string           `json:"owner_email"`
	UploadedAt  time.Time        `json:"uploaded_at"`
	RowCount    int              `json:"row_count"`
	ColumnCount int              `json:"column_count"`
	Columns     []tabular.Column `json:"columns"`
	FileSize    int64            `json:"file_size"`
	StorageKey  string           `json:"storage_key"`
	Rows        []tabular.Row    `json:"rows"`
}

// FileRepository keeps the whole collection in one JSON file and rewrites it
// on every mutation. In-process callers are serialized by the mutex;
// cross-process writers may lose updates, an accepted limitation of this
// backend.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) (*FileRepository, error) {
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) load() ([]datasetRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []datasetRecord{}, nil
		}
		return nil, fmt.Errorf("error reading collection: %w", err)
	}

	var records []datasetRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding collection: %w", err)
	}
	return records, nil
}

func (r *FileRepository) save(records []datasetRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding collection: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing collection: %w", err)
	}
	return nil
}

func toModel(rec datasetRecord, withRows bool) *models.Dataset {
	d := &models.Dataset{
		ID:          rec.ID,
		Filename:    rec.Filename,
		OwnerEmail:  rec.OwnerEmail,
		UploadedAt:  rec.UploadedAt,
		RowCount:    rec.RowCount,
		ColumnCount: rec.ColumnCount,
		Columns:     rec.Columns,
		FileSize:    rec.FileSize,
		StorageKey:  rec.StorageKey,
	}
	if withRows {
		d.Rows = rec.Rows
	}
	return d
}

func (r *FileRepository) Create(ctx context.Context, dataset *models.Dataset) (*models.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	dataset.ID = uuid.NewString()

	records = append(records, datasetRecord{
		ID:          dataset.ID,
		Filename:    dataset.Filename,
		OwnerEmail:  dataset.OwnerEmail,
		UploadedAt:  dataset.UploadedAt,
		RowCount:    dataset.RowCount,
		ColumnCount: dataset.ColumnCount,
		Columns:     dataset.Columns,
		FileSize:    dataset.FileSize,
		StorageKey:  dataset.StorageKey,
		Rows:        dataset.Rows,
	})

	if err := r.save(records); err != nil {
		return nil, err
	}

	return dataset, nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*models.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return toModel(rec, true), nil
		}
	}

	return nil, common.ErrorNotFound
}

func (r *FileRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.Dataset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	result := []*models.Dataset{}
	for _, rec := range records {
		if rec.OwnerEmail == ownerEmail {
			result = append(result, toModel(rec, false))
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UploadedAt.After(result[j].UploadedAt)
	})

	return result, nil
}

func (r *FileRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return err
	}

	for i, rec := range records {
		if rec.ID == id {
			records = append(records[:i], records[i+1:]...)
			return r.save(records)
		}
	}

	return common.ErrorNotFound
}
