package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/dmitrijs2005/datachart/internal/server/models"
	"github.com/google/uuid"
)

// userRecord is the on-disk shape of an account in the flat-file store.
type userRecord struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// FileRepository keeps the whole collection in one JSON file and rewrites it
// on every mutation. The mutex serializes callers within this process;
// concurrent writers from other processes may lose updates, an accepted
// limitation of this backend.
type FileRepository struct {
	mu   sync.Mutex
	path string
}

func NewFileRepository(path string) (*FileRepository, error) {
	return &FileRepository{path: path}, nil
}

func (r *FileRepository) load() ([]userRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []userRecord{}, nil
		}
		return nil, fmt.Errorf("error reading collection: %w", err)
	}

	var records []userRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding collection: %w", err)
	}
	return records, nil
}

func (r *FileRepository) save(records []userRecord) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("error encoding collection: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return fmt.Errorf("error writing collection: %w", err)
	}
	return nil
}

func (r *FileRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	records = append(records, userRecord{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	})

	if err := r.save(records); err != nil {
		return nil, err
	}

	return user, nil
}

func (r *FileRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load()
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.Email == email {
			return &models.User{
				ID:           rec.ID,
				Email:        rec.Email,
				PasswordHash: rec.PasswordHash,
				Role:         rec.Role,
				CreatedAt:    rec.CreatedAt,
			}, nil
		}
	}

	return nil, common.ErrorNotFound
}
