package repomanager

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/datachart/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/datachart/internal/server/repositories/users"
)

type FileRepositoryManager struct {
	users    users.Repository
	datasets datasets.Repository
}

func (m *FileRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *FileRepositoryManager) Datasets() datasets.Repository {
	return m.datasets
}

func (m *FileRepositoryManager) Close() error {
	return nil
}

func NewFileRepositoryManager(dir string) (RepositoryManager, error) {

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("data dir creation error: %w", err)
	}

	userRepo, err := users.NewFileRepository(filepath.Join(dir, "users.json"))
	if err != nil {
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	datasetRepo, err := datasets.NewFileRepository(filepath.Join(dir, "datasets.json"))
	if err != nil {
		return nil, fmt.Errorf("dataset repo creation error: %w", err)
	}

	return &FileRepositoryManager{users: userRepo, datasets: datasetRepo}, nil
}
