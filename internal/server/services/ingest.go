package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/dmitrijs2005/datachart/internal/server/models"
	"github.com/dmitrijs2005/datachart/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/datachart/internal/server/tabular"
)

type IngestService struct {
	repo    datasets.Repository
	archive *Archive
}

func NewIngestService(repo datasets.Repository, archive *Archive) *IngestService {
	return &IngestService{repo: repo, archive: archive}
}

// Upload decodes an uploaded file into the normalized table shape and
// persists it as a dataset owned by ownerEmail.
//
// The extension is validated against the allow-list before any parsing:
// .csv, .xlsx and .xls. Anything else fails with
// common.ErrorUnsupportedFileType. Decoder failures surface as
// common.ErrorParse with the underlying cause attached. When the archive is
// configured the raw bytes are stored under a fresh object key recorded on
// the dataset.
func (s *IngestService) Upload(ctx context.Context, ownerEmail, filename string, raw []byte) (*models.Dataset, error) {

	var table *tabular.Table
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		table, err = tabular.DecodeCSV(raw)
	case ".xlsx", ".xls":
		table, err = tabular.DecodeExcel(raw)
	default:
		return nil, common.ErrorUnsupportedFileType
	}
	if err != nil {
		return nil, err
	}

	storageKey := ""
	if s.archive.Enabled() {
		storageKey = RandomStorageKey()
		if err := s.archive.Store(ctx, storageKey, raw); err != nil {
			return nil, fmt.Errorf("error archiving upload: %w", err)
		}
	}

	dataset := &models.Dataset{
		Filename:    filename,
		OwnerEmail:  ownerEmail,
		UploadedAt:  time.Now().UTC(),
		RowCount:    len(table.Rows),
		ColumnCount: len(table.Columns),
		Columns:     table.Columns,
		FileSize:    int64(len(raw)),
		StorageKey:  storageKey,
		Rows:        table.Rows,
	}

	dataset, err = s.repo.Create(ctx, dataset)
	if err != nil {
		return nil, fmt.Errorf("error creating dataset: %w", err)
	}

	return dataset, nil
}
