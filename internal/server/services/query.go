package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/dmitrijs2005/datachart/internal/server/models"
	"github.com/dmitrijs2005/datachart/internal/server/repositories/datasets"
	"github.com/dmitrijs2005/datachart/internal/server/tabular"
)

// PageResult is one page of dataset rows plus the pagination bookkeeping the
// API reports alongside it.
type PageResult struct {
	Rows       []tabular.Row
	TotalRows  int
	Page       int
	PageSize   int
	TotalPages int
}

type QueryService struct {
	repo    datasets.Repository
	archive *Archive
}

func NewQueryService(repo datasets.Repository, archive *Archive) *QueryService {
	return &QueryService{repo: repo, archive: archive}
}

// getOwned loads a dataset and enforces the ownership rule. Existence is
// checked before ownership, so an unknown id fails common.ErrorNotFound and
// someone else's dataset fails common.ErrorForbidden; the two stay
// distinguishable.
func (s *QueryService) getOwned(ctx context.Context, id, requesterEmail string) (*models.Dataset, error) {
	dataset, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error loading dataset: %w", err)
	}

	if dataset.OwnerEmail != requesterEmail {
		return nil, common.ErrorForbidden
	}

	return dataset, nil
}

// List returns the requester's dataset summaries, newest upload first,
// without the row payloads.
func (s *QueryService) List(ctx context.Context, ownerEmail string) ([]*models.Dataset, error) {
	list, err := s.repo.ListByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("error listing datasets: %w", err)
	}
	return list, nil
}

// Metadata returns a dataset's descriptive fields. The caller is expected
// not to expose the row payload.
func (s *QueryService) Metadata(ctx context.Context, id, requesterEmail string) (*models.Dataset, error) {
	return s.getOwned(ctx, id, requesterEmail)
}

// Page returns one page of rows. An out-of-range page yields an empty slice
// rather than an error.
func (s *QueryService) Page(ctx context.Context, id, requesterEmail string, page, pageSize int) (*PageResult, error) {
	dataset, err := s.getOwned(ctx, id, requesterEmail)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		Rows:       tabular.Paginate(dataset.Rows, page, pageSize),
		TotalRows:  dataset.RowCount,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: tabular.TotalPages(dataset.RowCount, pageSize),
	}, nil
}

// Summarize computes the grouped aggregation over the dataset and returns a
// chart-ready series.
func (s *QueryService) Summarize(ctx context.Context, id, requesterEmail, groupCol, agg, valueCol string) ([]tabular.Point, error) {
	dataset, err := s.getOwned(ctx, id, requesterEmail)
	if err != nil {
		return nil, err
	}

	return tabular.Summarize(dataset.Columns, dataset.Rows, groupCol, agg, valueCol)
}

// Delete removes the dataset permanently. When the raw upload was archived,
// the object is removed best effort: a failing object delete does not undo
// the dataset delete.
func (s *QueryService) Delete(ctx context.Context, id, requesterEmail string) error {
	dataset, err := s.getOwned(ctx, id, requesterEmail)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting dataset: %w", err)
	}

	if dataset.StorageKey != "" && s.archive.Enabled() {
		_ = s.archive.Remove(ctx, dataset.StorageKey)
	}

	return nil
}

// DownloadURL returns a presigned URL for the archived raw upload. Fails
// with common.ErrorNotArchived when archival is off or the dataset predates
// it.
func (s *QueryService) DownloadURL(ctx context.Context, id, requesterEmail string) (string, error) {
	dataset, err := s.getOwned(ctx, id, requesterEmail)
	if err != nil {
		return "", err
	}

	if !s.archive.Enabled() || dataset.StorageKey == "" {
		return "", common.ErrorNotArchived
	}

	url, err := s.archive.PresignGet(ctx, dataset.StorageKey)
	if err != nil {
		return "", fmt.Errorf("error presigning download: %w", err)
	}

	return url, nil
}
