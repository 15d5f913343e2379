package datasets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/datachart/internal/common"
	"github.com/dmitrijs2005/datachart/internal/server/models"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

func (r *PostgresRepository) Create(ctx context.Context, dataset *models.Dataset) (*models.Dataset, error) {

	columns, err := json.Marshal(dataset.Columns)
	if err != nil {
		return nil, fmt.Errorf("error encoding columns: %w", err)
	}
	rows, err := json.Marshal(dataset.Rows)
	if err != nil {
		return nil, fmt.Errorf("error encoding rows: %w", err)
	}

	query :=
		`INSERT INTO datasets (filename, owner_email, uploaded_at, row_count, column_count, columns, file_size, storage_key, rows)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id
		 `

	err = r.db.QueryRowContext(ctx, query,
		dataset.Filename, dataset.OwnerEmail, dataset.UploadedAt,
		dataset.RowCount, dataset.ColumnCount, columns,
		dataset.FileSize, dataset.StorageKey, rows).Scan(&dataset.ID)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return dataset, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Dataset, error) {
	query :=
		`SELECT id, filename, owner_email, uploaded_at, row_count, column_count, columns, file_size, storage_key, rows
		 FROM datasets
		 WHERE id = $1
		 `

	dataset := &models.Dataset{}
	var columns, rows []byte

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dataset.ID, &dataset.Filename, &dataset.OwnerEmail, &dataset.UploadedAt,
		&dataset.RowCount, &dataset.ColumnCount, &columns,
		&dataset.FileSize, &dataset.StorageKey, &rows)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	if err := json.Unmarshal(columns, &dataset.Columns); err != nil {
		return nil, fmt.Errorf("error decoding columns: %w", err)
	}
	if err := json.Unmarshal(rows, &dataset.Rows); err != nil {
		return nil, fmt.Errorf("error decoding rows: %w", err)
	}

	return dataset, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerEmail string) ([]*models.Dataset, error) {
	query :=
		`SELECT id, filename, owner_email, uploaded_at, row_count, column_count, columns, file_size, storage_key
		 FROM datasets
		 WHERE owner_email = $1
		 ORDER BY uploaded_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := []*models.Dataset{}
	for rows.Next() {
		dataset := &models.Dataset{}
		var columns []byte

		err := rows.Scan(
			&dataset.ID, &dataset.Filename, &dataset.OwnerEmail, &dataset.UploadedAt,
			&dataset.RowCount, &dataset.ColumnCount, &columns,
			&dataset.FileSize, &dataset.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}

		if err := json.Unmarshal(columns, &dataset.Columns); err != nil {
			return nil, fmt.Errorf("error decoding columns: %w", err)
		}

		result = append(result, dataset)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM datasets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading affected rows: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
