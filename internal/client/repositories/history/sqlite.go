package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osadchiy/chatfiles/internal/client/models"
	"github.com/osadchiy/chatfiles/internal/common"
	"github.com/osadchiy/chatfiles/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Insert(ctx context.Context, rec *models.HistoryRecord) error {
	query := `INSERT INTO upload_history (id, original_name, stored_name, mime_type, size, uploaded_at)
			values (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET original_name = excluded.original_name,
				stored_name = excluded.stored_name,
				mime_type = excluded.mime_type,
				size = excluded.size,
				uploaded_at = excluded.uploaded_at
	`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.OriginalName, rec.StoredName, rec.MimeType, rec.Size, rec.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert history record: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) GetByStoredName(ctx context.Context, storedName string) (*models.HistoryRecord, error) {
	query := `select id, original_name, stored_name, mime_type, size, uploaded_at
			from upload_history where stored_name=?`
	row := r.db.QueryRowContext(ctx, query, storedName)

	rec := &models.HistoryRecord{}
	err := row.Scan(&rec.ID, &rec.OriginalName, &rec.StoredName, &rec.MimeType, &rec.Size, &rec.UploadedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get history record: %w", err)
	}

	return rec, nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]*models.HistoryRecord, error) {
	query := `select id, original_name, stored_name, mime_type, size, uploaded_at
			from upload_history order by uploaded_at desc limit ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error selecting history: %w", err)
	}
	defer rows.Close()

	var result []*models.HistoryRecord

	for rows.Next() {
		var item = &models.HistoryRecord{}
		err := rows.Scan(&item.ID, &item.OriginalName, &item.StoredName, &item.MimeType, &item.Size, &item.UploadedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `delete from upload_history where id=?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete history record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return common.ErrorNotFound
	}

	return nil
}
