// Package history persists a local record of completed uploads, keyed by the
// server-assigned storage name, so the CLI can list and re-address stored
// objects.
package history

import (
	"context"

	"github.com/osadchiy/chatfiles/internal/client/models"
)

type Repository interface {
	Insert(ctx context.Context, rec *models.HistoryRecord) error
	GetByStoredName(ctx context.Context, storedName string) (*models.HistoryRecord, error)
	List(ctx context.Context, limit int) ([]*models.HistoryRecord, error)
	DeleteByID(ctx context.Context, id string) error
}
