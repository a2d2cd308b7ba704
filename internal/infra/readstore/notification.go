package readstore

import (
	"context"

	"fieldbook/internal/infra"
	sqlc "fieldbook/internal/infra/sqlc/generated"
)

type NotificationReadQueries interface {
	CountNotificationJobsByStatus(ctx context.Context, db sqlc.DBTX) ([]sqlc.CountNotificationJobsByStatusRow, error)
}

type NotificationReadStore struct {
	queries NotificationReadQueries
	db      sqlc.DBTX
}

func NewNotificationReadStore(queries NotificationReadQueries, db sqlc.DBTX) *NotificationReadStore {
	return &NotificationReadStore{
		queries: queries,
		db:      db,
	}
}

// CountByStatus returns outbox depth per status (queued, sent, failed).
func (s *NotificationReadStore) CountByStatus(ctx context.Context) (map[string]int64, error) {
	rows, err := s.queries.CountNotificationJobsByStatus(ctx, s.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count notification jobs", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
