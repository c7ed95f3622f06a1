package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lmaki/rewarddining/internal/adapters/outbox"
	"github.com/lmaki/rewarddining/internal/core/domain"
)

// OutboxRepository stores staged events in Postgres, which lets a Stage call
// inside WithTransaction commit atomically with the domain writes. It backs
// both the staging port used by services and the relay's fetch/delete loop.
type OutboxRepository struct {
	pool *pgxpool.Pool
}

func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

func (r *OutboxRepository) Stage(ctx context.Context, event domain.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.Insert(ctx, outbox.Entry{
		EventName:  event.GetName(),
		EntityName: event.GetEntityName(),
		EventData:  data,
	})
}

func (r *OutboxRepository) Insert(ctx context.Context, entry outbox.Entry) error {
	_, err := conn(ctx, r.pool).Exec(ctx,
		`INSERT INTO outbox_event (event_name, entity_name, event_data, created_at) VALUES ($1, $2, $3, $4)`,
		entry.EventName, entry.EntityName, entry.EventData, time.Now(),
	)
	return parseError(err)
}

func (r *OutboxRepository) FetchPending(ctx context.Context, limit int) ([]outbox.Entry, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, event_name, entity_name, event_data
FROM outbox_event ORDER BY created_at LIMIT $1`, limit)
	if err != nil {
		return nil, parseError(err)
	}
	defer rows.Close()

	var entries []outbox.Entry
	for rows.Next() {
		var (
			id    int64
			entry outbox.Entry
		)
		if err := rows.Scan(&id, &entry.EventName, &entry.EntityName, &entry.EventData); err != nil {
			return nil, err
		}
		entry.ID = strconv.FormatInt(id, 10)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *OutboxRepository) Delete(ctx context.Context, id string) error {
	eventID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `DELETE FROM outbox_event WHERE id = $1`, eventID)
	return parseError(err)
}
