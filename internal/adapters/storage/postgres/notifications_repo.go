package postgres

import (
	"context"
	"database/sql"

	"pet-care-companion/internal/domain/events"
	"pet-care-companion/internal/domain/notifications"
)

type NotificationsRepo struct {
	db *sql.DB
}

func NewNotificationsRepo(db *sql.DB) *NotificationsRepo {
	return &NotificationsRepo{db: db}
}

func (r *NotificationsRepo) Load(ctx context.Context) ([]notifications.Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id,
			title, message,
			type, event_type, event_id,
			time, read, priority, action_required
		FROM notifications
		ORDER BY position
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notifications.Notification, 0)
	for rows.Next() {
		var n notifications.Notification
		var typ, eventType, prio string
		if err := rows.Scan(
			&n.ID,
			&n.PetID,
			&n.Title,
			&n.Message,
			&typ,
			&eventType,
			&n.EventID,
			&n.Time,
			&n.Read,
			&prio,
			&n.ActionRequired,
		); err != nil {
			return nil, err
		}
		n.Type = notifications.Type(typ)
		n.EventType = events.EventType(eventType)
		n.Priority = notifications.Priority(prio)
		out = append(out, n)
	}
	return out, rows.Err()
}

// Save reemplaza el snapshot completo en una transacción, igual que los
// demás backends reemplazan la lista entera.
func (r *NotificationsRepo) Save(ctx context.Context, list []notifications.Notification) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM notifications`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO notifications (
			id, pet_id,
			title, message,
			type, event_type, event_id,
			time, read, priority, action_required,
			position
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, n := range list {
		if _, err := stmt.ExecContext(ctx,
			n.ID,
			n.PetID,
			n.Title,
			n.Message,
			string(n.Type),
			string(n.EventType),
			n.EventID,
			n.Time,
			n.Read,
			string(n.Priority),
			n.ActionRequired,
			i,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
