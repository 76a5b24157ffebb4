package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-care-companion/internal/domain/events"
)

type EventsRepo struct {
	db *sql.DB
}

func NewEventsRepo(db *sql.DB) *EventsRepo {
	return &EventsRepo{db: db}
}

func (r *EventsRepo) Create(ctx context.Context, e events.CalendarEvent) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO calendar_events (
			id, pet_id,
			title, type, date, time,
			reminder, notes, completed
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		e.ID,
		e.PetID,
		e.Title,
		string(e.Type),
		e.Date,
		e.Time,
		e.Reminder,
		e.Notes,
		e.Completed,
	)
	return err
}

func (r *EventsRepo) Update(ctx context.Context, e events.CalendarEvent) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE calendar_events
		SET pet_id = $2,
		    title = $3,
		    type = $4,
		    date = $5,
		    time = $6,
		    reminder = $7,
		    notes = $8,
		    completed = $9
		WHERE id = $1
	`,
		e.ID,
		e.PetID,
		e.Title,
		string(e.Type),
		e.Date,
		e.Time,
		e.Reminder,
		e.Notes,
		e.Completed,
	)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventsRepo) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		DELETE FROM calendar_events
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id string) (events.CalendarEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return events.CalendarEvent{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT
			id, pet_id,
			title, type, date, time,
			reminder, notes, completed
		FROM calendar_events
		WHERE id = $1
	`, id)

	var e events.CalendarEvent
	var typ string
	if err := row.Scan(
		&e.ID,
		&e.PetID,
		&e.Title,
		&typ,
		&e.Date,
		&e.Time,
		&e.Reminder,
		&e.Notes,
		&e.Completed,
	); err != nil {
		if err == sql.ErrNoRows {
			return events.CalendarEvent{}, ErrNotFound
		}
		return events.CalendarEvent{}, err
	}

	e.Type = events.EventType(typ)
	return e, nil
}

func (r *EventsRepo) List(ctx context.Context) ([]events.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, pet_id,
			title, type, date, time,
			reminder, notes, completed
		FROM calendar_events
		ORDER BY date, time
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]events.CalendarEvent, 0)
	for rows.Next() {
		var e events.CalendarEvent
		var typ string
		if err := rows.Scan(
			&e.ID,
			&e.PetID,
			&e.Title,
			&typ,
			&e.Date,
			&e.Time,
			&e.Reminder,
			&e.Notes,
			&e.Completed,
		); err != nil {
			return nil, err
		}
		e.Type = events.EventType(typ)
		out = append(out, e)
	}
	return out, rows.Err()
}
