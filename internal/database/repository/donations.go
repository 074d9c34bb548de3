package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/mvbuuren/donatui/internal/database"
)

// Donation is one persisted donation payload.
type Donation struct {
	ID        string
	SessionID string
	Key       string
	Payload   string
	CreatedAt time.Time
}

// FlowEvent is one tracked flow event for a session.
type FlowEvent struct {
	SessionID string
	Kind      string
	Message   string
	CreatedAt time.Time
}

// DonationRepo handles donations and flow events.
type DonationRepo struct {
	db *sql.DB
}

func NewDonationRepo(db *sql.DB) *DonationRepo { return &DonationRepo{db: db} }

func (r *DonationRepo) Insert(ctx context.Context, sessionID, key, payload string) (string, error) {
	id := uuid.NewString()
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO donations(id, session_id, donation_key, payload, created_at) VALUES (?, ?, ?, ?, ?);
	`, id, sessionID, key, payload, database.Now())
	if err != nil {
		return "", err
	}
	return id, nil
}

// InsertEvents stores a session's tracked events in one transaction, so an
// interrupted exit never leaves a partial log behind. Events share one
// timestamp; their insertion order keeps them sorted.
func (r *DonationRepo) InsertEvents(ctx context.Context, events []FlowEvent) error {
	if len(events) == 0 {
		return nil
	}
	now := database.Now()
	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, ev := range events {
			_, err := tx.ExecContext(ctx, `
			INSERT INTO flow_events(session_id, kind, message, created_at) VALUES (?, ?, ?, ?);
			`, ev.SessionID, ev.Kind, ev.Message, now)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *DonationRepo) BySession(ctx context.Context, sessionID string) ([]Donation, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, session_id, donation_key, payload, created_at
	FROM donations WHERE session_id = ? ORDER BY created_at, donation_key`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Donation
	for rows.Next() {
		var d Donation
		if err := rows.Scan(&d.ID, &d.SessionID, &d.Key, &d.Payload, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
