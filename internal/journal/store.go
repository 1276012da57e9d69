package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jask/scenescope/internal/bridge"
)

// ErrSessionNotFound is returned when a session id has no rows.
var ErrSessionNotFound = errors.New("journal: session not found")

// Session is one recorded connection to a target.
type Session struct {
	ID        string
	Target    string
	StartedAt time.Time
	Frames    int
	Errors    int
}

// Store handles sessions and their frames.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// StartSession creates a session row with a fresh id.
func (s *Store) StartSession(ctx context.Context, target string, at time.Time) (Session, error) {
	sess := Session{ID: uuid.NewString(), Target: target, StartedAt: at.UTC().Truncate(time.Millisecond)}
	_, err := s.db.ExecContext(ctx, `INSERT INTO sessions(id, target, started_at) VALUES (?, ?, ?)`,
		sess.ID, sess.Target, sess.StartedAt.UnixMilli())
	if err != nil {
		return Session{}, fmt.Errorf("start session: %w", err)
	}
	return sess, nil
}

// Append stores one message at the given offset from session start.
func (s *Store) Append(ctx context.Context, sessionID string, seq int, offset time.Duration, msg bridge.Message) error {
	payload, err := bridge.Encode(msg)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO frames(session_id, seq, offset_ms, kind, payload) VALUES (?, ?, ?, ?, ?);
	`, sessionID, seq, offset.Milliseconds(), msg.Type, payload)
	if err != nil {
		return fmt.Errorf("append frame %d: %w", seq, err)
	}
	return nil
}

// Sessions lists sessions, newest first, with frame and error counts.
func (s *Store) Sessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx, `
	SELECT s.id, s.target, s.started_at,
	       COUNT(f.seq),
	       COALESCE(SUM(CASE WHEN f.kind = ? THEN 1 ELSE 0 END), 0)
	FROM sessions s
	LEFT JOIN frames f ON f.session_id = s.id
	GROUP BY s.id
	ORDER BY s.started_at DESC, s.id;
	`, bridge.KindError)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Session
	for rows.Next() {
		var sess Session
		var started int64
		if err := rows.Scan(&sess.ID, &sess.Target, &started, &sess.Frames, &sess.Errors); err != nil {
			return nil, err
		}
		sess.StartedAt = time.UnixMilli(started).UTC()
		out = append(out, sess)
	}
	return out, rows.Err()
}

// Frames loads a session's messages in order for replay.
func (s *Store) Frames(ctx context.Context, sessionID string) ([]bridge.Frame, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM sessions WHERE id = ?`, sessionID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT offset_ms, payload FROM frames WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []bridge.Frame
	for rows.Next() {
		var offset int64
		var payload []byte
		if err := rows.Scan(&offset, &payload); err != nil {
			return nil, err
		}
		msg, err := bridge.Decode(payload)
		if err != nil {
			return nil, fmt.Errorf("session %s: %w", sessionID, err)
		}
		out = append(out, bridge.Frame{Offset: time.Duration(offset) * time.Millisecond, Message: msg})
	}
	return out, rows.Err()
}

// Prune deletes all but the newest keep sessions and returns how many were
// removed.
func (s *Store) Prune(ctx context.Context, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}
	var removed int
	err := WithTx(s.db, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, `SELECT id FROM sessions ORDER BY started_at DESC, id LIMIT -1 OFFSET ?`, keep)
		if err != nil {
			return err
		}
		var ids []string
		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			ids = append(ids, id)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		for _, id := range ids {
			if _, err := tx.ExecContext(ctx, `DELETE FROM frames WHERE session_id = ?`, id); err != nil {
				return fmt.Errorf("prune frames %s: %w", id, err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
				return fmt.Errorf("prune session %s: %w", id, err)
			}
		}
		removed = len(ids)
		return nil
	})
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		_, _ = s.db.ExecContext(ctx, "VACUUM")
	}
	return removed, nil
}
