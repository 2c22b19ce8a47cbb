package store

import (
	"database/sql"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// SessionStats holds the activity counters recorded for a session.
type SessionStats struct {
	Frames       int
	Strokes      int
	Segments     int
	Erases       int
	ColorChanges int
	Snapshots    int
}

// Session represents one drawing session from launch to quit.
type Session struct {
	ID        string
	StartedAt time.Time
	EndedAt   *time.Time
	Stats     SessionStats
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *sql.DB
}

// Sessions returns the session repository for this store.
func (s *Store) Sessions() *SessionRepository {
	return &SessionRepository{db: s.db}
}

// Create inserts a new session with zeroed counters.
func (r *SessionRepository) Create(s *Session) error {
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO sessions (id, started_at, frames, strokes, segments, erases, color_changes, snapshots)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.StartedAt, s.Stats.Frames, s.Stats.Strokes, s.Stats.Segments,
		s.Stats.Erases, s.Stats.ColorChanges, s.Stats.Snapshots,
	)
	if err != nil {
		return err
	}

	return nil
}

// Finish records the end time and final counters for a session.
func (r *SessionRepository) Finish(id string, stats SessionStats) error {
	result, err := r.db.Exec(
		`UPDATE sessions
		 SET ended_at = ?, frames = ?, strokes = ?, segments = ?, erases = ?, color_changes = ?, snapshots = ?
		 WHERE id = ?`,
		time.Now(), stats.Frames, stats.Strokes, stats.Segments,
		stats.Erases, stats.ColorChanges, stats.Snapshots, id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// GetByID retrieves a session by its ID.
func (r *SessionRepository) GetByID(id string) (*Session, error) {
	s := &Session{}
	var ended sql.NullTime

	err := r.db.QueryRow(
		`SELECT id, started_at, ended_at, frames, strokes, segments, erases, color_changes, snapshots
		 FROM sessions WHERE id = ?`,
		id,
	).Scan(&s.ID, &s.StartedAt, &ended, &s.Stats.Frames, &s.Stats.Strokes,
		&s.Stats.Segments, &s.Stats.Erases, &s.Stats.ColorChanges, &s.Stats.Snapshots)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if ended.Valid {
		t := ended.Time
		s.EndedAt = &t
	}

	return s, nil
}

// List retrieves all sessions, newest first.
func (r *SessionRepository) List() ([]*Session, error) {
	rows, err := r.db.Query(
		`SELECT id, started_at, ended_at, frames, strokes, segments, erases, color_changes, snapshots
		 FROM sessions ORDER BY started_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s := &Session{}
		var ended sql.NullTime

		err := rows.Scan(&s.ID, &s.StartedAt, &ended, &s.Stats.Frames, &s.Stats.Strokes,
			&s.Stats.Segments, &s.Stats.Erases, &s.Stats.ColorChanges, &s.Stats.Snapshots)
		if err != nil {
			return nil, err
		}

		if ended.Valid {
			t := ended.Time
			s.EndedAt = &t
		}

		sessions = append(sessions, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// Delete removes a session and, through the foreign key, its snapshots.
func (r *SessionRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
