package store

import (
	"database/sql"
	"time"
)

// Snapshot records a canvas export on disk.
type Snapshot struct {
	ID        int64
	SessionID string
	PNGPath   string
	PDFPath   string
	Color     string
	CreatedAt time.Time
}

// SnapshotRepository provides operations for snapshot records.
type SnapshotRepository struct {
	db *sql.DB
}

// Snapshots returns the snapshot repository for this store.
func (s *Store) Snapshots() *SnapshotRepository {
	return &SnapshotRepository{db: s.db}
}

// Create inserts a snapshot record and fills in its generated ID.
func (r *SnapshotRepository) Create(sn *Snapshot) error {
	if sn.CreatedAt.IsZero() {
		sn.CreatedAt = time.Now()
	}

	result, err := r.db.Exec(
		`INSERT INTO snapshots (session_id, png_path, pdf_path, color, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		sn.SessionID, sn.PNGPath, sn.PDFPath, sn.Color, sn.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	sn.ID = id

	return nil
}

// ListBySession retrieves all snapshots for a session, oldest first.
func (r *SnapshotRepository) ListBySession(sessionID string) ([]*Snapshot, error) {
	rows, err := r.db.Query(
		`SELECT id, session_id, png_path, pdf_path, color, created_at
		 FROM snapshots WHERE session_id = ? ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		sn := &Snapshot{}

		err := rows.Scan(&sn.ID, &sn.SessionID, &sn.PNGPath, &sn.PDFPath, &sn.Color, &sn.CreatedAt)
		if err != nil {
			return nil, err
		}

		snapshots = append(snapshots, sn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}
