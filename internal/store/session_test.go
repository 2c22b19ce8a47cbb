package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestSessionRepository_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	session := &Session{ID: uuid.New().String()}

	if err := repo.Create(session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if session.StartedAt.IsZero() {
		t.Error("StartedAt should be set after create")
	}

	retrieved, err := repo.GetByID(session.ID)
	if err != nil {
		t.Fatalf("failed to get session by ID: %v", err)
	}

	if retrieved.ID != session.ID {
		t.Errorf("ID mismatch: got %q, want %q", retrieved.ID, session.ID)
	}
	if retrieved.EndedAt != nil {
		t.Error("a running session should have no end time")
	}
	if retrieved.Stats != (SessionStats{}) {
		t.Errorf("new session stats = %+v, want all zero", retrieved.Stats)
	}
}

func TestSessionRepository_Finish(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	session := &Session{ID: uuid.New().String()}
	if err := repo.Create(session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	stats := SessionStats{
		Frames:       420,
		Strokes:      3,
		Segments:     57,
		Erases:       12,
		ColorChanges: 2,
		Snapshots:    1,
	}

	if err := repo.Finish(session.ID, stats); err != nil {
		t.Fatalf("failed to finish session: %v", err)
	}

	retrieved, err := repo.GetByID(session.ID)
	if err != nil {
		t.Fatalf("failed to get session after finish: %v", err)
	}

	if retrieved.EndedAt == nil {
		t.Fatal("finished session should have an end time")
	}
	if retrieved.EndedAt.Before(retrieved.StartedAt) {
		t.Error("end time should not precede start time")
	}
	if retrieved.Stats != stats {
		t.Errorf("stats = %+v, want %+v", retrieved.Stats, stats)
	}
}

func TestSessionRepository_Finish_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	err := repo.Finish("non-existent-id", SessionStats{})
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound for non-existent session, got: %v", err)
	}
}

func TestSessionRepository_GetByID_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	_, err := repo.GetByID("non-existent-id")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
}

func TestSessionRepository_List_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	older := &Session{ID: uuid.New().String(), StartedAt: time.Now().Add(-time.Hour)}
	newer := &Session{ID: uuid.New().String(), StartedAt: time.Now()}

	if err := repo.Create(older); err != nil {
		t.Fatalf("failed to create older session: %v", err)
	}
	if err := repo.Create(newer); err != nil {
		t.Fatalf("failed to create newer session: %v", err)
	}

	list, err := repo.List()
	if err != nil {
		t.Fatalf("failed to list sessions: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(list))
	}
	if list[0].ID != newer.ID {
		t.Errorf("first listed session = %q, want the newest %q", list[0].ID, newer.ID)
	}
}

func TestSessionRepository_Delete(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	session := &Session{ID: uuid.New().String()}
	if err := repo.Create(session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	if err := repo.Delete(session.ID); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	_, err := repo.GetByID(session.ID)
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got: %v", err)
	}
}

func TestSessionRepository_Delete_NotFound(t *testing.T) {
	s := newTestStore(t)
	repo := s.Sessions()

	err := repo.Delete("non-existent-id")
	if err != ErrNotFound {
		t.Errorf("expected ErrNotFound for non-existent session, got: %v", err)
	}
}

func TestSnapshotRepository_CreateAndList(t *testing.T) {
	s := newTestStore(t)

	session := &Session{ID: uuid.New().String()}
	if err := s.Sessions().Create(session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	repo := s.Snapshots()

	first := &Snapshot{
		SessionID: session.ID,
		PNGPath:   "/data/snapshots/rangoli-001.png",
		PDFPath:   "/data/snapshots/rangoli-001.pdf",
		Color:     "Green",
	}
	second := &Snapshot{
		SessionID: session.ID,
		PNGPath:   "/data/snapshots/rangoli-002.png",
		Color:     "Red",
		CreatedAt: time.Now().Add(time.Minute),
	}

	if err := repo.Create(first); err != nil {
		t.Fatalf("failed to create first snapshot: %v", err)
	}
	if err := repo.Create(second); err != nil {
		t.Fatalf("failed to create second snapshot: %v", err)
	}

	if first.ID == 0 || second.ID == 0 {
		t.Error("Create should fill in generated IDs")
	}

	list, err := repo.ListBySession(session.ID)
	if err != nil {
		t.Fatalf("failed to list snapshots: %v", err)
	}

	if len(list) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(list))
	}
	if list[0].PNGPath != first.PNGPath {
		t.Errorf("first listed snapshot = %q, want the oldest %q", list[0].PNGPath, first.PNGPath)
	}
	if list[1].PDFPath != "" {
		t.Errorf("second snapshot PDFPath = %q, want empty", list[1].PDFPath)
	}
}

func TestSnapshotRepository_Create_UnknownSession(t *testing.T) {
	s := newTestStore(t)
	repo := s.Snapshots()

	sn := &Snapshot{
		SessionID: "no-such-session",
		PNGPath:   "/data/snapshots/orphan.png",
	}

	// Foreign keys are on, so orphan snapshots are rejected
	if err := repo.Create(sn); err == nil {
		t.Error("creating a snapshot for a missing session should fail")
	}
}

func TestSnapshotRepository_CascadeDelete(t *testing.T) {
	s := newTestStore(t)

	session := &Session{ID: uuid.New().String()}
	if err := s.Sessions().Create(session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}

	sn := &Snapshot{SessionID: session.ID, PNGPath: "/data/snapshots/a.png"}
	if err := s.Snapshots().Create(sn); err != nil {
		t.Fatalf("failed to create snapshot: %v", err)
	}

	if err := s.Sessions().Delete(session.ID); err != nil {
		t.Fatalf("failed to delete session: %v", err)
	}

	list, err := s.Snapshots().ListBySession(session.ID)
	if err != nil {
		t.Fatalf("failed to list snapshots: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected snapshots to cascade on session delete, got %d", len(list))
	}
}
