// Package storage persists sessions and timer state as JSON documents
// under a single data directory. The sessions file is append-only: every
// write reads the whole collection, extends it, and atomically rewrites it.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alexanderramin/tasktimer/internal/domain"
)

const sessionsFile = "sessions.json"

// SessionStore reads and appends the session collection file.
type SessionStore struct {
	path string
}

// NewSessionStore creates a store backed by dir/sessions.json.
func NewSessionStore(dir string) *SessionStore {
	return &SessionStore{path: filepath.Join(dir, sessionsFile)}
}

// sessionRecord is the wire form of a session. duration_seconds is stored
// for the convenience of other consumers; it is always recomputed from the
// timestamps on load.
type sessionRecord struct {
	ID              string `json:"id"`
	Task            string `json:"task"`
	Category        string `json:"category"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationSeconds int    `json:"duration_seconds"`
}

type sessionDocument struct {
	Sessions []sessionRecord `json:"sessions"`
}

// Append adds one completed session to the collection. The whole file is
// read, extended, and rewritten via a temp file and rename so a crash
// mid-write never corrupts the existing collection.
func (st *SessionStore) Append(ctx context.Context, s *domain.Session) error {
	doc, err := st.readDocument()
	if err != nil {
		return err
	}

	doc.Sessions = append(doc.Sessions, encodeSession(s))

	return writeJSONAtomic(st.path, doc)
}

// Load returns sessions in append order, optionally filtered on start time:
// kept when start_time >= start (if given) and start_time < end (if given).
// End times never participate in filtering. A missing file yields an empty
// result; a malformed file fails the whole load.
func (st *SessionStore) Load(ctx context.Context, start, end *time.Time) ([]*domain.Session, error) {
	doc, err := st.readDocument()
	if err != nil {
		return nil, err
	}

	var sessions []*domain.Session
	for _, rec := range doc.Sessions {
		s, err := decodeSession(rec)
		if err != nil {
			return nil, err
		}
		if start != nil && s.StartTime.Before(*start) {
			continue
		}
		if end != nil && !s.StartTime.Before(*end) {
			continue
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// LoadByCategory is the category-filtered convenience form of Load.
func (st *SessionStore) LoadByCategory(ctx context.Context, start, end *time.Time, categories ...string) ([]*domain.Session, error) {
	sessions, err := st.Load(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return ByCategory(sessions, categories...), nil
}

func (st *SessionStore) readDocument() (*sessionDocument, error) {
	data, err := os.ReadFile(st.path)
	if os.IsNotExist(err) {
		return &sessionDocument{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading sessions file: %w", err)
	}

	var doc sessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing sessions file: %w", err)
	}
	return &doc, nil
}

func encodeSession(s *domain.Session) sessionRecord {
	return sessionRecord{
		ID:              s.ID,
		Task:            s.Task,
		Category:        s.Category,
		StartTime:       domain.FormatTime(s.StartTime),
		EndTime:         domain.FormatTime(s.EndTime),
		DurationSeconds: int(s.Duration().Seconds()),
	}
}

func decodeSession(rec sessionRecord) (*domain.Session, error) {
	start, err := domain.ParseTime(rec.StartTime)
	if err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	end, err := domain.ParseTime(rec.EndTime)
	if err != nil {
		return nil, fmt.Errorf("parsing end_time: %w", err)
	}

	return &domain.Session{
		ID:        rec.ID,
		Task:      rec.Task,
		Category:  rec.Category,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// writeJSONAtomic marshals v and replaces path in one rename so readers
// never observe a partially written file.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Base(path), err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", filepath.Base(path), err)
	}
	return nil
}
