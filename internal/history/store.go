package history

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// StorageKey is the single keyed entry the log is persisted under
const StorageKey = "tarjimon.history"

// MaxRecords caps the log; appending beyond it evicts the oldest records
const MaxRecords = 40

const snapshotVersion = 1

// snapshot is the versioned persisted form of the log
type snapshot struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// Store owns the history log. Callers only ever see copies; all
// mutations go through Append and Clear, and every mutation is flushed
// to storage before returning so persisted and in-memory state match.
type Store struct {
	storage Storage
	logger  *slog.Logger

	mu      sync.Mutex
	records []Record
}

// NewStore creates a store over the given storage backend. A nil
// logger falls back to slog.Default.
func NewStore(storage Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{storage: storage, logger: logger}
}

// Load reads the persisted log. Missing data yields an empty log;
// malformed data is logged and self-heals to an empty log. Load never
// fails past this boundary.
func (s *Store) Load() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok, err := s.storage.Get(StorageKey)
	if err != nil {
		s.logger.Warn("failed to read history, starting empty", "error", err)
		s.records = nil
		return nil
	}
	if !ok {
		s.records = nil
		return nil
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.logger.Warn("corrupt history payload, resetting", "error", err)
		s.records = nil
		return nil
	}
	if snap.Version != snapshotVersion {
		s.logger.Warn("unknown history schema version, resetting", "version", snap.Version)
		s.records = nil
		return nil
	}

	s.records = snap.Records
	if len(s.records) > MaxRecords {
		s.records = s.records[:MaxRecords]
	}
	return s.copyLocked()
}

// Append prepends rec, truncates to MaxRecords (evicting from the
// oldest end) and persists the result. Returns the new log snapshot.
func (s *Store) Append(rec Record) []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append([]Record{rec}, s.records...)
	if len(s.records) > MaxRecords {
		s.records = s.records[:MaxRecords]
	}
	s.persistLocked()
	return s.copyLocked()
}

// Clear empties the log and removes the persisted entry. Idempotent.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	return s.storage.Remove(StorageKey)
}

// Records returns a snapshot of the current log, newest first
func (s *Store) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

// Len returns the current number of records
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

func (s *Store) persistLocked() {
	data, err := json.Marshal(snapshot{Version: snapshotVersion, Records: s.records})
	if err != nil {
		s.logger.Error("failed to encode history", "error", err)
		return
	}
	if err := s.storage.Set(StorageKey, data); err != nil {
		s.logger.Error("failed to persist history", "error", err)
	}
}

func (s *Store) copyLocked() []Record {
	if len(s.records) == 0 {
		return nil
	}
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}
