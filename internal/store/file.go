package store

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/Flyrell/checkin/internal/journal"
)

// EntriesFile is the name of the JSON collection inside the data directory.
const EntriesFile = "entries.json"

// FileStore keeps the whole journal in a single JSON array, sorted newest
// first. Every Save rewrites the file; saves are serialized by mu because
// two saves of any dates touch the same document.
type FileStore struct {
	path  string
	clock Clock
	mu    sync.Mutex
}

// NewFileStore returns a FileStore rooted at dataDir. The directory is
// created on first save.
func NewFileStore(dataDir string, clock Clock) *FileStore {
	return &FileStore{
		path:  filepath.Join(dataDir, EntriesFile),
		clock: clock,
	}
}

// Path returns the location of the JSON collection.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) GetAll() ([]journal.Entry, error) {
	entries, err := s.load()
	if err != nil {
		return nil, err
	}
	journal.SortNewestFirst(entries)
	return entries, nil
}

func (s *FileStore) Get(date journal.Date) (journal.Entry, bool, error) {
	entries, err := s.load()
	if err != nil {
		return journal.Entry{}, false, err
	}
	for _, e := range entries {
		if e.Date == date {
			return e, true, nil
		}
	}
	return journal.Entry{}, false, nil
}

func (s *FileStore) Save(e journal.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].Date == e.Date {
			entries[i] = e
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, e)
	}

	if err := s.write(entries); err != nil {
		return err
	}
	slog.Debug("entry saved", "date", e.Date, "updated", replaced, "path", s.path)
	return nil
}

func (s *FileStore) GetLastNDays(n int) ([]journal.Entry, error) {
	cutoff, err := s.clock.Cutoff(n)
	if err != nil {
		return nil, err
	}
	entries, err := s.GetAll()
	if err != nil {
		return nil, err
	}
	return filterSince(entries, cutoff), nil
}

// load reads the collection. A missing file is an empty journal; records
// that cannot be decoded are skipped with a warning.
func (s *FileStore) load() ([]journal.Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []journal.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return []journal.Entry{}, nil
	}

	entries, skipped, err := journal.DecodeRecords(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	for _, sk := range skipped {
		slog.Warn("skipping unreadable entry record", "path", s.path, "index", sk.Index, "reason", sk.Reason)
	}
	return entries, nil
}

// write replaces the collection atomically: the sorted array is written to a
// temporary file in the same directory, synced, then renamed over the old one.
func (s *FileStore) write(entries []journal.Entry) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := journal.EncodeRecords(entries)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".entries-*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		return err
	}
	return os.Rename(tmpName, s.path)
}
