package store

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Flyrell/checkin/internal/journal"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"
)

// SQLiteFile is the database file name inside the data directory.
const SQLiteFile = "checkin.db"

// SQLitePath returns the database path for a data directory.
func SQLitePath(dataDir string) string {
	return filepath.Join(dataDir, SQLiteFile)
}

// entryRow is the table layout of an entry. Activities are stored as a
// JSON array in a single column.
type entryRow struct {
	Date       string    `gorm:"primaryKey;type:text"`
	Mood       int       `gorm:"not null"`
	Sleep      float64   `gorm:"not null;default:0"`
	Stress     int       `gorm:"not null"`
	Journal    string    `gorm:"not null;default:''"`
	Activities []string  `gorm:"type:text;serializer:json"`
	Timestamp  time.Time `gorm:"not null"`
}

func (entryRow) TableName() string { return "entries" }

func rowFromEntry(e journal.Entry) entryRow {
	activities := e.Activities
	if activities == nil {
		activities = []string{}
	}
	return entryRow{
		Date:       string(e.Date),
		Mood:       e.Mood,
		Sleep:      e.Sleep,
		Stress:     e.Stress,
		Journal:    e.Journal,
		Activities: activities,
		Timestamp:  e.Timestamp.UTC(),
	}
}

func (r entryRow) toEntry() (journal.Entry, error) {
	date, err := journal.ParseDate(r.Date)
	if err != nil {
		return journal.Entry{}, err
	}
	activities := r.Activities
	if activities == nil {
		activities = []string{}
	}
	return journal.Entry{
		Date:       date,
		Mood:       r.Mood,
		Sleep:      r.Sleep,
		Stress:     r.Stress,
		Journal:    r.Journal,
		Activities: activities,
		Timestamp:  r.Timestamp.UTC(),
	}, nil
}

// SQLiteStore keeps entries in a SQLite table keyed by date. Saves to the
// same date are serialized through locks; different dates proceed
// independently and rely on the database upsert for atomicity.
type SQLiteStore struct {
	db    *gorm.DB
	clock Clock
	locks *dateLocks
}

// OpenSQLiteStore opens (creating if needed) the database at dbPath and
// migrates the entries table.
func OpenSQLiteStore(dbPath string, clock Clock) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(
			log.New(os.Stderr, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := database.AutoMigrate(&entryRow{}); err != nil {
		return nil, fmt.Errorf("migrate entries table: %w", err)
	}

	return &SQLiteStore{db: database, clock: clock, locks: newDateLocks()}, nil
}

// Close releases the underlying connection pool.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *SQLiteStore) GetAll() ([]journal.Entry, error) {
	var rows []entryRow
	if err := s.db.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return s.toEntries(rows), nil
}

func (s *SQLiteStore) Get(date journal.Date) (journal.Entry, bool, error) {
	var row entryRow
	result := s.db.Where("date = ?", string(date)).Limit(1).Find(&row)
	if result.Error != nil {
		return journal.Entry{}, false, fmt.Errorf("get entry %s: %w", date, result.Error)
	}
	if result.RowsAffected == 0 {
		return journal.Entry{}, false, nil
	}
	e, err := row.toEntry()
	if err != nil {
		slog.Warn("skipping unreadable entry row", "date", row.Date, "reason", err.Error())
		return journal.Entry{}, false, nil
	}
	return e, true, nil
}

func (s *SQLiteStore) Save(e journal.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}

	unlock := s.locks.lock(e.Date)
	defer unlock()

	row := rowFromEntry(e)
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("save entry %s: %w", e.Date, err)
	}
	slog.Debug("entry saved", "date", e.Date, "backend", BackendSQLite)
	return nil
}

func (s *SQLiteStore) GetLastNDays(n int) ([]journal.Entry, error) {
	cutoff, err := s.clock.Cutoff(n)
	if err != nil {
		return nil, err
	}
	var rows []entryRow
	if err := s.db.Where("date >= ?", string(cutoff)).Order("date DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list entries since %s: %w", cutoff, err)
	}
	return s.toEntries(rows), nil
}

func (s *SQLiteStore) toEntries(rows []entryRow) []journal.Entry {
	entries := make([]journal.Entry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toEntry()
		if err != nil {
			slog.Warn("skipping unreadable entry row", "date", row.Date, "reason", err.Error())
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
