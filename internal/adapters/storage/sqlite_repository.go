package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/stoplight/internal/logging"
	"github.com/renato0307/stoplight/internal/ports"
)

const maxRetries = 5

// SQLiteRepository implements ports.PreferencesRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.PreferencesRepository = (*SQLiteRepository)(nil)

// NewSQLiteRepository opens (creating if needed) the preferences database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:      newGormLogger(),
		NowFunc:     func() time.Time { return time.Now().UTC() },
		PrepareStmt: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets the SSH server and a local run share the store
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&PreferenceModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate preferences schema: %w", err)
	}

	logging.Logger.Debug("Preferences database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements PreferencesReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var pref PreferenceModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where(&PreferenceModel{Key: key}).First(&pref).Error
	}, maxRetries)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", key, err)
	}
	return pref.Value, true, nil
}

// SetMany implements PreferencesWriter.SetMany
func (r *SQLiteRepository) SetMany(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	models := make([]PreferenceModel, 0, len(values))
	for k, v := range values {
		models = append(models, PreferenceModel{Key: k, Value: v})
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&models).Error
		})
	}, maxRetries)
}

// withRetry retries fn while SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
