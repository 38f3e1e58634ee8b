package migration

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

var (
	ErrChecksumMismatch = errors.New("applied migration was modified")
	ErrMissingScript    = errors.New("applied migration has no script")
)

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"

	createTableQuery = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		applied_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
		checksum VARCHAR(64) NOT NULL
	)`
	appliedQuery = `SELECT version, name, checksum, applied_at FROM schema_migrations ORDER BY version`
	recordQuery  = `INSERT INTO schema_migrations (version, name, checksum) VALUES ($1, $2, $3)`
	forgetQuery  = `DELETE FROM schema_migrations WHERE version = $1`
)

// Migration is one numbered pair of up and down scripts, read from
// NNN_name.up.sql and NNN_name.down.sql.
type Migration struct {
	Version int
	Name    string
	UpSQL   string
	DownSQL string
}

// Checksum is the hex sha256 of the up script.
func (m Migration) Checksum() string {
	sum := sha256.Sum256([]byte(m.UpSQL))
	return hex.EncodeToString(sum[:])
}

func (m Migration) String() string {
	return fmt.Sprintf("%03d_%s", m.Version, m.Name)
}

// State is a migration script next to its row in schema_migrations.
type State struct {
	Migration
	Applied   bool
	AppliedAt time.Time
	// Modified is set when the script changed after it was applied.
	Modified bool
}

type appliedRow struct {
	version   int
	name      string
	checksum  string
	appliedAt time.Time
}

// Migrator applies the scripts of fsys to db.
type Migrator struct {
	db     *sql.DB
	logger *slog.Logger
	fsys   fs.FS
}

func NewMigrator(db *sql.DB, logger *slog.Logger, fsys fs.FS) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger.With("component", "migrator"),
		fsys:   fsys,
	}
}

// Up applies every pending migration in version order and returns how many
// ran. It refuses to run when an applied script was modified.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	states, err := m.Status(ctx)
	if err != nil {
		return 0, err
	}

	for _, state := range states {
		if state.Modified {
			return 0, fmt.Errorf("migration %s: %w", state.Migration, ErrChecksumMismatch)
		}
	}

	applied := 0
	for _, state := range states {
		if state.Applied {
			continue
		}

		mig := state.Migration
		err := m.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, mig.UpSQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, recordQuery, mig.Version, mig.Name, mig.Checksum())
			return err
		})
		if err != nil {
			return applied, fmt.Errorf("apply migration %s: %w", mig, err)
		}

		m.logger.Info("Applied migration", "version", mig.Version, "name", mig.Name)
		applied++
	}
	return applied, nil
}

// Down rolls back up to steps applied migrations, newest first, and returns
// how many were rolled back.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}

	scripts, err := m.load()
	if err != nil {
		return 0, err
	}
	rows, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	byVersion := make(map[int]Migration, len(scripts))
	for _, mig := range scripts {
		byVersion[mig.Version] = mig
	}

	done := 0
	for i := len(rows) - 1; i >= 0 && done < steps; i-- {
		mig, ok := byVersion[rows[i].version]
		if !ok {
			return done, fmt.Errorf("migration %03d_%s: %w", rows[i].version, rows[i].name, ErrMissingScript)
		}

		err := m.inTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, mig.DownSQL); err != nil {
				return err
			}
			_, err := tx.ExecContext(ctx, forgetQuery, mig.Version)
			return err
		})
		if err != nil {
			return done, fmt.Errorf("roll back migration %s: %w", mig, err)
		}

		m.logger.Info("Rolled back migration", "version", mig.Version, "name", mig.Name)
		done++
	}

	if done == 0 {
		m.logger.Info("No migrations to roll back")
	}
	return done, nil
}

// Status pairs every script with its applied row.
func (m *Migrator) Status(ctx context.Context) ([]State, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, err
	}

	scripts, err := m.load()
	if err != nil {
		return nil, err
	}
	rows, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	byVersion := make(map[int]appliedRow, len(rows))
	for _, row := range rows {
		byVersion[row.version] = row
	}

	states := make([]State, 0, len(scripts))
	for _, mig := range scripts {
		state := State{Migration: mig}
		if row, ok := byVersion[mig.Version]; ok {
			state.Applied = true
			state.AppliedAt = row.appliedAt
			state.Modified = row.checksum != mig.Checksum()
		}
		states = append(states, state)
	}
	return states, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}
	return nil
}

// load reads every *.up.sql below the root of fsys with its down script.
func (m *Migrator) load() ([]Migration, error) {
	var migrations []Migration
	seen := make(map[int]string)

	err := fs.WalkDir(m.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, upSuffix) {
			return nil
		}

		base := strings.TrimSuffix(path.Base(p), upSuffix)
		prefix, name, ok := strings.Cut(base, "_")
		version, convErr := strconv.Atoi(prefix)
		if !ok || name == "" || convErr != nil {
			m.logger.Warn("Skipping migration with invalid filename", "path", p)
			return nil
		}
		if other, dup := seen[version]; dup {
			return fmt.Errorf("migration version %d used by %s and %s", version, other, p)
		}
		seen[version] = p

		up, err := fs.ReadFile(m.fsys, p)
		if err != nil {
			return err
		}
		down, err := fs.ReadFile(m.fsys, strings.TrimSuffix(p, upSuffix)+downSuffix)
		if err != nil {
			return err
		}

		migrations = append(migrations, Migration{
			Version: version,
			Name:    name,
			UpSQL:   string(up),
			DownSQL: string(down),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load migrations: %w", err)
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})
	return migrations, nil
}

func (m *Migrator) applied(ctx context.Context) ([]appliedRow, error) {
	rows, err := m.db.QueryContext(ctx, appliedQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query applied migrations: %w", err)
	}
	defer rows.Close()

	var applied []appliedRow
	for rows.Next() {
		var row appliedRow
		if err := rows.Scan(&row.version, &row.name, &row.checksum, &row.appliedAt); err != nil {
			return nil, fmt.Errorf("failed to scan migration row: %w", err)
		}
		applied = append(applied, row)
	}
	return applied, rows.Err()
}

func (m *Migrator) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
