package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/hercnav-labs/hercnav-cli/internal/adapters/driven/storage/sqlite/schema"
	"github.com/hercnav-labs/hercnav-cli/internal/core/domain"
	"github.com/hercnav-labs/hercnav-cli/internal/core/ports/driven"
	"github.com/hercnav-labs/hercnav-cli/internal/logger"
)

// BackupExtension is appended to the database filename for the
// copy-on-open backup.
const BackupExtension = ".bak"

// Options controls how the simulator database is opened.
type Options struct {
	// Create makes a fresh database (and parent directory) when the
	// file is missing. Off by default: a missing file usually means a
	// wrong path, not a new install.
	Create bool

	// Backup copies the database to a .bak sibling before opening.
	Backup bool
}

// Store wraps the simulator database file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the simulator database at path. A missing file is an error
// (domain.ErrDatabaseMissing) unless opts.Create is set. With opts.Backup,
// an existing file is first copied to path+".bak".
func Open(path string, opts Options) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: database path is empty", domain.ErrInvalidInput)
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if !exists {
		if !opts.Create {
			return nil, fmt.Errorf("%w: %s", domain.ErrDatabaseMissing, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	if exists && opts.Backup {
		if err := backupCopy(path, path+BackupExtension); err != nil {
			return nil, fmt.Errorf("backing up database: %w", err)
		}
		logger.Debug("database backed up", "path", path+BackupExtension)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}

	if err := s.ensureSchema(schema.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// WaypointStore returns a WaypointStore interface backed by this store.
func (s *Store) WaypointStore() driven.WaypointStore {
	return &waypointStore{store: s}
}

// ensureSchema executes the embedded schema files. They are all
// CREATE TABLE IF NOT EXISTS statements, so an existing simulator database
// passes through untouched.
func (s *Store) ensureSchema(fsys fs.FS) error {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading schema directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".sql") {
			continue
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading schema %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing schema %s: %w", name, err)
		}
	}
	return nil
}

// backupCopy copies src to dst, carrying the modification time over
// best-effort so the backup is recognisable as a snapshot.
func backupCopy(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	//nolint:errcheck // mtime preservation is best-effort
	_ = os.Chtimes(dst, info.ModTime(), info.ModTime())
	return nil
}

// ==================== Waypoint Store ====================

// waypointStore implements driven.WaypointStore.
type waypointStore struct {
	store *Store
}

var _ driven.WaypointStore = (*waypointStore)(nil)

// Add inserts a waypoint.
func (s *waypointStore) Add(ctx context.Context, wp domain.Waypoint) error {
	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO custom_data (name, entry_pos, lat, lon, alt)
		VALUES (?, ?, ?, ?, ?)
	`, wp.Name, wp.EntryPos, wp.Lat, wp.Lon, nullFloat(wp.AltMeters))

	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint") {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, wp.Name)
		}
		return fmt.Errorf("inserting waypoint: %w", err)
	}
	return nil
}

// Replace inserts a waypoint, deleting any existing row of the same name
// first.
func (s *waypointStore) Replace(ctx context.Context, wp domain.Waypoint) error {
	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, "DELETE FROM custom_data WHERE name = ?", wp.Name); err != nil {
		return fmt.Errorf("deleting existing waypoint: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO custom_data (name, entry_pos, lat, lon, alt)
		VALUES (?, ?, ?, ?, ?)
	`, wp.Name, wp.EntryPos, wp.Lat, wp.Lon, nullFloat(wp.AltMeters)); err != nil {
		return fmt.Errorf("inserting waypoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing replace: %w", err)
	}
	return nil
}

// GetByName retrieves a waypoint.
func (s *waypointStore) GetByName(ctx context.Context, name string) (*domain.Waypoint, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT name, entry_pos, lat, lon, alt
		FROM custom_data WHERE name = ?
	`, name)

	wp, err := scanWaypoint(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNotFound, name)
		}
		return nil, fmt.Errorf("scanning waypoint: %w", err)
	}
	return wp, nil
}

// GetByNames retrieves the waypoints whose names are present.
func (s *waypointStore) GetByNames(ctx context.Context, names []string) ([]domain.Waypoint, error) {
	if len(names) == 0 {
		return nil, nil
	}

	query := fmt.Sprintf(`
		SELECT name, entry_pos, lat, lon, alt
		FROM custom_data WHERE name IN (%s)
		ORDER BY name
	`, placeholders(len(names)))

	rows, err := s.store.db.QueryContext(ctx, query, nameArgs(names)...)
	if err != nil {
		return nil, fmt.Errorf("querying waypoints: %w", err)
	}
	defer rows.Close()

	return collectWaypoints(rows)
}

// List returns all waypoints ordered by name.
func (s *waypointStore) List(ctx context.Context) ([]domain.Waypoint, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT name, entry_pos, lat, lon, alt
		FROM custom_data
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying waypoints: %w", err)
	}
	defer rows.Close()

	return collectWaypoints(rows)
}

// Delete removes a waypoint.
func (s *waypointStore) Delete(ctx context.Context, name string) error {
	result, err := s.store.db.ExecContext(ctx, "DELETE FROM custom_data WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting waypoint: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, name)
	}
	return nil
}

// DeleteByNames removes the named waypoints, ignoring absent ones.
func (s *waypointStore) DeleteByNames(ctx context.Context, names []string) error {
	if len(names) == 0 {
		return nil
	}

	query := fmt.Sprintf("DELETE FROM custom_data WHERE name IN (%s)", placeholders(len(names)))
	if _, err := s.store.db.ExecContext(ctx, query, nameArgs(names)...); err != nil {
		return fmt.Errorf("deleting waypoints: %w", err)
	}
	return nil
}

// Count returns the number of stored waypoints.
func (s *waypointStore) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM custom_data")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting waypoints: %w", err)
	}
	return count, nil
}

// scanner abstracts sql.Row and sql.Rows for scanWaypoint.
type scanner interface {
	Scan(dest ...any) error
}

func scanWaypoint(row scanner) (*domain.Waypoint, error) {
	var wp domain.Waypoint
	var alt sql.NullFloat64
	if err := row.Scan(&wp.Name, &wp.EntryPos, &wp.Lat, &wp.Lon, &alt); err != nil {
		return nil, err
	}
	if alt.Valid {
		wp.AltMeters = &alt.Float64
	}
	return &wp, nil
}

func collectWaypoints(rows *sql.Rows) ([]domain.Waypoint, error) {
	var waypoints []domain.Waypoint //nolint:prealloc // size unknown from query
	for rows.Next() {
		wp, err := scanWaypoint(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning waypoint: %w", err)
		}
		waypoints = append(waypoints, *wp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating waypoints: %w", err)
	}
	return waypoints, nil
}

// nullFloat converts an optional altitude to its SQL representation.
func nullFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

// placeholders renders n comma-separated SQL placeholders.
func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// nameArgs widens a name slice for variadic query arguments.
func nameArgs(names []string) []any {
	args := make([]any, 0, len(names))
	for _, name := range names {
		args = append(args, name)
	}
	return args
}
