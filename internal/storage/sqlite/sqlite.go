// Package sqlite provides a SQLite-backed implementation of the storage.Store interface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// dsn turns a file path into a connection string that enables foreign keys
// and waits on a locked database on every pooled connection.
func dsn(dbPath string) string {
	return "file:" + dbPath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	if err := runMigrations(dsn(dbPath)); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateScope persists a new scope and its roster.
func (s *SQLiteStore) CreateScope(ctx context.Context, scope *models.Scope) error {
	// Generate IDs if not set
	if scope.ID == "" {
		scope.ID = uuid.New().String()
	}
	if scope.CreatedAt == 0 {
		scope.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO scopes (id, name, kind, currency, created_at) VALUES (?, ?, ?, ?, ?)",
		scope.ID, scope.Name, string(scope.Kind), scope.Currency, scope.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert scope: %w", err)
	}

	if err := insertMembers(ctx, tx, scope.ID, 0, scope.Members); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// AddMembers appends members after the scope's current roster.
func (s *SQLiteStore) AddMembers(ctx context.Context, scopeID string, members []models.Member) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := scopeExists(ctx, tx, scopeID); err != nil {
		return err
	}

	var next int
	err = tx.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(position) + 1, 0) FROM members WHERE scope_id = ?",
		scopeID,
	).Scan(&next)
	if err != nil {
		return fmt.Errorf("failed to get roster size: %w", err)
	}

	if err := insertMembers(ctx, tx, scopeID, next, members); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func insertMembers(ctx context.Context, tx *sql.Tx, scopeID string, start int, members []models.Member) error {
	for i, m := range members {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO members (scope_id, id, display_name, user_id, position) VALUES (?, ?, ?, ?, ?)",
			scopeID, m.ID, m.DisplayName, m.UserID, start+i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert member %s: %w", m.ID, err)
		}
	}
	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func scopeExists(ctx context.Context, q queryer, scopeID string) error {
	var one int
	err := q.QueryRowContext(ctx, "SELECT 1 FROM scopes WHERE id = ?", scopeID).Scan(&one)
	if err == sql.ErrNoRows {
		return fmt.Errorf("scope %w: %s", storage.ErrNotFound, scopeID)
	}
	if err != nil {
		return fmt.Errorf("failed to get scope: %w", err)
	}
	return nil
}

// GetScope retrieves a scope by ID, including its roster in join order.
func (s *SQLiteStore) GetScope(ctx context.Context, scopeID string) (*models.Scope, error) {
	return getScope(ctx, s.db, scopeID)
}

func getScope(ctx context.Context, q queryer, scopeID string) (*models.Scope, error) {
	scope := &models.Scope{}
	var kind string
	err := q.QueryRowContext(ctx,
		"SELECT id, name, kind, currency, created_at FROM scopes WHERE id = ?",
		scopeID,
	).Scan(&scope.ID, &scope.Name, &kind, &scope.Currency, &scope.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("scope %w: %s", storage.ErrNotFound, scopeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scope: %w", err)
	}
	scope.Kind = models.ScopeKind(kind)

	members, err := getMembers(ctx, q, scopeID)
	if err != nil {
		return nil, err
	}
	scope.Members = members
	return scope, nil
}

func getMembers(ctx context.Context, q queryer, scopeID string) ([]models.Member, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT id, display_name, user_id FROM members WHERE scope_id = ? ORDER BY position",
		scopeID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.DisplayName, &m.UserID); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}
	return members, nil
}

// ListScopes returns the scopes userID belongs to, or all scopes when userID
// is empty, oldest first.
func (s *SQLiteStore) ListScopes(ctx context.Context, userID string) ([]*models.Scope, error) {
	query := "SELECT id, created_at FROM scopes ORDER BY created_at, id"
	args := []any{}
	if userID != "" {
		query = `SELECT DISTINCT s.id, s.created_at FROM scopes s
			JOIN members m ON m.scope_id = s.id
			WHERE m.user_id = ?
			ORDER BY s.created_at, s.id`
		args = append(args, userID)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scopes: %w", err)
	}
	var ids []string
	for rows.Next() {
		var id string
		var createdAt int64
		if err := rows.Scan(&id, &createdAt); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan scope: %w", err)
		}
		ids = append(ids, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scopes: %w", err)
	}

	scopes := make([]*models.Scope, 0, len(ids))
	for _, id := range ids {
		scope, err := s.GetScope(ctx, id)
		if err != nil {
			return nil, err
		}
		scopes = append(scopes, scope)
	}
	return scopes, nil
}
