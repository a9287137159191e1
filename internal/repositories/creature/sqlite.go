package creature

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	"github.com/KirkDiggler/rpg-statblock/internal/pkg/sqlitemigrate"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SQLiteRepository stores records in a single SQLite table
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

// OpenSQLite opens the database at path and applies pending migrations
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to ping sqlite db")
	}
	if err := sqlitemigrate.Apply(ctx, db, migrations, "migrations"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Create implements Repository
func (r *SQLiteRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO creatures (id, name, payload, created_at) VALUES (?, ?, ?, ?) ON CONFLICT (id) DO NOTHING`,
		input.Record.ID, input.Record.Name(), string(data), input.Record.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create creature")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create creature")
	}
	if n == 0 {
		return nil, errors.AlreadyExistsf("creature with ID %s already exists", input.Record.ID)
	}

	return &CreateOutput{Record: input.Record}, nil
}

// Get implements Repository
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	var payload string
	err := r.db.QueryRowContext(ctx, `SELECT payload FROM creatures WHERE id = ?`, input.ID).Scan(&payload)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("creature with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	record, err := unmarshalRecord(payload)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

// List implements Repository
func (r *SQLiteRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM creatures`).Scan(&total); err != nil {
		return nil, errors.Wrapf(err, "failed to count creatures")
	}

	// a negative LIMIT is unbounded in SQLite
	limit := -1
	if input.Limit > 0 {
		limit = input.Limit
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT payload FROM creatures ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`,
		limit, max(input.Offset, 0),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list creatures")
	}
	defer func() { _ = rows.Close() }()

	var records []*creature.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Wrapf(err, "failed to scan creature")
		}
		record, err := unmarshalRecord(payload)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list creatures")
	}

	return &ListOutput{Records: records, Total: total}, nil
}

// Delete implements Repository
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM creatures WHERE id = ?`, input.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete creature")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete creature")
	}
	if n == 0 {
		return nil, errors.NotFoundf("creature with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
