package cart

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// PostgresRepository stores each owner's cart as a single jsonb slot.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// EnsureSchema creates the carts table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS carts (
        "ownerId" TEXT PRIMARY KEY,
        lines jsonb NOT NULL DEFAULT '[]',
        "updatedAt" TEXT
    )`)
	return err
}

func (r *PostgresRepository) Load(ctx context.Context, ownerID string) ([]Line, error) {
	var raw sql.NullString
	err := r.db.QueryRowContext(ctx, `SELECT lines FROM carts WHERE "ownerId" = $1`, ownerID).Scan(&raw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !raw.Valid || raw.String == "" {
		return []Line{}, nil
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw.String), &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *PostgresRepository) Save(ctx context.Context, ownerID string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	blob, err := json.Marshal(lines)
	if err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = r.db.ExecContext(ctx, `INSERT INTO carts ("ownerId", lines, "updatedAt") VALUES ($1, $2, $3)
        ON CONFLICT ("ownerId") DO UPDATE SET lines = $2, "updatedAt" = $3`,
		ownerID, string(blob), now)
	return err
}

func (r *PostgresRepository) Delete(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM carts WHERE "ownerId" = $1`, ownerID)
	return err
}
