package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/quizmaster/internal/client/models"
	"github.com/dmitrijs2005/quizmaster/internal/common"
	"github.com/dmitrijs2005/quizmaster/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Load(ctx context.Context) (models.Credential, error) {
	token, err := r.get(ctx, common.MetadataKeyAccessToken)
	if err != nil {
		return models.Credential{}, err
	}
	if token == "" {
		return models.Credential{}, nil
	}
	email, err := r.get(ctx, common.MetadataKeyEmail)
	if err != nil {
		return models.Credential{}, err
	}
	return models.Credential{Token: token, Email: email}, nil
}

func (r *SQLiteRepository) get(ctx context.Context, key string) (string, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return string(value), nil
}

func (r *SQLiteRepository) Save(ctx context.Context, cred models.Credential) error {
	return dbx.WithTx(ctx, r.db, func(ctx context.Context, tx dbx.DBTX) error {
		for key, value := range map[string]string{
			common.MetadataKeyAccessToken: cred.Token,
			common.MetadataKeyEmail:       cred.Email,
		} {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO metadata (key, value) VALUES (?, ?)
				ON CONFLICT(key) DO UPDATE SET value = excluded.value
			`, key, []byte(value))
			if err != nil {
				return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key IN (?, ?)`,
		common.MetadataKeyAccessToken, common.MetadataKeyEmail)
	if err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	return nil
}
