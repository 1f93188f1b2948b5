package session

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hrverify/internal/client/models"
	"github.com/dmitrijs2005/hrverify/internal/client/repositories/kv"
	"github.com/dmitrijs2005/hrverify/internal/dbx"
)

// SQLiteStore keeps the session in the kv_store table, so it survives
// restarts of the CLI but stays local to one database file.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Set(ctx context.Context, token string, role models.Role) error {
	if token == "" {
		return ErrEmptyToken
	}
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := kv.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, token); err != nil {
			return err
		}
		if role == "" {
			return repo.Delete(ctx, KeyRole)
		}
		return repo.Set(ctx, KeyRole, string(role))
	})
}

func (s *SQLiteStore) Get(ctx context.Context) (models.Session, bool, error) {
	repo := kv.NewSQLiteRepository(s.db)

	token, ok, err := repo.Get(ctx, KeyToken)
	if err != nil || !ok || token == "" {
		return models.Session{}, false, err
	}

	role, _, err := repo.Get(ctx, KeyRole)
	if err != nil {
		return models.Session{}, false, err
	}

	return models.Session{Token: token, Role: models.Role(role)}, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return kv.NewSQLiteRepository(tx).Delete(ctx, KeyToken, KeyRole)
	})
}
