package repository

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"gitlab.com/open-soft/go-crypto-dashboard/src/utils"
)

type MySQLStorage struct {
	DB          *sql.DB
	TimeService utils.TimeServiceInterface
}

func (m *MySQLStorage) EnsureSchema(ctx context.Context) error {
	_, err := m.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS local_storage (
			storage_key VARCHAR(255) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)
	`)

	return errors.Wrap(err, "create local_storage")
}

func (m *MySQLStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := m.DB.QueryRowContext(ctx, `
		SELECT
			ls.value as Value
		FROM local_storage ls WHERE ls.storage_key = ?
	`, key).Scan(
		&value,
	)

	if err == sql.ErrNoRows {
		return "", false, nil
	}

	if err != nil {
		return "", false, errors.Wrap(err, "select local_storage")
	}

	return value, true, nil
}

func (m *MySQLStorage) SetItem(ctx context.Context, key string, value string) error {
	now := m.TimeService.Now()
	_, err := m.DB.ExecContext(ctx, `
		INSERT INTO local_storage SET
			storage_key = ?,
			value = ?,
			created_at = ?,
			updated_at = ?
		ON DUPLICATE KEY UPDATE
			value = ?,
			updated_at = ?
	`,
		key,
		value,
		now,
		now,
		value,
		now,
	)

	if err != nil {
		return errors.Wrap(err, "upsert local_storage")
	}

	return nil
}
