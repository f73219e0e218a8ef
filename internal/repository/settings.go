package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/kms-sarl/site-server-go/internal/database"
	"github.com/kms-sarl/site-server-go/internal/model"
)

type SettingsRepository interface {
	FindAll(ctx context.Context) ([]model.SiteSetting, error)
	// UpsertMany writes every key in one transaction so a partially saved
	// settings form can never be observed.
	UpsertMany(ctx context.Context, settings map[string]string) error
}

type settingsRepo struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) FindAll(ctx context.Context) ([]model.SiteSetting, error) {
	settings := []model.SiteSetting{}
	err := r.db.SelectContext(ctx, &settings, `
		SELECT * FROM site_settings ORDER BY setting_key ASC
	`)
	return settings, err
}

func (r *settingsRepo) UpsertMany(ctx context.Context, settings map[string]string) error {
	return r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		for key, value := range settings {
			if err := upsertSetting(ctx, tx, key, value); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertSetting(ctx context.Context, q database.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO site_settings (setting_key, setting_value)
		VALUES ($1, $2)
		ON CONFLICT (setting_key) DO UPDATE SET
			setting_value = EXCLUDED.setting_value,
			updated_at = NOW()
	`, key, value)
	return err
}
