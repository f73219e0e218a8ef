package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kms-sarl/site-server-go/internal/model"
	redisclient "github.com/kms-sarl/site-server-go/internal/redis"
	"github.com/kms-sarl/site-server-go/internal/repository"
)

const settingsCacheTTL = 5 * time.Minute

// SettingsService reads and writes the site-wide key/value settings. Reads
// are served from a redis cache when one is configured; the public site hits
// this on every page load. A nil cache disables caching.
type SettingsService struct {
	repo  repository.SettingsRepository
	cache *redisclient.Client
}

func NewSettingsService(repo repository.SettingsRepository, cache *redisclient.Client) *SettingsService {
	return &SettingsService{repo: repo, cache: cache}
}

// GetAll returns the settings as a flat key/value map.
func (s *SettingsService) GetAll(ctx context.Context) (map[string]string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, redisclient.SettingsCacheKey).Result()
		if err == nil {
			var settings map[string]string
			if err := json.Unmarshal([]byte(cached), &settings); err == nil {
				return settings, nil
			}
			// Unreadable cache entry; fall through to the database.
		}
	}

	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(rows))
	for _, row := range rows {
		settings[row.Key] = row.Value
	}

	if s.cache != nil {
		data, err := json.Marshal(settings)
		if err == nil {
			if err := s.cache.Set(ctx, redisclient.SettingsCacheKey, data, settingsCacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache site settings")
			}
		}
	}

	return settings, nil
}

// Update writes every key in settings in one transaction and invalidates the
// cache.
func (s *SettingsService) Update(ctx context.Context, settings map[string]string) error {
	if err := s.repo.UpsertMany(ctx, settings); err != nil {
		return err
	}

	if s.cache != nil {
		if err := s.cache.Del(ctx, redisclient.SettingsCacheKey).Err(); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate settings cache")
		}
	}

	return nil
}

// ListRows returns the raw setting rows with timestamps, for the back-office.
func (s *SettingsService) ListRows(ctx context.Context) ([]model.SiteSetting, error) {
	return s.repo.FindAll(ctx)
}
