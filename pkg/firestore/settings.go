package firestore

import (
	"fmt"
	"sentinel/pkg/models"
)

const pathModerators = "moderators"

func (fs *Firestore) settingsPath() string {
	return fmt.Sprintf("%s/%s", pathModerators, fs.cfg.IRC.Nick)
}

// ModerationSettings returns the persisted settings, or nil when none exist
// yet.
func (fs *Firestore) ModerationSettings() (*models.ModerationSettings, error) {
	return get[models.ModerationSettings](fs.ctx, fs.client, fs.settingsPath())
}

func (fs *Firestore) SaveModerationSettings(settings *models.ModerationSettings) error {
	return set(fs.ctx, fs.client, fs.settingsPath(), settings)
}
