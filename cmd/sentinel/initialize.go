package main

import (
	"fmt"
	"strings"

	"sentinel/pkg/api/context"
	"sentinel/pkg/config"
	"sentinel/pkg/firestore"
	"sentinel/pkg/log"
	"sentinel/pkg/models"
	"sentinel/pkg/queue"
)

func initializeLogger(ctx context.Context, cfg *config.Config) {
	if len(cfg.GoogleCloud.ProjectID) == 0 {
		log.InitializeConsoleLogger()
		return
	}

	_, err := log.InitializeGCPLogger(ctx, cfg, cfg.IRC.Nick)
	if err != nil {
		panic(fmt.Errorf("error initializing logger, %s", err))
	}
}

func initializeFirestore(ctx context.Context, cfg *config.Config) {
	_, err := firestore.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing firestore, %s", err))
	}
}

func initializeQueue(ctx context.Context, cfg *config.Config) {
	_, err := queue.Initialize(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("error initializing queue, %s", err))
	}
}

// loadModerationSettings returns the persisted settings, creating and storing
// a document from the configured defaults on first run.
func loadModerationSettings(cfg *config.Config) *models.ModerationSettings {
	logger := log.Logger()

	settings, err := firestore.Get().ModerationSettings()
	if err != nil {
		panic(fmt.Errorf("error loading moderation settings, %s", err))
	}

	if settings != nil {
		logger.Rawf(log.Debug, "loaded moderation settings, %d trusted masks, %d channels", len(settings.TrustedMasks), len(settings.Channels))
		return settings
	}

	settings = models.NewModerationSettings(
		cfg.Moderation.WaitSeconds,
		cfg.Moderation.VoteThreshold,
		cfg.Moderation.TrustedMasks,
		cfg.IRC.Channels,
		cfg.Moderation.AutoVoice,
	)

	if err = firestore.Get().SaveModerationSettings(settings); err != nil {
		panic(fmt.Errorf("error saving moderation settings, %s", err))
	}

	logger.Rawf(log.Debug, "created moderation settings from configured defaults")
	return settings
}

// mergeChannels combines the configured channels with the persisted channel
// list, dropping duplicates.
func mergeChannels(configured, persisted []string) []string {
	merged := make([]string, 0, len(configured)+len(persisted))
	seen := make(map[string]bool)

	for _, channel := range append(append([]string{}, configured...), persisted...) {
		key := strings.ToLower(channel)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, channel)
	}

	return merged
}
