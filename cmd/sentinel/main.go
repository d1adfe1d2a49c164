package main

import (
	"os"

	"github.com/jonboulle/clockwork"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/events"
	"sentinel/pkg/api/feed"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/firestore"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
	"sentinel/pkg/queue"
)

const defaultConfigFilename = "config.yaml"

func main() {
	ctx := context.NewContext()

	configFilename := defaultConfigFilename
	if len(os.Args) > 1 {
		configFilename = os.Args[1]
	}

	cfg, err := config.ReadConfig(configFilename)
	if err != nil {
		panic(err)
	}

	initializeLogger(ctx, cfg)
	defer log.Logger().Close()

	initializeFirestore(ctx, cfg)
	defer firestore.Get().Close()

	initializeQueue(ctx, cfg)
	defer queue.Get().Close()

	settings := loadModerationSettings(cfg)
	cfg.IRC.Channels = mergeChannels(cfg.IRC.Channels, settings.Channels)

	mod := moderation.NewEngine(clockwork.NewRealClock(), cfg.IRC.Nick, settings, firestore.Get().SaveModerationSettings)

	svc := irc.NewIRC()
	sweeper := moderation.NewSweeper(mod, svc)
	defer sweeper.Stop()

	err = svc.Connect(cfg, func() {
		sweeper.Start()
	})
	if err != nil {
		panic(err)
	}

	ech := make(chan *irc.Event)
	go svc.Listen(ech)

	h := events.NewHandler(ctx, cfg, svc, mod, feed.NewService())
	for {
		e := <-ech
		h.Handle(e)
	}
}
