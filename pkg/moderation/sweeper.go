package moderation

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"sentinel/pkg/log"
)

const sweepInterval = 1 * time.Second

// Voicer is the one transport capability the sweep needs.
type Voicer interface {
	Voice(channel, nick string)
}

// Sweeper promotes due queue entries into voice grants on a fixed tick.
// It is started once the bot has joined its initial channels.
type Sweeper struct {
	engine *Engine
	voicer Voicer
	clock  clockwork.Clock

	once sync.Once
	stop chan struct{}
}

func NewSweeper(engine *Engine, voicer Voicer) *Sweeper {
	return &Sweeper{
		engine: engine,
		voicer: voicer,
		clock:  engine.clock,
		stop:   make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go func() {
		ticker := s.clock.NewTicker(sweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.Chan():
				s.sweep()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	s.once.Do(func() {
		close(s.stop)
	})
}

func (s *Sweeper) sweep() {
	for _, action := range s.engine.SweepDue() {
		s.voicer.Voice(action.Channel, action.Nick)
		log.Logger().Debugf(nil, "voiced %s in %s", action.Nick, action.Channel)
	}
}
