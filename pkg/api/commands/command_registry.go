package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/feed"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/moderation"
)

type CommandRegistry interface {
	Command(name string) Command
	Commands() map[string]Command
	FindMatchingCommand(e *irc.Event) Command
	RegisterCommands()
}

type commandRegistry struct {
	ctx      context.Context
	cfg      *config.Config
	irc      irc.IRC
	mod      *moderation.Engine
	feed     feed.Service
	commands map[string]Command
}

func LoadCommandRegistry(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine, fs feed.Service) CommandRegistry {
	cr := &commandRegistry{
		ctx:      ctx,
		cfg:      cfg,
		irc:      ircs,
		mod:      mod,
		feed:     fs,
		commands: make(map[string]Command),
	}

	cr.RegisterCommands()
	return cr
}

func (cr *commandRegistry) Command(name string) Command {
	if c, ok := cr.commands[name]; ok {
		return c
	}

	return nil
}

func (cr *commandRegistry) Commands() map[string]Command {
	return cr.commands
}

// FindMatchingCommand returns the first command whose trigger and arguments
// accept the event, or nil if none do.
func (cr *commandRegistry) FindMatchingCommand(e *irc.Event) Command {
	for _, c := range cr.commands {
		if c.CanExecute(e) {
			return c
		}
	}

	return nil
}

func (cr *commandRegistry) RegisterCommands() {
	cr.commands[PingCommandName] = NewPingCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[AutoVoiceCommandName] = NewAutoVoiceCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[WaitCommandName] = NewWaitCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[VoteLimitCommandName] = NewVoteLimitCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[JoinCommandName] = NewJoinCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[PartCommandName] = NewPartCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[MuteCommandName] = NewMuteCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[VoteMuteCommandName] = NewVoteMuteCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[QueueCommandName] = NewQueueCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[VoiceAllCommandName] = NewVoiceAllCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[DevoiceAllCommandName] = NewDevoiceAllCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)
	cr.commands[RestartCommandName] = NewRestartCommand(cr.ctx, cr.cfg, cr.irc, cr.mod)

	cr.commands[BadgeCommandName] = NewBadgeCommand(cr.ctx, cr.cfg, cr.irc, cr.mod, cr.feed)
	cr.commands[ItemCommandName] = NewItemCommand(cr.ctx, cr.cfg, cr.irc, cr.mod, cr.feed)
	cr.commands[PartyCommandName] = NewPartyCommand(cr.ctx, cr.cfg, cr.irc, cr.mod, cr.feed)
	cr.commands[UpdateCommandName] = NewUpdateCommand(cr.ctx, cr.cfg, cr.irc, cr.mod, cr.feed)
}
