package events

import (
	"slices"
	"strings"

	"sentinel/pkg/api/commands"
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/feed"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

type Handler interface {
	Handle(e *irc.Event)
}

type handler struct {
	ctx      context.Context
	cfg      *config.Config
	irc      irc.IRC
	mod      *moderation.Engine
	registry commands.CommandRegistry
}

func NewHandler(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine, fs feed.Service) Handler {
	return &handler{
		ctx:      ctx,
		cfg:      cfg,
		irc:      ircs,
		mod:      mod,
		registry: commands.LoadCommandRegistry(ctx, cfg, ircs, mod, fs),
	}
}

func (eh *handler) Handle(e *irc.Event) {
	logger := log.Logger()
	logger.Default(e, e.Raw)

	switch e.Code {
	case irc.CodePrivateMessage:
		eh.handleMessage(e)
	case irc.CodeJoin:
		eh.handleJoin(e)
	case irc.CodePart:
		eh.handlePart(e)
	case irc.CodeQuit:
		eh.handleQuit(e)
	case irc.CodeKick:
		eh.handleKick(e)
	case irc.CodeMode:
		eh.handleMode(e)
	case irc.CodeNamesReply:
		eh.handleNamesReply(e)
	}
}

// handleMessage runs the trust and rate gate, then dispatches to a matching
// command. The gate is consulted before the command lookup, so an unknown
// prefixed command still consumes the rate window. Dropped commands and
// unauthorized attempts are ignored without a reply.
func (eh *handler) handleMessage(e *irc.Event) {
	logger := log.Logger()

	if !strings.HasPrefix(e.Message(), eh.cfg.Commands.Prefix) && !e.IsPrivateMessage() {
		return
	}

	level, ok := eh.mod.Permit(e.Mask())
	if !ok {
		logger.Debugf(e, "rate limited message from %s", e.From)
		return
	}

	c := eh.registry.FindMatchingCommand(e)
	if c == nil {
		return
	}

	if c.RequiresTrust() && level != moderation.Trusted {
		logger.Warningf(e, "unauthorized attempt by %s to use %s", e.From, c.Name())
		return
	}

	c.Execute(e)
}

func (eh *handler) handleJoin(e *irc.Event) {
	channel := e.Arguments[0]

	if strings.EqualFold(e.From, eh.cfg.IRC.Nick) {
		log.Logger().Infof(e, "joined %s", channel)
		return
	}

	eh.ctx.Session().AddMember(channel, e.From)

	if eh.mod.AutoVoiceEnabled() {
		eh.mod.ScheduleVoice(e.From, channel)
	}
}

func (eh *handler) handlePart(e *irc.Event) {
	channel := e.Arguments[0]

	if strings.EqualFold(e.From, eh.cfg.IRC.Nick) {
		eh.ctx.Session().ClearChannel(channel)
		return
	}

	eh.ctx.Session().RemoveMember(channel, e.From)
	eh.mod.CancelPending(e.From, channel)
}

func (eh *handler) handleQuit(e *irc.Event) {
	eh.ctx.Session().RemoveMemberEverywhere(e.From)
	eh.mod.CancelPendingEverywhere(e.From)
}

func (eh *handler) handleKick(e *irc.Event) {
	if len(e.Arguments) < 2 {
		return
	}

	channel := e.Arguments[0]
	target := e.Arguments[1]

	if strings.EqualFold(target, eh.cfg.IRC.Nick) {
		log.Logger().Warningf(e, "kicked from %s by %s, rejoining", channel, e.From)
		eh.ctx.Session().ClearChannel(channel)
		eh.irc.Join(channel)
		return
	}

	eh.ctx.Session().RemoveMember(channel, target)
	eh.mod.CancelPending(target, channel)
}

// handleMode asks ChanServ to restore operator status whenever the bot is
// deopped. Operator status is required for every mode change the bot makes.
func (eh *handler) handleMode(e *irc.Event) {
	if len(e.Arguments) < 3 || !irc.IsChannel(e.Arguments[0]) {
		return
	}

	channel := e.Arguments[0]
	modes := e.Arguments[1]

	if strings.HasPrefix(modes, "-") && strings.Contains(modes, "o") && slices.ContainsFunc(e.Arguments[2:], func(nick string) bool {
		return strings.EqualFold(nick, eh.cfg.IRC.Nick)
	}) {
		log.Logger().Warningf(e, "deopped in %s, requesting op from %s", channel, eh.cfg.IRC.ChanServ.Recipient)
		eh.irc.RequestOp(channel, eh.cfg.IRC.Nick)
	}
}

// handleNamesReply seeds the channel roster from the NAMES list sent on join.
func (eh *handler) handleNamesReply(e *irc.Event) {
	if len(e.Arguments) < 2 {
		return
	}

	channel := e.Arguments[len(e.Arguments)-2]

	for _, nick := range strings.Fields(e.Message()) {
		if strings.EqualFold(strings.TrimLeft(nick, "@%+"), eh.cfg.IRC.Nick) {
			continue
		}
		eh.ctx.Session().AddMember(channel, nick)
	}
}
