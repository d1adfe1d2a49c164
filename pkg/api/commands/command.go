package commands

import (
	"fmt"
	"strings"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/api/style"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

type Command interface {
	Name() string
	Description() string
	Triggers() []string
	Usages() []string
	RequiresTrust() bool
	AllowedInPrivateMessages() bool
	CanExecute(e *irc.Event) bool
	Execute(e *irc.Event)
	Replyf(e *irc.Event, message string, args ...any)
}

const inputMaxLength = 512

type commandStub struct {
	ctx           context.Context
	cfg           *config.Config
	irc           irc.IRC
	mod           *moderation.Engine
	requiresTrust bool
}

func newCommandStub(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine, requiresTrust bool) *commandStub {
	return &commandStub{
		ctx:           ctx,
		cfg:           cfg,
		irc:           ircs,
		mod:           mod,
		requiresTrust: requiresTrust,
	}
}

func (cs *commandStub) RequiresTrust() bool {
	return cs.requiresTrust
}

func (cs *commandStub) isTriggerValid(c Command, e *irc.Event, trigger string) bool {
	for _, t := range c.Triggers() {
		if strings.EqualFold(strings.TrimPrefix(trigger, cs.cfg.Commands.Prefix), t) && (strings.HasPrefix(trigger, cs.cfg.Commands.Prefix) || e.IsPrivateMessage()) {
			return true
		}
	}

	return false
}

// isCommandEventValid checks the trigger and argument arity. A matching
// trigger with too few arguments gets a usage reply.
func (cs *commandStub) isCommandEventValid(c Command, e *irc.Event, minBodyTokens int) bool {
	tokens := Tokens(e.Message())
	if len(tokens) == 0 || !cs.isTriggerValid(c, e, tokens[0]) {
		return false
	}

	if !c.AllowedInPrivateMessages() && e.IsPrivateMessage() {
		return false
	}

	if minBodyTokens > 0 && len(tokens) < minBodyTokens+1 {
		cs.Replyf(e, "Invalid number of arguments for %s. Usage: %s", style.Bold(c.Triggers()[0]), style.Italics(cs.usage(c)))
		return false
	}

	return true
}

// isCommandEventValidQuiet is the same check without the usage reply. The
// legacy set commands no-op silently on bad input.
func (cs *commandStub) isCommandEventValidQuiet(c Command, e *irc.Event, minBodyTokens int) bool {
	tokens := Tokens(e.Message())
	if len(tokens) == 0 || !cs.isTriggerValid(c, e, tokens[0]) {
		return false
	}

	if !c.AllowedInPrivateMessages() && e.IsPrivateMessage() {
		return false
	}

	return minBodyTokens == 0 || len(tokens) >= minBodyTokens+1
}

func (cs *commandStub) usage(c Command) string {
	if len(c.Usages()) == 0 {
		return cs.cfg.Commands.Prefix + c.Triggers()[0]
	}
	return fmt.Sprintf(c.Usages()[0], cs.cfg.Commands.Prefix+c.Triggers()[0])
}

func (cs *commandStub) Replyf(e *irc.Event, message string, args ...any) {
	log.Logger().Infof(e, "replying: %s", fmt.Sprintf(message, args...))

	if !e.IsPrivateMessage() {
		message = fmt.Sprintf("%s: %s", e.From, message)
	}

	if len(args) == 0 {
		cs.irc.SendMessage(e.ReplyTarget(), message)
		return
	}

	cs.irc.SendMessage(e.ReplyTarget(), fmt.Sprintf(message, args...))
}

// sanitize cleans the input string
func sanitize(input string) string {
	sanitized := strings.TrimSpace(input)
	if len(sanitized) > inputMaxLength {
		return sanitized[:inputMaxLength]
	}
	return sanitized
}

// Tokens splits the input into sanitized tokens. Double-quoted runs form a
// single token with the quotes removed.
func Tokens(input string) []string {
	input = sanitize(input)

	tokens := make([]string, 0)
	var current strings.Builder
	inQuotes := false

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ' ' && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
