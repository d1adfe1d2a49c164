package commands

import (
	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const AutoVoiceCommandName = "auto_voice"

// AutoVoiceCommand flips the process-wide flag gating whether new arrivals
// are scheduled for voice. Re-enabling it also resumes a sweep paused by a
// bulk command.
type AutoVoiceCommand struct {
	*commandStub
}

func NewAutoVoiceCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &AutoVoiceCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *AutoVoiceCommand) Name() string {
	return AutoVoiceCommandName
}

func (c *AutoVoiceCommand) Description() string {
	return "Toggles automatic voicing of new arrivals."
}

func (c *AutoVoiceCommand) Triggers() []string {
	return []string{"voice"}
}

func (c *AutoVoiceCommand) Usages() []string {
	return []string{"%s"}
}

func (c *AutoVoiceCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *AutoVoiceCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 0)
}

func (c *AutoVoiceCommand) Execute(e *irc.Event) {
	enabled := c.mod.ToggleAutoVoice()

	log.Logger().Infof(e, "⚡ %s [%s/%s] enabled=%t", c.Name(), e.From, e.ReplyTarget(), enabled)
	c.Replyf(e, "Set auto-voicing to %t.", enabled)
}
