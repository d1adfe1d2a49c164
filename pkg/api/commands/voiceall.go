package commands

import (
	"strings"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/moderation"
)

const VoiceAllCommandName = "voiceall"

// modeBatchSize is the number of nicks changed per MODE line.
const modeBatchSize = 4

// VoiceAllCommand voices every current member of the channel in batched mode
// changes. The sweep is paused and the queue cleared first so the timer
// doesn't race the batch; auto-voice toggling resumes the sweep.
type VoiceAllCommand struct {
	*commandStub
}

func NewVoiceAllCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine) Command {
	return &VoiceAllCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
	}
}

func (c *VoiceAllCommand) Name() string {
	return VoiceAllCommandName
}

func (c *VoiceAllCommand) Description() string {
	return "Voices every member of the current channel."
}

func (c *VoiceAllCommand) Triggers() []string {
	return []string{"voiceall"}
}

func (c *VoiceAllCommand) Usages() []string {
	return []string{"%s"}
}

func (c *VoiceAllCommand) AllowedInPrivateMessages() bool {
	return false
}

func (c *VoiceAllCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 0)
}

func (c *VoiceAllCommand) Execute(e *irc.Event) {
	channel := e.ReplyTarget()

	log.Logger().Infof(e, "⚡ %s [%s/%s]", c.Name(), e.From, channel)

	c.mod.PauseSweep()
	c.mod.ClearPending()

	changeModeInBatches(c.irc, c.ctx.Session().Members(channel), channel, "+")
}

// changeModeInBatches issues one MODE line per modeBatchSize nicks, e.g.
// MODE #chan +vvvv a b c d.
func changeModeInBatches(ircs irc.IRC, nicks []string, channel, direction string) {
	for i := 0; i < len(nicks); i += modeBatchSize {
		batch := nicks[i:min(i+modeBatchSize, len(nicks))]
		modes := direction + strings.Repeat("v", len(batch))
		ircs.Mode(channel, append([]string{modes}, batch...)...)
	}
}
