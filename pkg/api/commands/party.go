package commands

import (
	"strconv"

	"sentinel/pkg/api/context"
	"sentinel/pkg/api/feed"
	"sentinel/pkg/api/irc"
	"sentinel/pkg/api/style"
	"sentinel/pkg/config"
	"sentinel/pkg/log"
	"sentinel/pkg/models"
	"sentinel/pkg/moderation"
)

const PartyCommandName = "party"

const partyMaxSlots = 6

// PartyCommand places a member in one of the six party slots of the feed
// document.
type PartyCommand struct {
	*commandStub
	feed feed.Service
}

func NewPartyCommand(ctx context.Context, cfg *config.Config, ircs irc.IRC, mod *moderation.Engine, fs feed.Service) Command {
	return &PartyCommand{
		commandStub: newCommandStub(ctx, cfg, ircs, mod, true),
		feed:        fs,
	}
}

func (c *PartyCommand) Name() string {
	return PartyCommandName
}

func (c *PartyCommand) Description() string {
	return "Sets the party member in the specified slot."
}

func (c *PartyCommand) Triggers() []string {
	return []string{"party"}
}

func (c *PartyCommand) Usages() []string {
	return []string{"%s <slot> <species> <level> [nickname]"}
}

func (c *PartyCommand) AllowedInPrivateMessages() bool {
	return true
}

func (c *PartyCommand) CanExecute(e *irc.Event) bool {
	return c.isCommandEventValid(c, e, 3)
}

func (c *PartyCommand) Execute(e *irc.Event) {
	tokens := Tokens(e.Message())

	logger := log.Logger()
	logger.Infof(e, "⚡ %s [%s/%s] %v", c.Name(), e.From, e.ReplyTarget(), tokens[1:])

	slot, err := strconv.Atoi(tokens[1])
	if err != nil || slot < 1 || slot > partyMaxSlots {
		c.Replyf(e, "Invalid slot, must be between 1 and %d.", partyMaxSlots)
		return
	}

	species := tokens[2]

	level, err := strconv.Atoi(tokens[3])
	if err != nil || level < 1 {
		c.Replyf(e, "Invalid level, must be a whole number of at least 1.")
		return
	}

	member := models.FeedMember{
		Species: species,
		Name:    species,
		Level:   level,
	}
	if len(tokens) > 4 {
		member.Nickname = tokens[4]
	}

	doc, err := c.feed.Fetch()
	if err != nil {
		logger.Errorf(e, "error fetching feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	doc.SetPartyMember(slot, member)

	if err = c.feed.Store(doc, e.From); err != nil {
		logger.Errorf(e, "error storing feed document, %s", err)
		c.Replyf(e, "Unable to update the feed right now.")
		return
	}

	c.Replyf(e, "Set party slot %d to %s (level %d).", slot, style.Bold(species), level)
}
