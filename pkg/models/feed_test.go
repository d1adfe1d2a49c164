package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFeedDocumentSetItem(t *testing.T) {
	d := NewFeedDocument()

	d.SetItem("Potion", 3)
	d.SetItem("Antidote", 1)
	d.SetItem("Potion", 5)

	assert.Equal(t, []FeedItem{{Name: "Potion", Count: 5}, {Name: "Antidote", Count: 1}}, d.Inventory)

	d.SetItem("Potion", 0)
	assert.Equal(t, []FeedItem{{Name: "Antidote", Count: 1}}, d.Inventory)

	d.SetItem("Revive", 0)
	assert.Len(t, d.Inventory, 1, "setting an absent item to zero is a no-op")
}

func TestFeedDocumentAddBadge(t *testing.T) {
	d := NewFeedDocument()

	assert.True(t, d.AddBadge("Boulder Badge"))
	assert.False(t, d.AddBadge("Boulder Badge"))
	assert.Equal(t, []string{"Boulder Badge"}, d.Badges)
}

func TestFeedDocumentSetPartyMemberGrowsParty(t *testing.T) {
	d := NewFeedDocument()

	d.SetPartyMember(3, FeedMember{Species: "Pidgey", Name: "Pidgey", Level: 12})

	assert.Len(t, d.Party, 3)
	assert.Equal(t, "Pidgey", d.Party[2].Species)
	assert.Empty(t, d.Party[0].Species)

	d.SetPartyMember(1, FeedMember{Species: "Charmander", Name: "Charmander", Level: 10})
	assert.Len(t, d.Party, 3)
	assert.Equal(t, "Charmander", d.Party[0].Species)
}

func TestFeedDocumentAddUpdate(t *testing.T) {
	d := NewFeedDocument()
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	d.AddUpdate("badge", "Badge earned", "Boulder Badge", at)

	assert.Equal(t, []FeedUpdate{{
		Time:        at.Unix(),
		Title:       "Badge earned",
		Category:    "badge",
		Description: "Boulder Badge",
	}}, d.Updates)
}
