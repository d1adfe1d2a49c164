package models

import (
	"encoding/json"
	"time"
)

// FeedDocument is the externally-synced live document describing the run:
// current party, inventory, badges and a running log of update entries. It is
// versioned; every operator mutation bumps Version before storing.
type FeedDocument struct {
	Version   int          `firestore:"version" json:"version"`
	Balance   int          `firestore:"balance" json:"balance"`
	Goal      string       `firestore:"goal" json:"goal"`
	Badges    []string     `firestore:"badges" json:"badges"`
	Inventory []FeedItem   `firestore:"inventory" json:"inventory"`
	Party     []FeedMember `firestore:"party" json:"party"`
	Updates   []FeedUpdate `firestore:"updates" json:"updates"`
}

type FeedItem struct {
	Name  string `firestore:"name" json:"name"`
	Count int    `firestore:"count" json:"count"`
}

type FeedMember struct {
	Species  string   `firestore:"species" json:"species"`
	Name     string   `firestore:"name" json:"name"`
	Nickname string   `firestore:"nickname" json:"nickname"`
	Level    int      `firestore:"level" json:"level"`
	Moves    []string `firestore:"moves" json:"moves"`
}

type FeedUpdate struct {
	Time        int64  `firestore:"time" json:"time"`
	Title       string `firestore:"title" json:"title"`
	Category    string `firestore:"category" json:"category"`
	Description string `firestore:"description" json:"description"`
}

func NewFeedDocument() *FeedDocument {
	return &FeedDocument{
		Badges:    make([]string, 0),
		Inventory: make([]FeedItem, 0),
		Party:     make([]FeedMember, 0),
		Updates:   make([]FeedUpdate, 0),
	}
}

// SetItem sets the count for the named inventory item, adding or removing the
// entry as needed.
func (d *FeedDocument) SetItem(name string, count int) {
	for i, item := range d.Inventory {
		if item.Name == name {
			if count <= 0 {
				d.Inventory = append(d.Inventory[:i], d.Inventory[i+1:]...)
			} else {
				d.Inventory[i].Count = count
			}
			return
		}
	}

	if count > 0 {
		d.Inventory = append(d.Inventory, FeedItem{Name: name, Count: count})
	}
}

func (d *FeedDocument) AddBadge(name string) bool {
	for _, b := range d.Badges {
		if b == name {
			return false
		}
	}
	d.Badges = append(d.Badges, name)
	return true
}

// SetPartyMember places the member in the given 1-based slot, growing the
// party as needed.
func (d *FeedDocument) SetPartyMember(slot int, member FeedMember) {
	for len(d.Party) < slot {
		d.Party = append(d.Party, FeedMember{})
	}
	d.Party[slot-1] = member
}

func (d *FeedDocument) AddUpdate(category, title, description string, at time.Time) {
	d.Updates = append(d.Updates, FeedUpdate{
		Time:        at.Unix(),
		Title:       title,
		Category:    category,
		Description: description,
	})
}

func (d *FeedDocument) Serialize() ([]byte, error) {
	return json.Marshal(d)
}
