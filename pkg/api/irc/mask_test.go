package irc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskString(t *testing.T) {
	m := &Mask{Nick: "alice", UserID: "ali", Host: "host.example.net"}
	assert.Equal(t, "alice!ali@host.example.net", m.String())

	assert.Equal(t, "alice!*@*", (&Mask{Nick: "alice"}).String())
}

func TestMaskMatches(t *testing.T) {
	m := &Mask{Nick: "alice", UserID: "ali", Host: "host.example.net"}

	assert.True(t, m.Matches("alice!ali@host.example.net"))
	assert.True(t, m.Matches("alice!*@*"))
	assert.True(t, m.Matches("*!*@host.example.net"))
	assert.True(t, m.Matches("*!*@*.example.net"))
	assert.True(t, m.Matches("ALICE!*@HOST.example.net"))
	assert.True(t, m.Matches("alic?!*@*"))

	assert.False(t, m.Matches("bob!*@*"))
	assert.False(t, m.Matches("*!*@*.example.org"))
	assert.False(t, m.Matches("alice"))
}

func TestMaskMatchesEscapesRegexMetacharacters(t *testing.T) {
	m := &Mask{Nick: "alice", UserID: "ali", Host: "host.example.net"}

	// the dots in the pattern are literal, not regex wildcards
	assert.False(t, m.Matches("alice!ali@hostXexampleXnet"))
	assert.False(t, m.Matches("alice!ali@host.example.ne."))
}

func TestParseMask(t *testing.T) {
	m := ParseMask("alice!ali@host.example.net")
	require.NotNil(t, m)
	assert.Equal(t, "alice", m.Nick)
	assert.Equal(t, "ali", m.UserID)
	assert.Equal(t, "host.example.net", m.Host)

	assert.Nil(t, ParseMask("alice"))
	assert.Nil(t, ParseMask("alice!ali"))
}
