package models

import (
	"time"
)

// ModerationSettings is the operator-tunable state of the moderator. It is
// loaded from Firestore at startup and saved back after every mutating
// command.
type ModerationSettings struct {
	WaitSeconds   int       `firestore:"wait_seconds" json:"wait_seconds"`
	VoteThreshold int       `firestore:"vote_threshold" json:"vote_threshold"`
	TrustedMasks  []string  `firestore:"trusted_masks" json:"trusted_masks"`
	AutoVoice     bool      `firestore:"auto_voice" json:"auto_voice"`
	Channels      []string  `firestore:"channels" json:"channels"`
	UpdatedAt     time.Time `firestore:"updated_at" json:"updated_at"`
}

const (
	DefaultWaitSeconds   = 20
	DefaultVoteThreshold = 3
)

func NewModerationSettings(waitSeconds, voteThreshold int, trustedMasks, channels []string, autoVoice bool) *ModerationSettings {
	if waitSeconds <= 0 {
		waitSeconds = DefaultWaitSeconds
	}
	if voteThreshold <= 0 {
		voteThreshold = DefaultVoteThreshold
	}

	return &ModerationSettings{
		WaitSeconds:   waitSeconds,
		VoteThreshold: voteThreshold,
		TrustedMasks:  trustedMasks,
		AutoVoice:     autoVoice,
		Channels:      channels,
		UpdatedAt:     time.Now(),
	}
}
