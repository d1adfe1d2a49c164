package config

import (
	"gopkg.in/yaml.v3"
	"os"
)

type Config struct {
	IRC         IRCConfig
	Commands    CommandsConfig
	Moderation  ModerationConfig
	Feed        FeedConfig
	GoogleCloud GoogleCloudConfig `yaml:"google_cloud"`
}

type IRCConfig struct {
	Server   string
	Port     int
	TLS      bool
	Nick     string
	Username string         `yaml:"user_name"`
	RealName string         `yaml:"real_name"`
	NickServ NickServConfig `yaml:"nickserv"`
	ChanServ ChanServConfig `yaml:"chanserv"`
	Channels []string
}

type NickServConfig struct {
	Recipient       string
	IdentifyPattern string `yaml:"identify_pattern"`
	IdentifyCommand string `yaml:"identify_command"`
	Password        string
}

type ChanServConfig struct {
	Recipient string
	OpCommand string `yaml:"op_command"`
}

type CommandsConfig struct {
	Prefix string
}

// ModerationConfig holds startup defaults. Live values are persisted
// separately and survive restarts; these apply only when no persisted
// settings document exists yet.
type ModerationConfig struct {
	WaitSeconds   int      `yaml:"wait_seconds"`
	VoteThreshold int      `yaml:"vote_threshold"`
	TrustedMasks  []string `yaml:"trusted_masks"`
	AutoVoice     bool     `yaml:"auto_voice"`
}

type FeedConfig struct {
	Topic string
}

type GoogleCloudConfig struct {
	ProjectID              string `yaml:"project_id"`
	ServiceAccountFilename string `yaml:"service_account_filename"`
}

func ReadConfig(filename string) (*Config, error) {
	f, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}

	err = yaml.Unmarshal(f, cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
