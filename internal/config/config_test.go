package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_NAME", "swiss.db")
	t.Setenv("PORT", "8080")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("GCP_PROJECT", "")
	t.Setenv("TURSO_PRIMARY_URL", "")

	cfg := Load()

	assert.Equal(t, "swiss.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.Slack.Enabled())
	assert.False(t, cfg.PubSub.Enabled())
	assert.Empty(t, cfg.Turso.PrimaryURL)
}

func TestSlackConfig_Enabled(t *testing.T) {
	assert.False(t, SlackConfig{Token: "xoxb-test"}.Enabled(), "a channel is required")
	assert.False(t, SlackConfig{ChannelID: "C123"}.Enabled(), "a token is required")
	assert.True(t, SlackConfig{Token: "xoxb-test", ChannelID: "C123"}.Enabled())
}
