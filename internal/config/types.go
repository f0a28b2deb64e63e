package config

// Config holds all configuration for the application.
type Config struct {
	DBName string
	Port   string
	Slack  SlackConfig
	Turso  TursoConfig
	PubSub PubSubConfig
}

type SlackConfig struct {
	Token         string
	ChannelID     string
	SigningSecret string
}

// Enabled reports whether announcements can be posted.
func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}

type PubSubConfig struct {
	ProjectID   string
	TopicPrefix string
}

// Enabled reports whether tournament events should be published.
func (c PubSubConfig) Enabled() bool {
	return c.ProjectID != ""
}
