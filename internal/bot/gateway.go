// Package bot routes inbound chat events to command handlers and turns
// handler results into outbound replies. It talks to the chat platform
// only through the Gateway interface, so tests run against a fake.
package bot

// Event is one inbound chat message, already reduced to what the
// command pipeline needs.
type Event struct {
	ServerID  string
	ChannelID string
	UserID    string
	// UserTag is the display tag used in guidance messages.
	UserTag string
	Content string
	// FromBot marks messages authored by bots; only the dice-result
	// bridge looks at those.
	FromBot bool
}

// EmbedField is one titled section of a structured message.
type EmbedField struct {
	Name  string
	Value string
}

// Embed is a platform-neutral structured message.
type Embed struct {
	Title       string
	Description string
	Color       int
	Fields      []EmbedField
	Footer      string
}

// Guild describes one connected chat server for fan-out operations.
type Guild struct {
	ID   string
	Name string
}

// Gateway is the outbound half of the chat platform. Connection
// lifecycle, reconnection, and rate limiting are the adapter's problem,
// never the pipeline's.
type Gateway interface {
	SendText(channelID, text string) error
	SendEmbeds(channelID string, embeds []*Embed) error
	// SendDM opens (or reuses) a direct channel to the user.
	SendDM(userID, text string) error

	// Guilds lists the servers the gateway is currently connected to.
	Guilds() []Guild
	// GuildOwner resolves the administrator of a guild for out-of-band
	// notices.
	GuildOwner(guildID string) (string, error)
	// AnnouncementChannel reports a guild's announcement target, if it
	// has one.
	AnnouncementChannel(guildID string) (string, bool)
	// FirstWritableChannel reports a text channel the bot may post to.
	FirstWritableChannel(guildID string) (string, bool)
	// HasMemberTag reports whether a user with the given tag is a guild
	// member.
	HasMemberTag(guildID, userTag string) bool
}
