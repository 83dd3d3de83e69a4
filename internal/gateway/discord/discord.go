// Package discord adapts a discordgo session to the bot.Gateway
// interface. All Discord-specific types stay behind this package.
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/dom/dx3bot/internal/bot"
	"go.uber.org/zap"
)

type Adapter struct {
	session *discordgo.Session
	log     *zap.Logger
}

func New(token string, log *zap.Logger) (*Adapter, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent
	return &Adapter{session: session, log: log}, nil
}

// OnMessage registers the inbound handler. The bot's own messages are
// filtered out; other bots' messages pass through flagged, so the
// dice-result bridge can see them. Must be called before Open.
func (a *Adapter) OnMessage(handle func(bot.Event)) {
	a.session.AddHandler(func(s *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.ID == s.State.User.ID {
			return
		}
		if m.GuildID == "" {
			// Commands are guild-scoped; DMs are ignored.
			return
		}
		handle(bot.Event{
			ServerID:  m.GuildID,
			ChannelID: m.ChannelID,
			UserID:    m.Author.ID,
			UserTag:   userTag(m.Author),
			Content:   m.Content,
			FromBot:   m.Author.Bot,
		})
	})
}

func (a *Adapter) Open() error {
	if err := a.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	a.log.Info("discord gateway connected", zap.String("user", userTag(a.session.State.User)))
	return nil
}

func (a *Adapter) Close() error {
	return a.session.Close()
}

func (a *Adapter) SendText(channelID, text string) error {
	_, err := a.session.ChannelMessageSend(channelID, text)
	return err
}

func (a *Adapter) SendEmbeds(channelID string, embeds []*bot.Embed) error {
	converted := make([]*discordgo.MessageEmbed, len(embeds))
	for i, e := range embeds {
		converted[i] = toMessageEmbed(e)
	}
	_, err := a.session.ChannelMessageSendEmbeds(channelID, converted)
	return err
}

func (a *Adapter) SendDM(userID, text string) error {
	ch, err := a.session.UserChannelCreate(userID)
	if err != nil {
		return fmt.Errorf("open dm channel: %w", err)
	}
	_, err = a.session.ChannelMessageSend(ch.ID, text)
	return err
}

func (a *Adapter) Guilds() []bot.Guild {
	guilds := make([]bot.Guild, 0, len(a.session.State.Guilds))
	for _, g := range a.session.State.Guilds {
		guilds = append(guilds, bot.Guild{ID: g.ID, Name: g.Name})
	}
	return guilds
}

func (a *Adapter) GuildOwner(guildID string) (string, error) {
	if g, err := a.session.State.Guild(guildID); err == nil && g.OwnerID != "" {
		return g.OwnerID, nil
	}
	g, err := a.session.Guild(guildID)
	if err != nil {
		return "", fmt.Errorf("fetch guild %s: %w", guildID, err)
	}
	return g.OwnerID, nil
}

// AnnouncementChannel picks the guild's first news channel the bot can
// post to.
func (a *Adapter) AnnouncementChannel(guildID string) (string, bool) {
	for _, ch := range a.guildChannels(guildID) {
		if ch.Type == discordgo.ChannelTypeGuildNews && a.canSend(ch.ID) {
			return ch.ID, true
		}
	}
	return "", false
}

func (a *Adapter) FirstWritableChannel(guildID string) (string, bool) {
	for _, ch := range a.guildChannels(guildID) {
		if ch.Type == discordgo.ChannelTypeGuildText && a.canSend(ch.ID) {
			return ch.ID, true
		}
	}
	return "", false
}

func (a *Adapter) HasMemberTag(guildID, tag string) bool {
	members, err := a.session.GuildMembers(guildID, "", 1000)
	if err != nil {
		a.log.Warn("guild member listing failed", zap.String("guild", guildID), zap.Error(err))
		return false
	}
	for _, m := range members {
		if m.User != nil && userTag(m.User) == tag {
			return true
		}
	}
	return false
}

func (a *Adapter) guildChannels(guildID string) []*discordgo.Channel {
	if g, err := a.session.State.Guild(guildID); err == nil && len(g.Channels) > 0 {
		return g.Channels
	}
	channels, err := a.session.GuildChannels(guildID)
	if err != nil {
		a.log.Warn("guild channel listing failed", zap.String("guild", guildID), zap.Error(err))
		return nil
	}
	return channels
}

func (a *Adapter) canSend(channelID string) bool {
	perms, err := a.session.State.UserChannelPermissions(a.session.State.User.ID, channelID)
	if err != nil {
		return false
	}
	return perms&discordgo.PermissionSendMessages != 0
}

func toMessageEmbed(e *bot.Embed) *discordgo.MessageEmbed {
	out := &discordgo.MessageEmbed{
		Title:       e.Title,
		Description: e.Description,
		Color:       e.Color,
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, &discordgo.MessageEmbedField{Name: f.Name, Value: f.Value})
	}
	if e.Footer != "" {
		out.Footer = &discordgo.MessageEmbedFooter{Text: e.Footer}
	}
	return out
}

func userTag(u *discordgo.User) string {
	if u == nil {
		return ""
	}
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}
