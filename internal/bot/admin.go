package bot

import (
	"context"
	"fmt"

	"github.com/dom/dx3bot/internal/command"
	"github.com/dom/dx3bot/internal/domain"
	"go.uber.org/zap"
)

// handleUpdate bumps the persisted version and fans the announcement
// out: every guild's announcement channel when one is configured, the
// guild owner's DMs otherwise, plus a DM to the bot owner. Per-guild
// failures are logged and skipped.
func (d *Dispatcher) handleUpdate(ctx context.Context, ev Event, c command.Update) error {
	if ev.UserID != d.ownerID {
		d.reply(ev, ownerOnlyMsg)
		return nil
	}

	version, err := d.store.Version(ctx)
	if err != nil {
		return err
	}
	version = version.Bump(domain.BumpKind(c.Kind))
	if err := d.store.SaveVersion(ctx, version); err != nil {
		return err
	}

	message := c.Message
	if message == "" {
		message = "새로운 기능이 추가되었습니다!"
	}
	announcement := fmt.Sprintf("📢 **DX3bot 업데이트: %s**\n%s", version, message)

	for _, g := range d.gw.Guilds() {
		if ch, ok := d.gw.AnnouncementChannel(g.ID); ok {
			if err := d.gw.SendText(ch, announcement); err != nil {
				d.log.Warn("update announcement failed", zap.String("guild", g.Name), zap.Error(err))
			}
			continue
		}
		owner, err := d.gw.GuildOwner(g.ID)
		if err != nil {
			d.log.Warn("guild owner lookup failed", zap.String("guild", g.Name), zap.Error(err))
			continue
		}
		if err := d.gw.SendDM(owner, announcement); err != nil {
			d.log.Warn("guild owner DM failed", zap.String("guild", g.Name), zap.Error(err))
		}
	}

	if err := d.gw.SendDM(d.ownerID, announcement); err != nil {
		d.log.Warn("bot owner DM failed", zap.Error(err))
	}

	d.reply(ev, fmt.Sprintf("✅ **업데이트 완료! 현재 버전: %s**", version))
	return nil
}
