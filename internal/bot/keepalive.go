package bot

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	// keepAlivePing re-selects the Double Cross dice system so the
	// third-party dice bot does not idle out of it.
	keepAlivePing = "bcdice set DoubleCross:Korean"
	diceBotTag    = "BCdicebot#8116"
)

// RunKeepAlive pings the dice bot in every guild it is a member of,
// once at start and then on every tick, until the context is canceled.
func (d *Dispatcher) RunKeepAlive(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	d.pingDiceBots()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.pingDiceBots()
		}
	}
}

func (d *Dispatcher) pingDiceBots() {
	for _, g := range d.gw.Guilds() {
		if !d.gw.HasMemberTag(g.ID, diceBotTag) {
			continue
		}
		ch, ok := d.gw.FirstWritableChannel(g.ID)
		if !ok {
			continue
		}
		if err := d.gw.SendText(ch, keepAlivePing); err != nil {
			d.log.Warn("keep-alive ping failed", zap.String("guild", g.Name), zap.Error(err))
			continue
		}
		d.log.Info("keep-alive ping sent", zap.String("guild", g.Name))
	}
}
