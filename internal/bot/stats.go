package bot

import (
	"context"
	"fmt"

	"github.com/dom/dx3bot/internal/command"
	"github.com/dom/dx3bot/internal/domain"
)

// handleRoll emits the dice expression for an attribute. The main value
// and the erosion die form the dice count; the attribute's own value is
// the fixed bonus.
func (d *Dispatcher) handleRoll(ctx context.Context, ev Event, c command.Roll) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	main := domain.ResolveMainAttribute(c.Token)
	expr := fmt.Sprintf("(%d+%d)dx+%d",
		ac.sheet.Stat(main),
		ac.sheet.Stat(domain.StatErosionDie),
		ac.sheet.Stat(c.Token))
	d.reply(ev, fmt.Sprintf("%s  %s 판정 <@%s>", expr, c.Token, ev.UserID))
	return nil
}

func (d *Dispatcher) handleStatDelta(ctx context.Context, ev Event, c command.StatDelta) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}

	var value int
	switch c.Op {
	case command.OpAdd:
		value = ac.sheet.AddStat(c.Stat, c.Value)
	case command.OpSub:
		value = ac.sheet.AddStat(c.Stat, -c.Value)
	case command.OpSet:
		ac.sheet.SetStat(c.Stat, c.Value)
		value = c.Value
	}

	// Raising the erosion rate may escalate the erosion die; each
	// crossed tier is announced before the value confirmation.
	var crossed []domain.ErosionTier
	if c.Stat == domain.StatErosion {
		_, crossed = ac.sheet.RefreshErosionDie()
	}

	if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
		return err
	}
	for _, t := range crossed {
		d.reply(ev, tierNotice(t))
	}
	d.reply(ev, fmt.Sprintf("▶ **%s**\n현재 **%s:** %d", ac.name, c.Stat, value))
	return nil
}
