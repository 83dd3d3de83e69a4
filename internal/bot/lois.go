package bot

import (
	"context"
	"fmt"

	"github.com/dom/dx3bot/internal/command"
	"github.com/dom/dx3bot/internal/domain"
)

func (d *Dispatcher) handleLoisAdd(ctx context.Context, ev Event, c command.LoisAdd) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	l := domain.Lois{
		Name:        c.Name,
		PEmotion:    domain.FormatEmotion("P", c.PEmotion),
		NEmotion:    domain.FormatEmotion("N", c.NEmotion),
		Description: c.Description,
	}
	ac.sheet.UpsertLois(l)
	if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf("✅ **%s**의 로이스 **\"%s\"**가 등록되었습니다.\n%s / %s\n%s",
		ac.name, c.Name, l.PEmotion, l.NEmotion, l.Description))
	return nil
}

func (d *Dispatcher) handleLoisDelete(ctx context.Context, ev Event, c command.LoisDelete) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	if len(ac.sheet.Lois) == 0 {
		d.reply(ev, fmt.Sprintf("❌ **%s**에게 등록된 로이스가 없습니다.", ac.name))
		return nil
	}
	if !ac.sheet.RemoveLois(c.Name) {
		d.reply(ev, fmt.Sprintf("❌ **%s**에게 **\"%s\"** 로이스가 존재하지 않습니다.", ac.name, c.Name))
		return nil
	}
	if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf("🗑️ **%s**의 로이스 **\"%s\"**가 삭제되었습니다.", ac.name, c.Name))
	return nil
}

// handleTitus converts a relationship into a titus: the lois is removed
// and the character takes +5 erosion, which may escalate the erosion
// die like any other rate increase.
func (d *Dispatcher) handleTitus(ctx context.Context, ev Event, c command.Titus) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	if len(ac.sheet.Lois) == 0 {
		d.reply(ev, fmt.Sprintf("❌ **%s**에게 등록된 로이스가 없습니다.", ac.name))
		return nil
	}
	if !ac.sheet.RemoveLois(c.Name) {
		d.reply(ev, fmt.Sprintf("❌ **%s**에게 **\"%s\"** 로이스가 존재하지 않습니다.", ac.name, c.Name))
		return nil
	}
	_, crossed := ac.sheet.ApplyErosion(5)
	if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf("🔥 **%s**의 로이스 **\"%s\"**가 타이터스로 변환되었습니다!", ac.name, c.Name))
	for _, t := range crossed {
		d.reply(ev, tierNotice(t))
	}
	return nil
}
