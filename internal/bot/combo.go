package bot

import (
	"context"
	"fmt"

	"github.com/dom/dx3bot/internal/command"
	"github.com/dom/dx3bot/internal/domain"
)

func (d *Dispatcher) handleComboStore(ctx context.Context, ev Event, c command.ComboStore) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	combos, err := d.store.Combos(ctx)
	if err != nil {
		return err
	}
	tiers := combos.EnsureCombo(ev.ServerID, ev.UserID, ac.name, c.Name)
	tiers[c.Condition] = c.Body
	if err := d.store.SaveCombos(ctx, combos); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf("✅ **%s**의 콤보 **\"%s\"**가 저장되었습니다.", ac.name, c.Name))
	return nil
}

func (d *Dispatcher) handleComboInvoke(ctx context.Context, ev Event, c command.ComboInvoke) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	combos, err := d.store.Combos(ctx)
	if err != nil {
		return err
	}
	tiers := combos.Character(ev.ServerID, ev.UserID, ac.name)[c.Name]
	if tiers == nil {
		d.reply(ev, fmt.Sprintf("❌ **%s**의 콤보 '%s'를 찾을 수 없습니다.", ac.name, c.Name))
		return nil
	}
	cond, body, found := domain.SelectComboTier(tiers, ac.sheet.Stat(domain.StatErosion))
	if !found {
		d.reply(ev, fmt.Sprintf("❌ 침식률 조건에 맞는 '%s' 콤보를 찾을 수 없습니다.", c.Name))
		return nil
	}
	d.reply(ev, fmt.Sprintf("> **%s 【%s】**\n> %s", cond, c.Name, body))
	return nil
}

func (d *Dispatcher) handleComboDelete(ctx context.Context, ev Event, c command.ComboDelete) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	combos, err := d.store.Combos(ctx)
	if err != nil {
		return err
	}
	if !combos.DeleteCombo(ev.ServerID, ev.UserID, ac.name, c.Name) {
		d.reply(ev, fmt.Sprintf("❌ **%s**의 콤보 '%s'를 찾을 수 없습니다.", ac.name, c.Name))
		return nil
	}
	if err := d.store.SaveCombos(ctx, combos); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf("🗑️ **%s**의 콤보 **\"%s\"**가 삭제되었습니다.", ac.name, c.Name))
	return nil
}
