package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/dom/dx3bot/internal/command"
	"github.com/dom/dx3bot/internal/domain"
)

func (d *Dispatcher) handleSheetSet(ctx context.Context, ev Event, c command.SheetSet) error {
	sheets, err := d.store.Sheets(ctx)
	if err != nil {
		return err
	}
	sheet := sheets.Ensure(ev.ServerID, ev.UserID, c.Name)

	erosionTouched := false
	for _, p := range c.Pairs {
		sheet.SetStat(p.Key, p.Value)
		if p.Key == domain.StatErosion {
			erosionTouched = true
		}
	}
	var crossed []domain.ErosionTier
	if erosionTouched {
		_, crossed = sheet.RefreshErosionDie()
	}
	if err := d.store.SaveSheets(ctx, sheets); err != nil {
		return err
	}

	lines := []string{fmt.Sprintf("✅ **%s**의 항목이 설정되었습니다.", c.Name)}
	for _, p := range c.Pairs {
		lines = append(lines, fmt.Sprintf("> %s: %d", p.Key, p.Value))
	}
	for _, t := range crossed {
		lines = append(lines, tierNotice(t))
	}
	d.reply(ev, strings.Join(lines, "\n"))
	return nil
}

func (d *Dispatcher) handleDesignate(ctx context.Context, ev Event, c command.Designate) error {
	sheet, err := d.store.CharacterData(ctx, ev.ServerID, ev.UserID, c.Name)
	if err != nil {
		return err
	}
	if sheet == nil {
		d.reply(ev, fmt.Sprintf("❌ 캐릭터 \"%s\"의 데이터를 찾을 수 없습니다. 먼저 `!시트입력`을 사용하여 캐릭터를 등록하세요.", c.Name))
		return nil
	}
	active, err := d.store.Active(ctx)
	if err != nil {
		return err
	}
	active.Set(ev.ServerID, ev.UserID, c.Name)
	if err := d.store.SaveActive(ctx, active); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf("✅ **%s**님을 활성 캐릭터로 지정했습니다.", c.Name))
	return nil
}

func (d *Dispatcher) handleUndesignate(ctx context.Context, ev Event) error {
	active, err := d.store.Active(ctx)
	if err != nil {
		return err
	}
	prev := active.Get(ev.ServerID, ev.UserID)
	if !active.Clear(ev.ServerID, ev.UserID) {
		d.reply(ev, "❌ 현재 활성화된 캐릭터가 없습니다.")
		return nil
	}
	if err := d.store.SaveActive(ctx, active); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf("✅ **%s**님을 활성 캐릭터에서 해제했습니다.", prev))
	return nil
}

// handleCharacterDelete removes the named sheet plus its combos, and
// clears the active pointer when it referenced the deleted character.
func (d *Dispatcher) handleCharacterDelete(ctx context.Context, ev Event, c command.CharacterDelete) error {
	sheets, err := d.store.Sheets(ctx)
	if err != nil {
		return err
	}
	if !sheets.Delete(ev.ServerID, ev.UserID, c.Name) {
		d.reply(ev, fmt.Sprintf("❌ **\"%s\"** 캐릭터를 찾을 수 없습니다.", c.Name))
		return nil
	}
	if err := d.store.SaveSheets(ctx, sheets); err != nil {
		return err
	}

	combos, err := d.store.Combos(ctx)
	if err != nil {
		return err
	}
	if combos.DeleteCharacter(ev.ServerID, ev.UserID, c.Name) {
		if err := d.store.SaveCombos(ctx, combos); err != nil {
			return err
		}
	}

	active, err := d.store.Active(ctx)
	if err != nil {
		return err
	}
	if active.Get(ev.ServerID, ev.UserID) == c.Name {
		active.Clear(ev.ServerID, ev.UserID)
		if err := d.store.SaveActive(ctx, active); err != nil {
			return err
		}
	}
	d.reply(ev, fmt.Sprintf("✅ **\"%s\"** 캐릭터가 삭제되었습니다.", c.Name))
	return nil
}

func (d *Dispatcher) handleReset(ctx context.Context, ev Event, c command.Reset) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}

	switch c.Target {
	case "":
		ac.sheets.Delete(ev.ServerID, ev.UserID, ac.name)
		if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
			return err
		}
		combos, err := d.store.Combos(ctx)
		if err != nil {
			return err
		}
		if combos.DeleteCharacter(ev.ServerID, ev.UserID, ac.name) {
			if err := d.store.SaveCombos(ctx, combos); err != nil {
				return err
			}
		}
		active, err := d.store.Active(ctx)
		if err != nil {
			return err
		}
		if active.Clear(ev.ServerID, ev.UserID) {
			if err := d.store.SaveActive(ctx, active); err != nil {
				return err
			}
		}
		d.reply(ev, fmt.Sprintf("✅ **%s**의 모든 데이터가 초기화되었습니다.", ac.name))

	case "콤보":
		combos, err := d.store.Combos(ctx)
		if err != nil {
			return err
		}
		if combos.DeleteCharacter(ev.ServerID, ev.UserID, ac.name) {
			if err := d.store.SaveCombos(ctx, combos); err != nil {
				return err
			}
		}
		d.reply(ev, fmt.Sprintf("✅ **%s**의 모든 콤보가 삭제되었습니다.", ac.name))

	case "로이스":
		if len(ac.sheet.Lois) == 0 {
			d.reply(ev, fmt.Sprintf("⚠️ **%s**에게 등록된 로이스가 없습니다.", ac.name))
			return nil
		}
		ac.sheet.Lois = nil
		if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
			return err
		}
		d.reply(ev, fmt.Sprintf("✅ **%s**의 모든 로이스가 삭제되었습니다.", ac.name))

	default:
		if !ac.sheet.DeleteAttribute(c.Target) {
			d.reply(ev, fmt.Sprintf("⚠️ **%s**의 '%s' 데이터를 찾을 수 없습니다.", ac.name, c.Target))
			return nil
		}
		if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
			return err
		}
		d.reply(ev, fmt.Sprintf("✅ **%s**의 '%s' 데이터가 초기화되었습니다.", ac.name, c.Target))
	}
	return nil
}

const descriptorSetFmt = "✅ **%s**의 **%s**이(가) **\"%s\"**(으)로 설정되었습니다."

func (d *Dispatcher) handleSetDescriptor(ctx context.Context, ev Event, c command.SetDescriptor) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}

	var msg string
	switch c.Field {
	case command.FieldCodeName:
		ac.sheet.CodeName = c.Value
		msg = fmt.Sprintf("✅ **%s**의 코드네임이 **\"%s\"**(으)로 설정되었습니다.", ac.name, c.Value)
	case command.FieldEmoji:
		ac.sheet.Emoji = c.Value
		msg = fmt.Sprintf("✅ **%s** 캐릭터의 이모지가 **%s**(으)로 설정되었습니다.", ac.name, c.Value)
	case command.FieldCover:
		ac.sheet.Cover = c.Value
		msg = fmt.Sprintf(descriptorSetFmt, ac.name, c.Field, c.Value)
	case command.FieldWorks:
		ac.sheet.Works = c.Value
		msg = fmt.Sprintf(descriptorSetFmt, ac.name, c.Field, c.Value)
	case command.FieldBreed:
		ac.sheet.Breed = c.Value
		msg = fmt.Sprintf(descriptorSetFmt, ac.name, c.Field, c.Value)
	case command.FieldAwakening:
		ac.sheet.Awakening = c.Value
		msg = fmt.Sprintf(descriptorSetFmt, ac.name, c.Field, c.Value)
	case command.FieldImpulse:
		ac.sheet.Impulse = c.Value
		msg = fmt.Sprintf(descriptorSetFmt, ac.name, c.Field, c.Value)
	default:
		return fmt.Errorf("unhandled descriptor field %q", c.Field)
	}

	if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
		return err
	}
	d.reply(ev, msg)
	return nil
}

func (d *Dispatcher) handleSetSyndromes(ctx context.Context, ev Event, c command.SetSyndromes) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	joined := domain.JoinSyndromes(c.Names)
	ac.sheet.Syndromes = joined
	if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf(descriptorSetFmt, ac.name, "syndromes", joined))
	return nil
}

func (d *Dispatcher) handleSetDLois(ctx context.Context, ev Event, c command.SetDLois) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	ac.sheet.DLoisNo = c.No
	ac.sheet.DLoisName = c.Name
	if err := d.store.SaveSheets(ctx, ac.sheets); err != nil {
		return err
	}
	d.reply(ev, fmt.Sprintf(descriptorSetFmt, ac.name, "dloisNo", c.No))
	d.reply(ev, fmt.Sprintf(descriptorSetFmt, ac.name, "dloisName", c.Name))
	return nil
}
