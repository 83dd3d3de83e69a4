package bot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dom/dx3bot/internal/domain"
)

func (d *Dispatcher) handleSheetShow(ctx context.Context, ev Event) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	combos, err := d.store.Combos(ctx)
	if err != nil {
		return err
	}
	d.reply(ev, renderSheet(ac.name, ac.sheet, combos.Character(ev.ServerID, ev.UserID, ac.name)))
	return nil
}

// renderSheet produces the full sheet view: descriptor header, stat
// summary, the four main attributes with their grouped sub-attributes,
// then the combo and lois lists.
func renderSheet(name string, sheet *domain.CharacterSheet, combos map[string]domain.ComboTiers) string {
	emoji := sheet.Emoji
	if emoji == "" {
		emoji = "❌"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s  **%s** :: **「%s」**\n", emoji, name, orDefault(sheet.CodeName, "코드네임 없음"))
	fmt.Fprintf(&b, "> %s｜%s\n", orDefault(sheet.Cover, "커버 없음"), orDefault(sheet.Works, "웍스 없음"))
	fmt.Fprintf(&b, "> %s｜%s\n", domain.NormalizeBreed(sheet.Breed), renderSyndromes(sheet.Syndromes))
	fmt.Fprintf(&b, "> %s｜%s\n", orDefault(sheet.Awakening, "각성 없음"), orDefault(sheet.Impulse, "충동 없음"))
	fmt.Fprintf(&b, "> D-Lois｜No.%s %s\n\n", orDefault(sheet.DLoisNo, "00"), orDefault(sheet.DLoisName, "D로이스 없음"))

	fmt.Fprintf(&b, "> **HP** %d  |  **침식률** %d  |  **침식D** %d  |  **로이스** %d\n",
		sheet.Stat(domain.StatHP),
		sheet.Stat(domain.StatErosion),
		sheet.Stat(domain.StatErosionDie),
		len(sheet.Lois))

	statKeys := make([]string, 0, len(sheet.Stats))
	for k := range sheet.Stats {
		statKeys = append(statKeys, k)
	}
	sort.Strings(statKeys)

	for _, main := range domain.MainAttributes {
		var subs []string
		for _, key := range statKeys {
			if governed, ok := domain.SubAttributeMain(key); ok && governed == main {
				subs = append(subs, fmt.Sprintf("%s: %d", key, sheet.Stats[key]))
			}
		}
		mainValue := sheet.Stat(main)
		if len(subs) == 0 && mainValue == 0 {
			continue
		}
		fmt.Fprintf(&b, ">     **【%s】**  %d   %s\n", main, mainValue, strings.Join(subs, " "))
	}

	if len(combos) > 0 {
		fmt.Fprintf(&b, "\n%s  **콤보** \n", emoji)
		comboNames := make([]string, 0, len(combos))
		for n := range combos {
			comboNames = append(comboNames, n)
		}
		sort.Strings(comboNames)
		for _, n := range comboNames {
			fmt.Fprintf(&b, "> ㆍ **%s**\n", n)
		}
	}

	if len(sheet.Lois) > 0 {
		fmt.Fprintf(&b, "\n%s  **로이스** \n", emoji)
		for _, l := range sheet.Lois {
			fmt.Fprintf(&b, "> ㆍ **%s** | %s / %s | %s\n", l.Name, l.PEmotion, l.NEmotion, l.Description)
		}
	}
	return b.String()
}

// renderSyndromes re-translates the stored value so sheets written with
// Korean syndrome names still display the English spellings.
func renderSyndromes(stored string) string {
	if stored == "" {
		return "신드롬 없음"
	}
	parts := strings.Split(stored, " × ")
	for i, p := range parts {
		parts[i] = domain.TranslateSyndrome(p)
	}
	return strings.Join(parts, " × ")
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
