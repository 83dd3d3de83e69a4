package bot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dom/dx3bot/internal/command"
	"github.com/dom/dx3bot/internal/domain"
	"github.com/dom/dx3bot/internal/store"
	"go.uber.org/zap"
)

const (
	noActiveCharacterFmt = "%s님, 활성화된 캐릭터가 없습니다. `!지정 [캐릭터 이름]` 명령어로 캐릭터를 지정해주세요."
	dataUnavailableMsg   = "❌ 데이터 파일을 불러오는 데 문제가 발생했습니다."
	ownerOnlyMsg         = "❌ 이 명령어는 봇 소유자만 사용할 수 있습니다."
)

// Dispatcher drives the command pipeline: parse, resolve the active
// character, execute, reply. One event is handled at a time; the mutex
// serializes the load-mutate-save cycles on the shared documents while
// keeping the reply order of the reference bot.
type Dispatcher struct {
	store   *store.Store
	gw      Gateway
	log     *zap.Logger
	ownerID string

	mu      sync.Mutex
	erosion *erosionQueue
}

func New(st *store.Store, gw Gateway, ownerID string, log *zap.Logger) *Dispatcher {
	return &Dispatcher{
		store:   st,
		gw:      gw,
		log:     log,
		ownerID: ownerID,
		erosion: newErosionQueue(),
	}
}

// HandleEvent processes one inbound message. Every failure is resolved
// here: a bad event never stops the next one from being handled.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if ev.FromBot {
		d.handleDiceReply(ctx, ev)
		return
	}

	cmd, err := command.Parse(ev.Content)
	if err != nil {
		var ue *command.UsageError
		if errors.As(err, &ue) {
			d.reply(ev, ue.Message)
		}
		// Plain chat and unknown commands are dropped silently.
		return
	}

	if err := d.execute(ctx, ev, cmd); err != nil {
		d.log.Error("command failed",
			zap.String("server", ev.ServerID),
			zap.String("user", ev.UserID),
			zap.String("content", ev.Content),
			zap.Error(err))
		d.reply(ev, dataUnavailableMsg)
	}
}

func (d *Dispatcher) execute(ctx context.Context, ev Event, cmd command.Command) error {
	switch c := cmd.(type) {
	case command.SheetSet:
		return d.handleSheetSet(ctx, ev, c)
	case command.Designate:
		return d.handleDesignate(ctx, ev, c)
	case command.Undesignate:
		return d.handleUndesignate(ctx, ev)
	case command.SheetShow:
		return d.handleSheetShow(ctx, ev)
	case command.Roll:
		return d.handleRoll(ctx, ev, c)
	case command.StatDelta:
		return d.handleStatDelta(ctx, ev, c)
	case command.EntryErosion:
		return d.handleEntryErosion(ctx, ev)
	case command.ComboStore:
		return d.handleComboStore(ctx, ev, c)
	case command.ComboInvoke:
		return d.handleComboInvoke(ctx, ev, c)
	case command.ComboDelete:
		return d.handleComboDelete(ctx, ev, c)
	case command.LoisAdd:
		return d.handleLoisAdd(ctx, ev, c)
	case command.LoisDelete:
		return d.handleLoisDelete(ctx, ev, c)
	case command.Titus:
		return d.handleTitus(ctx, ev, c)
	case command.Reset:
		return d.handleReset(ctx, ev, c)
	case command.CharacterDelete:
		return d.handleCharacterDelete(ctx, ev, c)
	case command.SetDescriptor:
		return d.handleSetDescriptor(ctx, ev, c)
	case command.SetSyndromes:
		return d.handleSetSyndromes(ctx, ev, c)
	case command.SetDLois:
		return d.handleSetDLois(ctx, ev, c)
	case command.Help:
		return d.handleHelp(ev)
	case command.Update:
		return d.handleUpdate(ctx, ev, c)
	default:
		return fmt.Errorf("unhandled command %T", cmd)
	}
}

// reply sends a text reply; a delivery failure is logged and escalated
// to the guild owner, never retried.
func (d *Dispatcher) reply(ev Event, text string) {
	if err := d.gw.SendText(ev.ChannelID, text); err != nil {
		d.notifyDeliveryFailure(ev, err)
	}
}

func (d *Dispatcher) notifyDeliveryFailure(ev Event, sendErr error) {
	d.log.Warn("reply delivery failed",
		zap.String("server", ev.ServerID),
		zap.String("channel", ev.ChannelID),
		zap.Error(sendErr))

	ownerID, err := d.gw.GuildOwner(ev.ServerID)
	if err != nil {
		d.log.Warn("guild owner lookup failed", zap.String("server", ev.ServerID), zap.Error(err))
		return
	}
	name := ev.ServerID
	for _, g := range d.gw.Guilds() {
		if g.ID == ev.ServerID {
			name = g.Name
			break
		}
	}
	notice := fmt.Sprintf("❌ **DX3bot이 \"%s\" 서버에서 메시지를 보낼 수 없습니다.**\n봇의 권한을 확인해주세요!", name)
	if err := d.gw.SendDM(ownerID, notice); err != nil {
		d.log.Warn("guild owner DM failed", zap.String("server", ev.ServerID), zap.Error(err))
	}
}

// activeContext is the resolved state every character-bound handler
// starts from.
type activeContext struct {
	name   string
	sheet  *domain.CharacterSheet
	sheets store.SheetsDoc
}

// resolveActive loads the sheets document and the caller's active
// character. When none is designated (or its sheet is gone) it sends
// the guidance reply and returns ok=false with no side effects.
func (d *Dispatcher) resolveActive(ctx context.Context, ev Event) (activeContext, bool, error) {
	name, err := d.store.ActiveCharacter(ctx, ev.ServerID, ev.UserID)
	if err != nil {
		return activeContext{}, false, err
	}
	if name == "" {
		d.reply(ev, fmt.Sprintf(noActiveCharacterFmt, ev.UserTag))
		return activeContext{}, false, nil
	}
	sheets, err := d.store.Sheets(ctx)
	if err != nil {
		return activeContext{}, false, err
	}
	sheet := sheets.Character(ev.ServerID, ev.UserID, name)
	if sheet == nil {
		d.reply(ev, fmt.Sprintf(noActiveCharacterFmt, ev.UserTag))
		return activeContext{}, false, nil
	}
	return activeContext{name: name, sheet: sheet, sheets: sheets}, true, nil
}

// tierNotice renders the escalation warning for one crossed tier.
func tierNotice(t domain.ErosionTier) string {
	particle := "로"
	if t.Die == 3 {
		particle = "으로"
	}
	return fmt.Sprintf("⚠️ 침식률이 %d을 넘어서 **침식D가 %d**%s 상승했습니다.", t.Threshold, t.Die, particle)
}
