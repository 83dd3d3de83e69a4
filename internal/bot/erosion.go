package bot

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/dom/dx3bot/internal/domain"
	"go.uber.org/zap"
)

// diceResultPattern matches the dice bot's reply line, e.g.
// "DoubleCross : (1D10) ＞ 7", capturing the rolled total.
var diceResultPattern = regexp.MustCompile(`(?:\(\d+D\d+\)|＞.*?)\s*＞\s*(\d+)`)

// erosionRequest is one pending entry-erosion roll awaiting the dice
// bot's reply.
type erosionRequest struct {
	userID    string
	character string
}

// erosionQueue holds pending requests per server in FIFO order, so
// concurrent rolls in one server resolve in the order they were asked.
// The dispatcher mutex guards it.
type erosionQueue struct {
	pending map[string][]erosionRequest
}

func newErosionQueue() *erosionQueue {
	return &erosionQueue{pending: make(map[string][]erosionRequest)}
}

func (q *erosionQueue) push(serverID string, r erosionRequest) {
	q.pending[serverID] = append(q.pending[serverID], r)
}

func (q *erosionQueue) pop(serverID string) (erosionRequest, bool) {
	reqs := q.pending[serverID]
	if len(reqs) == 0 {
		return erosionRequest{}, false
	}
	q.pending[serverID] = reqs[1:]
	return reqs[0], true
}

func (d *Dispatcher) handleEntryErosion(ctx context.Context, ev Event) error {
	ac, ok, err := d.resolveActive(ctx, ev)
	if err != nil || !ok {
		return err
	}
	d.erosion.push(ev.ServerID, erosionRequest{userID: ev.UserID, character: ac.name})
	d.reply(ev, fmt.Sprintf("1d10 등장침식 <@%s>", ev.UserID))
	return nil
}

// handleDiceReply bridges the dice bot's roll back into the oldest
// pending entry-erosion request of the server. Anything that does not
// look like a roll, or arrives with no request pending, is ignored.
func (d *Dispatcher) handleDiceReply(ctx context.Context, ev Event) {
	m := diceResultPattern.FindStringSubmatch(ev.Content)
	if m == nil {
		return
	}
	rolled, err := strconv.Atoi(m[1])
	if err != nil {
		return
	}
	req, ok := d.erosion.pop(ev.ServerID)
	if !ok {
		return
	}

	sheets, err := d.store.Sheets(ctx)
	if err != nil {
		d.log.Error("erosion bridge load failed", zap.Error(err))
		return
	}
	sheet := sheets.Character(ev.ServerID, req.userID, req.character)
	if sheet == nil {
		return
	}
	rate, crossed := sheet.ApplyErosion(rolled)
	if err := d.store.SaveSheets(ctx, sheets); err != nil {
		d.log.Error("erosion bridge save failed", zap.Error(err))
		return
	}

	if len(crossed) > 0 {
		d.reply(ev, fmt.Sprintf("침식률이 %d이 되어 침식D가 %d로 증가했습니다.",
			rate, sheet.Stat(domain.StatErosionDie)))
	}
	d.reply(ev, fmt.Sprintf("%s 등장침식 +%d → 현재 침식률: %d\n <@%s>",
		req.character, rolled, rate, req.userID))
}
