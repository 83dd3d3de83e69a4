package command

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotCommand marks plain chat that does not start with the command
// marker. ErrUnknownCommand marks marker-prefixed text no grammar
// claims; both are silently dropped by the dispatcher.
var (
	ErrNotCommand     = errors.New("not a command")
	ErrUnknownCommand = errors.New("unknown command")
)

// UsageError carries the user-facing usage string of the command whose
// grammar rejected the input.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string { return e.Message }

func usage(msg string) error { return &UsageError{Message: msg} }

// Usage strings, kept verbatim from the bot's chat surface.
const (
	usageSheetSet   = "❌ 사용법: `!시트입력 \"캐릭터 이름\" [항목1] [값1] [항목2] [값2] ...`"
	usagePairs      = "❌ 속성은 최소한 하나 이상 입력해야 하며, 속성과 값은 짝수여야 합니다."
	usageDesignate  = "❌ 사용법: `!지정 \"캐릭터 이름\"`"
	usageRoll       = "❌ 사용법: `!판정 [항목]`"
	usageCombo      = "❌ 사용법: `!콤보 [\"콤보 이름\"] [침식률조건] [콤보 데이터]`"
	usageComboCall  = "❌ 사용법: `!@\"콤보 이름\"`"
	usageComboDel   = "❌ 사용법: `!콤보삭제 [\"콤보 이름\"]`"
	usageLois       = "❌ 사용법: `!로이스 [\"로이스 이름\"] P감정 N감정 내용`\n📌 P감정에 `*`을 붙이면 메인 감정으로 설정됩니다."
	usageLoisDel    = "❌ 사용법: `!로이스삭제 [\"로이스 이름\"]`"
	usageTitus      = "❌ 사용법: `!타이터스 [\"로이스 이름\"]`"
	usageCharDel    = "❌ 사용법: `!캐릭터삭제 \"캐릭터 이름\"` 또는 `!캐릭터삭제 [캐릭터 이름]`"
	usageCodeName   = "❌ 사용법: `!코드네임 \"코드네임\"` 또는 `!코드네임 [코드네임]`"
	usageEmoji      = "❌ 사용법: `!이모지 [이모지]`"
	usageCover      = "❌ 사용법: `!커버 [이름]`"
	usageWorks      = "❌ 사용법: `!웍스 [이름]`"
	usageBreed      = "❌ 사용법: `!브리드 [이름]`"
	usageSyndrome   = "❌ 사용법: `!신드롬 [신드롬1] [신드롬2] [신드롬3]` (최대 3개)"
	usageAwakening  = "❌ 사용법: `!각성 [이름]`"
	usageImpulse    = "❌ 사용법: `!충동 [이름]`"
	usageDLois      = "❌ 사용법: `!D로 [번호] [이름]`"
	loisStatNotice  = "'로이스'는 이 명령어로 조정할 수 없습니다. `!로이스` 명령어를 사용하세요."
	notANumberFmt   = "❌ **%s**는 숫자가 아닙니다. 숫자 값만 입력해주세요."
)

// nameRe accepts the three quoting forms: "a b", [a b], bare. Group 4
// is whatever follows the name.
var nameRe = regexp.MustCompile(`^(?:"([^"]+)"|\[([^\]]+)\]|(\S+))\s*(.*)$`)

// statDeltaRe is the compact stat-delta form: !침식률+5, !HP=0.
var statDeltaRe = regexp.MustCompile(`^!([가-힣A-Za-z]+)([+=\-])(\d+)$`)

// comboCondRe is the combo condition token: an integer followed by a
// direction arrow.
var comboCondRe = regexp.MustCompile(`^\d+[↑↓]$`)

// ExtractName strips the quoting delimiters from a name token. All
// three forms resolve to the same inner string.
func ExtractName(tok string) string {
	if len(tok) >= 2 {
		if strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
			return tok[1 : len(tok)-1]
		}
		if strings.HasPrefix(tok, "[") && strings.HasSuffix(tok, "]") {
			return tok[1 : len(tok)-1]
		}
	}
	return tok
}

// splitName consumes one name argument (any quoting form) and returns
// the remainder of the line.
func splitName(s string) (name, rest string, ok bool) {
	m := nameRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return "", "", false
	}
	name = m[1]
	if name == "" {
		name = m[2]
	}
	if name == "" {
		name = m[3]
	}
	return name, strings.TrimSpace(m[4]), name != ""
}

// nextToken consumes one whitespace-delimited token, returning the rest
// of the line verbatim (leading space trimmed).
func nextToken(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i+1:])
	}
	return s, ""
}

// matcher binds a command literal to its argument grammar. Matchers are
// tried in order; a literal that is a prefix of another must come after
// the longer one, which table_test pins down.
type matcher struct {
	literal string
	// joined permits the argument to follow the literal without a
	// separating space (the combo-invoke form !@"이름").
	joined bool
	parse  func(rest string) (Command, error)
}

var matchers = []matcher{
	{literal: "!시트입력", parse: parseSheetSet},
	{literal: "!시트확인", parse: noArg(SheetShow{})},
	{literal: "!지정해제", parse: noArg(Undesignate{})},
	{literal: "!지정", parse: parseDesignate},
	{literal: "!판정", parse: parseRoll},
	{literal: "!등장침식", parse: noArg(EntryErosion{})},
	{literal: "!등침", parse: noArg(EntryErosion{})},
	{literal: "!콤보삭제", parse: nameOnly(usageComboDel, func(n string) Command { return ComboDelete{Name: n} })},
	{literal: "!콤보", parse: parseComboStore},
	{literal: "!@", joined: true, parse: parseComboInvoke},
	{literal: "!로이스삭제", parse: nameOnly(usageLoisDel, func(n string) Command { return LoisDelete{Name: n} })},
	{literal: "!로이스", parse: parseLoisAdd},
	{literal: "!타이터스", parse: nameOnly(usageTitus, func(n string) Command { return Titus{Name: n} })},
	{literal: "!캐릭터리셋", parse: parseReset},
	{literal: "!캐릭터삭제", parse: nameOnly(usageCharDel, func(n string) Command { return CharacterDelete{Name: n} })},
	{literal: "!리셋", parse: parseReset},
	{literal: "!코드네임", parse: descriptor(FieldCodeName, usageCodeName)},
	{literal: "!이모지", parse: parseEmoji},
	{literal: "!커버", parse: descriptor(FieldCover, usageCover)},
	{literal: "!웍스", parse: descriptor(FieldWorks, usageWorks)},
	{literal: "!브리드", parse: descriptor(FieldBreed, usageBreed)},
	{literal: "!신드롬", parse: parseSyndromes},
	{literal: "!각성", parse: descriptor(FieldAwakening, usageAwakening)},
	{literal: "!충동", parse: descriptor(FieldImpulse, usageImpulse)},
	{literal: "!D로", parse: parseDLois},
	{literal: "!도움", parse: noArg(Help{})},
	{literal: "!업데이트", parse: parseUpdate},
}

// Parse turns one line of chat into a command. Non-command text yields
// ErrNotCommand; unclaimed !-prefixed text yields ErrUnknownCommand;
// grammar violations yield a *UsageError.
func Parse(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "!") {
		return nil, ErrNotCommand
	}
	for _, m := range matchers {
		switch {
		case line == m.literal:
			return m.parse("")
		case m.joined && strings.HasPrefix(line, m.literal):
			return m.parse(strings.TrimSpace(line[len(m.literal):]))
		case strings.HasPrefix(line, m.literal+" "):
			return m.parse(strings.TrimSpace(line[len(m.literal)+1:]))
		}
	}
	if sm := statDeltaRe.FindStringSubmatch(line); sm != nil {
		return parseStatDelta(sm)
	}
	return nil, ErrUnknownCommand
}

func noArg(c Command) func(string) (Command, error) {
	return func(string) (Command, error) { return c, nil }
}

func nameOnly(usageMsg string, build func(name string) Command) func(string) (Command, error) {
	return func(rest string) (Command, error) {
		name, remainder, ok := splitName(rest)
		if !ok || remainder != "" {
			return nil, usage(usageMsg)
		}
		return build(name), nil
	}
}

func descriptor(field DescriptorField, usageMsg string) func(string) (Command, error) {
	return func(rest string) (Command, error) {
		if rest == "" {
			return nil, usage(usageMsg)
		}
		value := rest
		if name, remainder, ok := splitName(rest); ok && remainder == "" {
			value = name
		}
		return SetDescriptor{Field: field, Value: value}, nil
	}
}

func parseSheetSet(rest string) (Command, error) {
	name, remainder, ok := splitName(rest)
	if !ok || remainder == "" {
		return nil, usage(usageSheetSet)
	}
	fields := strings.Fields(remainder)
	if len(fields) < 2 || len(fields)%2 != 0 {
		return nil, usage(usagePairs)
	}
	pairs := make([]AttrPair, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return nil, usage(fmt.Sprintf(notANumberFmt, fields[i+1]))
		}
		pairs = append(pairs, AttrPair{Key: fields[i], Value: v})
	}
	return SheetSet{Name: name, Pairs: pairs}, nil
}

func parseDesignate(rest string) (Command, error) {
	name, remainder, ok := splitName(rest)
	if !ok || remainder != "" {
		return nil, usage(usageDesignate)
	}
	return Designate{Name: name}, nil
}

func parseRoll(rest string) (Command, error) {
	token, _ := nextToken(rest)
	if token == "" {
		return nil, usage(usageRoll)
	}
	return Roll{Token: token}, nil
}

func parseStatDelta(sm []string) (Command, error) {
	stat := sm[1]
	if stat == "로이스" {
		return nil, usage(loisStatNotice)
	}
	v, err := strconv.Atoi(sm[3])
	if err != nil {
		return nil, usage(fmt.Sprintf(notANumberFmt, sm[3]))
	}
	return StatDelta{Stat: stat, Op: Op(sm[2][0]), Value: v}, nil
}

func parseComboStore(rest string) (Command, error) {
	name, remainder, ok := splitName(rest)
	if !ok || remainder == "" {
		return nil, usage(usageCombo)
	}
	cond, body := nextToken(remainder)
	if !comboCondRe.MatchString(cond) || body == "" {
		return nil, usage(usageCombo)
	}
	return ComboStore{Name: name, Condition: cond, Body: body}, nil
}

func parseComboInvoke(rest string) (Command, error) {
	name, remainder, ok := splitName(rest)
	if !ok || remainder != "" {
		return nil, usage(usageComboCall)
	}
	return ComboInvoke{Name: name}, nil
}

func parseLoisAdd(rest string) (Command, error) {
	name, remainder, ok := splitName(rest)
	if !ok {
		return nil, usage(usageLois)
	}
	pEmotion, remainder := nextToken(remainder)
	nEmotion, description := nextToken(remainder)
	if pEmotion == "" || nEmotion == "" || description == "" {
		return nil, usage(usageLois)
	}
	return LoisAdd{Name: name, PEmotion: pEmotion, NEmotion: nEmotion, Description: description}, nil
}

func parseReset(rest string) (Command, error) {
	return Reset{Target: strings.TrimSpace(rest)}, nil
}

func parseEmoji(rest string) (Command, error) {
	emoji, _ := nextToken(rest)
	if emoji == "" {
		return nil, usage(usageEmoji)
	}
	return SetDescriptor{Field: FieldEmoji, Value: emoji}, nil
}

func parseSyndromes(rest string) (Command, error) {
	names := strings.Fields(rest)
	if len(names) < 1 || len(names) > 3 {
		return nil, usage(usageSyndrome)
	}
	return SetSyndromes{Names: names}, nil
}

func parseDLois(rest string) (Command, error) {
	no, name := nextToken(rest)
	if no == "" || name == "" {
		return nil, usage(usageDLois)
	}
	return SetDLois{No: no, Name: name}, nil
}

func parseUpdate(rest string) (Command, error) {
	kind, message := nextToken(rest)
	return Update{Kind: kind, Message: message}, nil
}
