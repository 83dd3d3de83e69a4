// Package command parses one line of chat into a typed command. The
// parser is pure: it never touches the store or the gateway, and every
// malformed input resolves to a UsageError carrying the user-facing
// usage string instead of a crash.
package command

// Command is the tagged union of every supported command shape.
type Command interface{ isCommand() }

// AttrPair is one key/value pair of the sheet-set command.
type AttrPair struct {
	Key   string
	Value int
}

// SheetSet registers or updates a character: !시트입력 "이름" 항목 값 ...
type SheetSet struct {
	Name  string
	Pairs []AttrPair
}

// Designate activates a character: !지정 "이름"
type Designate struct{ Name string }

// Undesignate clears the active character: !지정해제
type Undesignate struct{}

// SheetShow renders the active character's sheet: !시트확인
type SheetShow struct{}

// Roll emits a dice expression for an attribute: !판정 백병
type Roll struct{ Token string }

// Op is the operator of a stat-delta command.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpSet Op = '='
)

// StatDelta adjusts a numeric stat: !침식률+5, !HP=0
type StatDelta struct {
	Stat  string
	Op    Op
	Value int
}

// EntryErosion starts the entry-corruption round trip: !등침, !등장침식
type EntryErosion struct{}

// ComboStore upserts one combo tier: !콤보 "이름" 99↓ 본문
type ComboStore struct {
	Name      string
	Condition string
	Body      string
}

// ComboInvoke looks up the tier matching the erosion rate: !@"이름"
type ComboInvoke struct{ Name string }

// ComboDelete removes every tier of a combo: !콤보삭제 "이름"
type ComboDelete struct{ Name string }

// LoisAdd upserts a relationship: !로이스 "이름" P감정 N감정 내용
type LoisAdd struct {
	Name        string
	PEmotion    string
	NEmotion    string
	Description string
}

// LoisDelete removes a relationship: !로이스삭제 "이름"
type LoisDelete struct{ Name string }

// Titus escalates a relationship: !타이터스 "이름"
type Titus struct{ Name string }

// Reset clears data of the active character: !리셋 [콤보|로이스|항목]
// An empty Target deletes the whole character and its combos.
type Reset struct{ Target string }

// CharacterDelete removes a character by name: !캐릭터삭제 "이름"
type CharacterDelete struct{ Name string }

// DescriptorField names a text field set by its own command.
type DescriptorField string

const (
	FieldCodeName  DescriptorField = "codeName"
	FieldEmoji     DescriptorField = "emoji"
	FieldCover     DescriptorField = "cover"
	FieldWorks     DescriptorField = "works"
	FieldBreed     DescriptorField = "breed"
	FieldAwakening DescriptorField = "awakening"
	FieldImpulse   DescriptorField = "impulse"
)

// SetDescriptor sets one text field of the active character.
type SetDescriptor struct {
	Field DescriptorField
	Value string
}

// SetSyndromes sets up to three syndromes: !신드롬 발로르 샐러맨더
type SetSyndromes struct{ Names []string }

// SetDLois sets the D-Lois number and name: !D로 98 Legacy: ...
type SetDLois struct {
	No   string
	Name string
}

// Help requests the command reference embeds: !도움
type Help struct{}

// Update is the owner-only version bump: !업데이트 [major|minor|patch] [메시지]
type Update struct {
	Kind    string
	Message string
}

func (SheetSet) isCommand()        {}
func (Designate) isCommand()       {}
func (Undesignate) isCommand()     {}
func (SheetShow) isCommand()       {}
func (Roll) isCommand()            {}
func (StatDelta) isCommand()       {}
func (EntryErosion) isCommand()    {}
func (ComboStore) isCommand()      {}
func (ComboInvoke) isCommand()     {}
func (ComboDelete) isCommand()     {}
func (LoisAdd) isCommand()         {}
func (LoisDelete) isCommand()      {}
func (Titus) isCommand()           {}
func (Reset) isCommand()           {}
func (CharacterDelete) isCommand() {}
func (SetDescriptor) isCommand()   {}
func (SetSyndromes) isCommand()    {}
func (SetDLois) isCommand()        {}
func (Help) isCommand()            {}
func (Update) isCommand()          {}
