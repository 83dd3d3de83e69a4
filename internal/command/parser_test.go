package command_test

import (
	"errors"
	"testing"

	"github.com/dom/dx3bot/internal/command"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractName(t *testing.T) {
	assert.Equal(t, "a b", command.ExtractName(`"a b"`))
	assert.Equal(t, "a b", command.ExtractName("[a b]"))
	assert.Equal(t, "a", command.ExtractName("a"))
	assert.Equal(t, `"a`, command.ExtractName(`"a`), "unterminated quotes pass through")
}

func TestParse_NonCommands(t *testing.T) {
	_, err := command.Parse("그냥 채팅입니다")
	assert.ErrorIs(t, err, command.ErrNotCommand)

	_, err = command.Parse("!없는명령어")
	assert.ErrorIs(t, err, command.ErrUnknownCommand)
}

func TestParse_SheetSet(t *testing.T) {
	cmd, err := command.Parse(`!시트입력 "테스트" HP 20 침식률 65`)
	require.NoError(t, err)
	set := cmd.(command.SheetSet)
	assert.Equal(t, "테스트", set.Name)
	assert.Equal(t, []command.AttrPair{{Key: "HP", Value: 20}, {Key: "침식률", Value: 65}}, set.Pairs)

	// Bracket quoting resolves to the same name.
	cmd, err = command.Parse(`!시트입력 [테스트] 육체 3`)
	require.NoError(t, err)
	assert.Equal(t, "테스트", cmd.(command.SheetSet).Name)
}

func TestParse_SheetSet_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "no arguments", line: "!시트입력"},
		{name: "name only", line: `!시트입력 "테스트"`},
		{name: "odd pair count", line: `!시트입력 "테스트" HP`},
		{name: "odd pair count with value", line: `!시트입력 "테스트" HP 20 침식률`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := command.Parse(tt.line)
			var ue *command.UsageError
			require.ErrorAs(t, err, &ue)
		})
	}

	// A non-integer value names the offending token.
	_, err := command.Parse(`!시트입력 "테스트" HP 스물`)
	var ue *command.UsageError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Message, "스물")
}

func TestParse_DesignateForms(t *testing.T) {
	for _, line := range []string{`!지정 "테스트"`, "!지정 [테스트]", "!지정 테스트"} {
		cmd, err := command.Parse(line)
		require.NoError(t, err, line)
		assert.Equal(t, command.Designate{Name: "테스트"}, cmd)
	}

	_, err := command.Parse("!지정")
	var ue *command.UsageError
	assert.ErrorAs(t, err, &ue)

	cmd, err := command.Parse("!지정해제")
	require.NoError(t, err)
	assert.Equal(t, command.Undesignate{}, cmd)
}

func TestParse_StatDelta(t *testing.T) {
	tests := []struct {
		line string
		want command.StatDelta
	}{
		{line: "!침식률+5", want: command.StatDelta{Stat: "침식률", Op: command.OpAdd, Value: 5}},
		{line: "!HP-10", want: command.StatDelta{Stat: "HP", Op: command.OpSub, Value: 10}},
		{line: "!HP=0", want: command.StatDelta{Stat: "HP", Op: command.OpSet, Value: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			cmd, err := command.Parse(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, cmd)
		})
	}
}

func TestParse_StatDelta_LoisRejected(t *testing.T) {
	_, err := command.Parse("!로이스+5")
	var ue *command.UsageError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Message, "!로이스")
}

func TestParse_Roll(t *testing.T) {
	cmd, err := command.Parse("!판정 백병")
	require.NoError(t, err)
	assert.Equal(t, command.Roll{Token: "백병"}, cmd)

	cmd, err = command.Parse("!판정 운전:4륜")
	require.NoError(t, err)
	assert.Equal(t, command.Roll{Token: "운전:4륜"}, cmd)

	_, err = command.Parse("!판정")
	var ue *command.UsageError
	assert.ErrorAs(t, err, &ue)
}

func TestParse_Combo(t *testing.T) {
	cmd, err := command.Parse(`!콤보 "연속 사격" 99↓ 《C: 발로르(2) + 흑의 철퇴(4)》`)
	require.NoError(t, err)
	assert.Equal(t, command.ComboStore{
		Name:      "연속 사격",
		Condition: "99↓",
		Body:      "《C: 발로르(2) + 흑의 철퇴(4)》",
	}, cmd)

	// Condition must be integer + arrow.
	var ue *command.UsageError
	_, err = command.Parse(`!콤보 "연타" 99 본문`)
	assert.ErrorAs(t, err, &ue)
	_, err = command.Parse(`!콤보 "연타" ↓99 본문`)
	assert.ErrorAs(t, err, &ue)
	_, err = command.Parse(`!콤보 "연타" 99↓`)
	assert.ErrorAs(t, err, &ue)
}

func TestParse_ComboInvoke(t *testing.T) {
	for _, line := range []string{`!@"연타"`, "!@[연타]", "!@연타", `!@ "연타"`} {
		cmd, err := command.Parse(line)
		require.NoError(t, err, line)
		assert.Equal(t, command.ComboInvoke{Name: "연타"}, cmd)
	}

	cmd, err := command.Parse(`!@"연속 사격"`)
	require.NoError(t, err)
	assert.Equal(t, command.ComboInvoke{Name: "연속 사격"}, cmd)
}

func TestParse_ComboDelete(t *testing.T) {
	cmd, err := command.Parse(`!콤보삭제 "연타"`)
	require.NoError(t, err)
	assert.Equal(t, command.ComboDelete{Name: "연타"}, cmd)
}

func TestParse_Lois(t *testing.T) {
	cmd, err := command.Parse(`!로이스 "배신자" 증오* 분노 나를 배신한 동료`)
	require.NoError(t, err)
	assert.Equal(t, command.LoisAdd{
		Name:        "배신자",
		PEmotion:    "증오*",
		NEmotion:    "분노",
		Description: "나를 배신한 동료",
	}, cmd)

	var ue *command.UsageError
	_, err = command.Parse(`!로이스 "배신자" 증오 분노`)
	assert.ErrorAs(t, err, &ue, "description is required")

	cmd, err = command.Parse(`!로이스삭제 "배신자"`)
	require.NoError(t, err)
	assert.Equal(t, command.LoisDelete{Name: "배신자"}, cmd)

	cmd, err = command.Parse(`!타이터스 [배신자]`)
	require.NoError(t, err)
	assert.Equal(t, command.Titus{Name: "배신자"}, cmd)
}

func TestParse_Reset(t *testing.T) {
	cmd, err := command.Parse("!리셋")
	require.NoError(t, err)
	assert.Equal(t, command.Reset{}, cmd)

	cmd, err = command.Parse("!리셋 콤보")
	require.NoError(t, err)
	assert.Equal(t, command.Reset{Target: "콤보"}, cmd)

	cmd, err = command.Parse("!리셋 로이스")
	require.NoError(t, err)
	assert.Equal(t, command.Reset{Target: "로이스"}, cmd)

	cmd, err = command.Parse("!리셋 HP")
	require.NoError(t, err)
	assert.Equal(t, command.Reset{Target: "HP"}, cmd)
}

func TestParse_Descriptors(t *testing.T) {
	cmd, err := command.Parse(`!코드네임 "그림자 검"`)
	require.NoError(t, err)
	assert.Equal(t, command.SetDescriptor{Field: command.FieldCodeName, Value: "그림자 검"}, cmd)

	cmd, err = command.Parse("!커버 대학생")
	require.NoError(t, err)
	assert.Equal(t, command.SetDescriptor{Field: command.FieldCover, Value: "대학생"}, cmd)

	cmd, err = command.Parse("!이모지 🔸")
	require.NoError(t, err)
	assert.Equal(t, command.SetDescriptor{Field: command.FieldEmoji, Value: "🔸"}, cmd)

	cmd, err = command.Parse("!신드롬 발로르 샐러맨더")
	require.NoError(t, err)
	assert.Equal(t, command.SetSyndromes{Names: []string{"발로르", "샐러맨더"}}, cmd)

	var ue *command.UsageError
	_, err = command.Parse("!신드롬 하나 둘 셋 넷")
	assert.ErrorAs(t, err, &ue, "at most three syndromes")

	cmd, err = command.Parse("!D로 98 Legacy: Dream of Abyssal City")
	require.NoError(t, err)
	assert.Equal(t, command.SetDLois{No: "98", Name: "Legacy: Dream of Abyssal City"}, cmd)
}

func TestParse_EntryErosionAliases(t *testing.T) {
	for _, line := range []string{"!등침", "!등장침식"} {
		cmd, err := command.Parse(line)
		require.NoError(t, err, line)
		assert.Equal(t, command.EntryErosion{}, cmd)
	}
}

func TestParse_Update(t *testing.T) {
	cmd, err := command.Parse("!업데이트 major 대규모 개편")
	require.NoError(t, err)
	assert.Equal(t, command.Update{Kind: "major", Message: "대규모 개편"}, cmd)

	cmd, err = command.Parse("!업데이트")
	require.NoError(t, err)
	assert.Equal(t, command.Update{}, cmd)
}

func TestParse_Help(t *testing.T) {
	cmd, err := command.Parse("!도움")
	require.NoError(t, err)
	assert.Equal(t, command.Help{}, cmd)
}

func TestParse_SpecificityOverPrefixes(t *testing.T) {
	// Longer literals must win over their prefixes.
	cmd, err := command.Parse(`!로이스삭제 "배신자"`)
	require.NoError(t, err)
	assert.IsType(t, command.LoisDelete{}, cmd)

	cmd, err = command.Parse("!지정해제")
	require.NoError(t, err)
	assert.IsType(t, command.Undesignate{}, cmd)

	cmd, err = command.Parse(`!콤보삭제 "연타"`)
	require.NoError(t, err)
	assert.IsType(t, command.ComboDelete{}, cmd)
}

func TestParse_UsageErrorIsNotSilent(t *testing.T) {
	_, err := command.Parse("!콤보")
	var ue *command.UsageError
	require.ErrorAs(t, err, &ue)
	assert.False(t, errors.Is(err, command.ErrUnknownCommand))
}
