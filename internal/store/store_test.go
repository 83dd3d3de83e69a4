package store_test

import (
	"context"
	"testing"

	"github.com/dom/dx3bot/internal/domain"
	"github.com/dom/dx3bot/internal/repository/memory"
	"github.com/dom/dx3bot/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *store.Store {
	return store.New(memory.New())
}

func TestStore_DefaultsOnMissing(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	sheets, err := s.Sheets(ctx)
	require.NoError(t, err)
	assert.Empty(t, sheets)

	active, err := s.Active(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	combos, err := s.Combos(ctx)
	require.NoError(t, err)
	assert.Empty(t, combos)

	v, err := s.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.InitialVersion, v)
}

func TestStore_SheetRoundTrip(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	sheets, err := s.Sheets(ctx)
	require.NoError(t, err)

	c := sheets.Ensure("srv", "usr", "테스트")
	c.CodeName = "그림자"
	c.SetStat("HP", 20)
	c.SetStat(domain.StatErosion, 65)
	c.UpsertLois(domain.Lois{Name: "배신자", PEmotion: "【P: 증오】", NEmotion: "N: 분노", Description: "동료"})
	require.NoError(t, s.SaveSheets(ctx, sheets))

	reloaded, err := s.Sheets(ctx)
	require.NoError(t, err)
	assert.Equal(t, sheets, reloaded)

	got := reloaded.Character("srv", "usr", "테스트")
	require.NotNil(t, got)
	assert.Equal(t, 20, got.Stat("HP"))
	assert.Equal(t, "그림자", got.CodeName)
	require.Len(t, got.Lois, 1)
}

func TestStore_CharacterData_MissingPath(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	c, err := s.CharacterData(ctx, "srv", "usr", "없음")
	require.NoError(t, err)
	assert.Nil(t, c, "missing path segments yield nil, not an error")
}

func TestStore_ActiveCharacter(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	name, err := s.ActiveCharacter(ctx, "srv", "usr")
	require.NoError(t, err)
	assert.Empty(t, name)

	active, err := s.Active(ctx)
	require.NoError(t, err)
	active.Set("srv", "usr", "테스트")
	require.NoError(t, s.SaveActive(ctx, active))

	name, err = s.ActiveCharacter(ctx, "srv", "usr")
	require.NoError(t, err)
	assert.Equal(t, "테스트", name)

	assert.True(t, active.Clear("srv", "usr"))
	assert.False(t, active.Clear("srv", "usr"))
}

func TestStore_CombosRoundTrip(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	combos, err := s.Combos(ctx)
	require.NoError(t, err)
	combos.EnsureCombo("srv", "usr", "테스트", "연타")["99↓"] = "본문A"
	combos.EnsureCombo("srv", "usr", "테스트", "연타")["100↑"] = "본문B"
	require.NoError(t, s.SaveCombos(ctx, combos))

	reloaded, err := s.Combos(ctx)
	require.NoError(t, err)
	tiers := reloaded.Character("srv", "usr", "테스트")["연타"]
	require.Len(t, tiers, 2)
	assert.Equal(t, "본문A", tiers["99↓"])

	assert.True(t, reloaded.DeleteCombo("srv", "usr", "테스트", "연타"))
	assert.False(t, reloaded.DeleteCombo("srv", "usr", "테스트", "연타"))
	assert.False(t, reloaded.DeleteCharacter("srv", "usr", "테스트2"))
}

func TestStore_VersionRoundTrip(t *testing.T) {
	s := newStore()
	ctx := context.Background()

	v, err := s.Version(ctx)
	require.NoError(t, err)
	next := v.Bump(domain.BumpMinor)
	require.NoError(t, s.SaveVersion(ctx, next))

	got, err := s.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, next, got)
}
