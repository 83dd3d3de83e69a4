package postgres_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/dom/dx3bot/internal/repository"
	"github.com/dom/dx3bot/internal/repository/postgres"
	"github.com/dom/dx3bot/internal/store"
	"github.com/dom/dx3bot/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRepository_LoadMissing(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewDocumentRepository(testDB.DB)
	ctx := context.Background()

	data, err := repo.Load(ctx, repository.DocSheets)
	require.NoError(t, err)
	assert.Nil(t, data, "missing document loads as nil, not an error")
}

func TestDocumentRepository_RoundTrip(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewDocumentRepository(testDB.DB)
	ctx := context.Background()

	doc := make(store.SheetsDoc)
	testutil.NewSheetBuilder().
		WithName("테스트").
		WithEmoji("🔸").
		WithStat("HP", 20).
		WithStat("침식률", 65).
		WithLois("배신자", "증오*", "분노", "나를 배신한 동료").
		BuildInto(doc, "srv1", "u1")

	payload, err := json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, repository.DocSheets, payload))

	got, err := repo.Load(ctx, repository.DocSheets)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
}

func TestDocumentRepository_SaveOverwrites(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewDocumentRepository(testDB.DB)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, repository.DocVersion, []byte(`{"major":1,"minor":0,"patch":0}`)))
	require.NoError(t, repo.Save(ctx, repository.DocVersion, []byte(`{"major":1,"minor":1,"patch":0}`)))

	got, err := repo.Load(ctx, repository.DocVersion)
	require.NoError(t, err)
	assert.JSONEq(t, `{"major":1,"minor":1,"patch":0}`, string(got))
}

// The store's whole-document cycle against a real database: load,
// mutate, save, reload.
func TestStoreAgainstPostgres(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	st := store.New(postgres.NewDocumentRepository(testDB.DB))
	ctx := context.Background()

	combos, err := st.Combos(ctx)
	require.NoError(t, err)
	name, _ := testutil.NewComboBuilder().
		WithName("연속 사격").
		WithTier("99↓", "《C: 발로르(2)》").
		WithTier("100↑", "《C: 발로르(3)》").
		BuildInto(combos, "srv1", "u1", "테스트")
	require.NoError(t, st.SaveCombos(ctx, combos))

	reloaded, err := st.Combos(ctx)
	require.NoError(t, err)
	tiers := reloaded.Character("srv1", "u1", "테스트")[name]
	require.NotNil(t, tiers)
	assert.Equal(t, "《C: 발로르(2)》", tiers["99↓"])
	assert.Equal(t, "《C: 발로르(3)》", tiers["100↑"])
}
