package testutil

import (
	"fmt"

	"github.com/dom/dx3bot/internal/domain"
	"github.com/dom/dx3bot/internal/store"
	"github.com/google/uuid"
)

// SheetBuilder creates test character sheets with a builder pattern
type SheetBuilder struct {
	name  string
	sheet *domain.CharacterSheet
}

// NewSheetBuilder creates a new SheetBuilder with a unique default name
func NewSheetBuilder() *SheetBuilder {
	return &SheetBuilder{
		name:  fmt.Sprintf("char_%s", uuid.New().String()[:8]),
		sheet: &domain.CharacterSheet{},
	}
}

// WithName sets the character name
func (b *SheetBuilder) WithName(name string) *SheetBuilder {
	b.name = name
	return b
}

// WithStat sets a numeric stat
func (b *SheetBuilder) WithStat(key string, value int) *SheetBuilder {
	b.sheet.SetStat(key, value)
	return b
}

// WithEmoji sets the sheet emoji
func (b *SheetBuilder) WithEmoji(emoji string) *SheetBuilder {
	b.sheet.Emoji = emoji
	return b
}

// WithLois appends a relationship with pre-formatted emotions
func (b *SheetBuilder) WithLois(name, pEmotion, nEmotion, description string) *SheetBuilder {
	b.sheet.UpsertLois(domain.Lois{
		Name:        name,
		PEmotion:    domain.FormatEmotion("P", pEmotion),
		NEmotion:    domain.FormatEmotion("N", nEmotion),
		Description: description,
	})
	return b
}

// Build returns the character name and sheet
func (b *SheetBuilder) Build() (string, *domain.CharacterSheet) {
	return b.name, b.sheet
}

// BuildInto places the sheet into a sheets document under the given keys
func (b *SheetBuilder) BuildInto(doc store.SheetsDoc, serverID, userID string) (string, *domain.CharacterSheet) {
	sheet := doc.Ensure(serverID, userID, b.name)
	*sheet = *b.sheet
	return b.name, sheet
}

// ComboBuilder creates test combo tier sets
type ComboBuilder struct {
	name  string
	tiers domain.ComboTiers
}

// NewComboBuilder creates a new ComboBuilder with a unique default name
func NewComboBuilder() *ComboBuilder {
	return &ComboBuilder{
		name:  fmt.Sprintf("combo_%s", uuid.New().String()[:8]),
		tiers: make(domain.ComboTiers),
	}
}

// WithName sets the combo name
func (b *ComboBuilder) WithName(name string) *ComboBuilder {
	b.name = name
	return b
}

// WithTier stores a body under a condition token such as "99↓"
func (b *ComboBuilder) WithTier(condition, body string) *ComboBuilder {
	b.tiers[condition] = body
	return b
}

// Build returns the combo name and tiers
func (b *ComboBuilder) Build() (string, domain.ComboTiers) {
	return b.name, b.tiers
}

// BuildInto places the combo into a combos document under the given keys
func (b *ComboBuilder) BuildInto(doc store.CombosDoc, serverID, userID, character string) (string, domain.ComboTiers) {
	tiers := doc.EnsureCombo(serverID, userID, character, b.name)
	for cond, body := range b.tiers {
		tiers[cond] = body
	}
	return b.name, tiers
}
