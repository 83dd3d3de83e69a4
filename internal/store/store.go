// Package store owns the three persisted chat documents (character
// sheets, active-character pointers, combos) plus the version counter.
// Every mutation is a whole-document rewrite: load the latest document,
// mutate it in memory, save it back. Nothing else writes the backing
// documents.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dom/dx3bot/internal/domain"
	"github.com/dom/dx3bot/internal/repository"
)

// SheetsDoc maps serverID → userID → character name → sheet.
type SheetsDoc map[string]map[string]map[string]*domain.CharacterSheet

// ActiveDoc maps serverID → userID → the currently designated character.
// A missing entry means no character is active.
type ActiveDoc map[string]map[string]string

// CombosDoc maps serverID → userID → character → combo name → tiers.
type CombosDoc map[string]map[string]map[string]map[string]domain.ComboTiers

// Character returns the sheet at the full key path, or nil when any
// segment is missing. Callers treat nil as "no such character".
func (d SheetsDoc) Character(serverID, userID, name string) *domain.CharacterSheet {
	return d[serverID][userID][name]
}

// Ensure returns the sheet at the key path, creating every missing
// level on the way.
func (d SheetsDoc) Ensure(serverID, userID, name string) *domain.CharacterSheet {
	if d[serverID] == nil {
		d[serverID] = make(map[string]map[string]*domain.CharacterSheet)
	}
	if d[serverID][userID] == nil {
		d[serverID][userID] = make(map[string]*domain.CharacterSheet)
	}
	if d[serverID][userID][name] == nil {
		d[serverID][userID][name] = &domain.CharacterSheet{}
	}
	return d[serverID][userID][name]
}

// Delete removes a character sheet, reporting whether it existed.
func (d SheetsDoc) Delete(serverID, userID, name string) bool {
	if d[serverID][userID][name] == nil {
		return false
	}
	delete(d[serverID][userID], name)
	return true
}

// Get returns the active character for the pair, or "" when none.
func (d ActiveDoc) Get(serverID, userID string) string {
	return d[serverID][userID]
}

// Set designates a character for the pair.
func (d ActiveDoc) Set(serverID, userID, name string) {
	if d[serverID] == nil {
		d[serverID] = make(map[string]string)
	}
	d[serverID][userID] = name
}

// Clear removes the designation, reporting whether one existed.
func (d ActiveDoc) Clear(serverID, userID string) bool {
	if _, ok := d[serverID][userID]; !ok {
		return false
	}
	delete(d[serverID], userID)
	return true
}

// Character returns the combo set of one character, or nil.
func (d CombosDoc) Character(serverID, userID, name string) map[string]domain.ComboTiers {
	return d[serverID][userID][name]
}

// EnsureCombo returns the tier map for a combo name, creating every
// missing level on the way.
func (d CombosDoc) EnsureCombo(serverID, userID, character, combo string) domain.ComboTiers {
	if d[serverID] == nil {
		d[serverID] = make(map[string]map[string]map[string]domain.ComboTiers)
	}
	if d[serverID][userID] == nil {
		d[serverID][userID] = make(map[string]map[string]domain.ComboTiers)
	}
	if d[serverID][userID][character] == nil {
		d[serverID][userID][character] = make(map[string]domain.ComboTiers)
	}
	if d[serverID][userID][character][combo] == nil {
		d[serverID][userID][character][combo] = make(domain.ComboTiers)
	}
	return d[serverID][userID][character][combo]
}

// DeleteCharacter removes every combo of a character, reporting whether
// any existed.
func (d CombosDoc) DeleteCharacter(serverID, userID, character string) bool {
	if d[serverID][userID][character] == nil {
		return false
	}
	delete(d[serverID][userID], character)
	return true
}

// DeleteCombo removes one combo (all tiers), reporting whether it
// existed.
func (d CombosDoc) DeleteCombo(serverID, userID, character, combo string) bool {
	if d[serverID][userID][character][combo] == nil {
		return false
	}
	delete(d[serverID][userID][character], combo)
	return true
}

// Store is the single mutation path for the persisted documents.
type Store struct {
	repo repository.DocumentRepository
}

func New(repo repository.DocumentRepository) *Store {
	return &Store{repo: repo}
}

func (s *Store) Sheets(ctx context.Context) (SheetsDoc, error) {
	doc := make(SheetsDoc)
	if err := s.load(ctx, repository.DocSheets, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) SaveSheets(ctx context.Context, doc SheetsDoc) error {
	return s.save(ctx, repository.DocSheets, doc)
}

func (s *Store) Active(ctx context.Context) (ActiveDoc, error) {
	doc := make(ActiveDoc)
	if err := s.load(ctx, repository.DocActive, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) SaveActive(ctx context.Context, doc ActiveDoc) error {
	return s.save(ctx, repository.DocActive, doc)
}

func (s *Store) Combos(ctx context.Context) (CombosDoc, error) {
	doc := make(CombosDoc)
	if err := s.load(ctx, repository.DocCombos, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *Store) SaveCombos(ctx context.Context, doc CombosDoc) error {
	return s.save(ctx, repository.DocCombos, doc)
}

func (s *Store) Version(ctx context.Context) (domain.Version, error) {
	data, err := s.repo.Load(ctx, repository.DocVersion)
	if err != nil {
		return domain.Version{}, fmt.Errorf("load %s: %w", repository.DocVersion, err)
	}
	if data == nil {
		return domain.InitialVersion, nil
	}
	var v domain.Version
	if err := json.Unmarshal(data, &v); err != nil {
		return domain.Version{}, fmt.Errorf("decode %s: %w", repository.DocVersion, err)
	}
	return v, nil
}

func (s *Store) SaveVersion(ctx context.Context, v domain.Version) error {
	return s.save(ctx, repository.DocVersion, v)
}

// ActiveCharacter returns the designated character name for the pair,
// or "" when none is designated.
func (s *Store) ActiveCharacter(ctx context.Context, serverID, userID string) (string, error) {
	doc, err := s.Active(ctx)
	if err != nil {
		return "", err
	}
	return doc.Get(serverID, userID), nil
}

// CharacterData returns the named sheet or nil when any path segment is
// missing. It never returns a not-found error.
func (s *Store) CharacterData(ctx context.Context, serverID, userID, name string) (*domain.CharacterSheet, error) {
	doc, err := s.Sheets(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Character(serverID, userID, name), nil
}

func (s *Store) load(ctx context.Context, name string, out any) error {
	data, err := s.repo.Load(ctx, name)
	if err != nil {
		return fmt.Errorf("load %s: %w", name, err)
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, name string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := s.repo.Save(ctx, name, data); err != nil {
		return fmt.Errorf("save %s: %w", name, err)
	}
	return nil
}
