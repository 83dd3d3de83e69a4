package repository

import "context"

// Names of the persisted JSON documents.
const (
	DocSheets  = "sheets"
	DocActive  = "active_characters"
	DocCombos  = "combos"
	DocVersion = "version"
)

// DocumentRepository stores named JSON documents. Load returns nil data
// (not an error) for a document that has never been saved; Save always
// overwrites the whole document.
type DocumentRepository interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}
