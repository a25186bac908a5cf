package branddata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Store persists one brand document per organization.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// Load returns the organization's brand document. When none has been saved
// yet it returns a fresh document seeded with the registry defaults.
func (s *Store) Load(ctx context.Context, orgID int64) (*Document, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM brand_documents WHERE org_id = $1`,
		orgID,
	).Scan(&raw)

	if err == sql.ErrNoRows {
		doc := New()
		doc.EnsureDefaults()
		return doc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load brand document: %w", err)
	}

	var root map[string]any
	if err := json.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("failed to decode brand document: %w", err)
	}

	doc := New()
	doc.Replace(root)
	// Slots added to the registry after the document was saved still get
	// their defaults.
	doc.EnsureDefaults()
	return doc, nil
}

// Save upserts the organization's brand document.
func (s *Store) Save(ctx context.Context, orgID int64, doc *Document) error {
	raw, err := json.Marshal(doc.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode brand document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO brand_documents (org_id, document, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (org_id) DO UPDATE SET document = $2, updated_at = NOW()
	`, orgID, raw)
	if err != nil {
		return fmt.Errorf("failed to save brand document: %w", err)
	}
	return nil
}
