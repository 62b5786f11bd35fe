package dataset

import "encoding/json"

// Store is the read accessor over a loaded Document. The document is
// injected once, at construction, and never mutated afterwards, so
// concurrent readers need no locking.
type Store struct {
	doc *Document
}

func NewStore(doc *Document) *Store {
	return &Store{doc: doc}
}

// Ready reports whether a document has been injected. Only the readiness
// probe cares; the accessors below tolerate a missing document themselves.
func (s *Store) Ready() bool {
	return s != nil && s.doc != nil
}

// Customers returns the customer records in fixture order. A missing
// document, missing crm section and empty customer list all come back as
// the same empty slice; callers never see nil.
func (s *Store) Customers() []Customer {
	if !s.Ready() || s.doc.CRM == nil {
		return orEmpty(nil)
	}
	return orEmpty(s.doc.CRM.Customers)
}

// Products is the same contract over the inventory section.
func (s *Store) Products() []Product {
	if !s.Ready() || s.doc.Inventory == nil {
		return orEmpty(nil)
	}
	return orEmpty(s.doc.Inventory.Products)
}

// orEmpty is the single place where "absent" folds into "empty". Keeping
// it non-nil also keeps the JSON encoding at [] rather than null.
func orEmpty(recs []json.RawMessage) []json.RawMessage {
	if len(recs) == 0 {
		return []json.RawMessage{}
	}
	return recs
}
