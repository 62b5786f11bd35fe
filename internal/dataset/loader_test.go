package dataset

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseDocument_FullFixture(t *testing.T) {
	raw := []byte(`{
		"crm": {"customers": [{"id":1,"name":"A"},{"id":2,"name":"B"}]},
		"inventory": {"products": [{"id":"p1"},{"id":"p2"},{"id":"p3"}]}
	}`)

	doc, err := ParseDocument(raw)
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}

	if doc.CRM == nil || len(doc.CRM.Customers) != 2 {
		t.Fatalf("crm section: %#v", doc.CRM)
	}
	if doc.Inventory == nil || len(doc.Inventory.Products) != 3 {
		t.Fatalf("inventory section: %#v", doc.Inventory)
	}
}

func TestParseDocument_MissingSections(t *testing.T) {
	doc, err := ParseDocument([]byte(`{}`))
	if err != nil {
		t.Fatalf("ParseDocument: %v", err)
	}
	if doc.CRM != nil || doc.Inventory != nil {
		t.Fatalf("expected both sections absent, got %#v", doc)
	}
}

func TestParseDocument_Malformed(t *testing.T) {
	cases := map[string]string{
		"truncated":          `{"crm": {"customers": [`,
		"root not an object": `"customers"`,
		"section wrong type": `{"crm": ["not", "an", "object"]}`,
		"records not a list": `{"inventory": {"products": {"id": "p1"}}}`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDocument([]byte(raw))
			if err == nil {
				t.Fatalf("expected error for %q", raw)
			}

			var le *LoadError
			if !errors.As(err, &le) {
				t.Fatalf("expected *LoadError, got %T: %v", err, err)
			}
			if le.Unwrap() == nil {
				t.Fatalf("LoadError should wrap its cause")
			}
		})
	}
}

func TestParseDocument_EmptyInput(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte("   \n")} {
		var le *LoadError
		if _, err := ParseDocument(raw); !errors.As(err, &le) {
			t.Fatalf("empty input %q: expected *LoadError, got %v", raw, err)
		}
	}
}

func TestLoad_EmbeddedFixture(t *testing.T) {
	doc, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	s := NewStore(doc)
	if len(s.Customers()) == 0 {
		t.Fatalf("embedded fixture has no customers")
	}
	if len(s.Products()) == 0 {
		t.Fatalf("embedded fixture has no products")
	}

	// Records stay opaque but must round-trip as JSON objects.
	for _, c := range s.Customers() {
		var m map[string]any
		if err := json.Unmarshal(c, &m); err != nil {
			t.Fatalf("customer record not an object: %v", err)
		}
	}
}
