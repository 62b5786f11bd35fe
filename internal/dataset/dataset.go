package dataset

import "encoding/json"

// Customer and Product records are opaque: the fixture defines their
// fields, the service only moves them from the document to the wire.
type (
	Customer = json.RawMessage
	Product  = json.RawMessage
)

// Document is the parsed bundled fixture. Either section may be absent
// from the source JSON; a nil pointer records that.
type Document struct {
	CRM       *CRMSection       `json:"crm,omitempty"`
	Inventory *InventorySection `json:"inventory,omitempty"`
}

type CRMSection struct {
	Customers []Customer `json:"customers"`
}

type InventorySection struct {
	Products []Product `json:"products"`
}

// LoadError is fatal to startup: the bundled fixture is missing or does
// not parse as a Document. There is no degraded mode behind it.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string { return "load dataset: " + e.Err.Error() }

func (e *LoadError) Unwrap() error { return e.Err }
