package models

// Item is a named tradable entity with a stable system-assigned identifier.
//
// Items are created implicitly the first time an unseen name appears in a
// trade submission. They are never updated and never deleted; an item whose
// trades have all been removed is kept as a harmless orphan. Names are
// globally unique and case-sensitive.
type Item struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
