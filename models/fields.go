// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"sort"
)

// AutofillField is a fillable view found by the structure parser.
type AutofillField struct {
	ID       AutofillID
	Hints    []string
	SaveType SaveType
	Focused  bool
}

// FieldsCollection groups the autofill fields of one structure and indexes
// them by hint.
type FieldsCollection struct {
	ids          []AutofillID
	hintToFields map[string][]AutofillField
	allHints     []string
	focusedHints []string
	saveType     SaveType
}

// NewFieldsCollection returns an empty collection.
func NewFieldsCollection() *FieldsCollection {
	return &FieldsCollection{hintToFields: make(map[string][]AutofillField)}
}

// Add registers field. Hints are recorded once each, in first-seen order.
func (c *FieldsCollection) Add(field AutofillField) {
	c.saveType |= field.SaveType
	c.ids = append(c.ids, field.ID)

	for _, hint := range field.Hints {
		if _, seen := c.hintToFields[hint]; !seen {
			c.allHints = append(c.allHints, hint)
		}
		c.hintToFields[hint] = append(c.hintToFields[hint], field)

		if field.Focused && !slices.Contains(c.focusedHints, hint) {
			c.focusedHints = append(c.focusedHints, hint)
		}
	}
}

// AutofillIDs returns the ids of every field in insertion order.
func (c *FieldsCollection) AutofillIDs() []AutofillID { return c.ids }

// AllHints returns every hint seen in the structure.
func (c *FieldsCollection) AllHints() []string { return c.allHints }

// FocusedHints returns the hints of the focused fields.
func (c *FieldsCollection) FocusedHints() []string { return c.focusedHints }

// FieldsForHint returns the fields declaring hint.
func (c *FieldsCollection) FieldsForHint(hint string) []AutofillField { return c.hintToFields[hint] }

// SaveType returns the union of the fields' save types.
func (c *FieldsCollection) SaveType() SaveType { return c.saveType }

// Len returns the number of fields.
func (c *FieldsCollection) Len() int { return len(c.ids) }

// FieldValue is a captured value for one hint. Exactly one member is set.
type FieldValue struct {
	Text   *string `json:"text,omitempty"`
	Toggle *bool   `json:"toggle,omitempty"`
	Date   *int64  `json:"date,omitempty"`
}

// TextValue is a shorthand for a text [FieldValue].
func TextValue(s string) FieldValue {
	return FieldValue{Text: &s}
}

// IsEmpty reports whether v carries nothing worth filling.
func (v FieldValue) IsEmpty() bool {
	if v.Text != nil {
		return *v.Text == ""
	}
	return v.Toggle == nil && v.Date == nil
}

// FieldRecord holds the values captured for one form occurrence, keyed by hint.
type FieldRecord struct {
	// DatasetName uniquely names the record.
	DatasetName string `json:"dataset_name"`

	// Values maps an autofill hint to its captured value.
	Values map[string]FieldValue `json:"values"`
}

// HelpsWithHints reports whether r has a non-empty value for any of hints.
func (r FieldRecord) HelpsWithHints(hints []string) bool {
	for _, hint := range hints {
		if v, ok := r.Values[hint]; ok && !v.IsEmpty() {
			return true
		}
	}
	return false
}

// ApplyToFields maps r's values onto the fields of c and returns the values by
// autofill id. The result is empty when nothing in r matches c.
func (r FieldRecord) ApplyToFields(c *FieldsCollection) map[AutofillID]FieldValue {
	values := make(map[AutofillID]FieldValue)
	for _, hint := range c.AllHints() {
		v, ok := r.Values[hint]
		if !ok || v.IsEmpty() {
			continue
		}
		for _, field := range c.FieldsForHint(hint) {
			values[field.ID] = v
		}
	}
	return values
}

// FieldDataset maps a dataset name to its record.
type FieldDataset map[string]FieldRecord

// Names returns the dataset names in ascending order.
func (d FieldDataset) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
