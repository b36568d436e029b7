package opitem

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks the structural invariants of a document: a known
// category, unique section IDs, and every field section reference
// resolving to a declared section.
func (d *Document) Validate() error {
	return validation.ValidateStruct(d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Category, validation.Required, validation.In(
			CategoryLogin, CategorySecureNote, CategoryCreditCard, CategoryIdentity,
		)),
		validation.Field(&d.Sections, validation.By(uniqueSectionIDs)),
		validation.Field(&d.Fields, validation.By(d.resolvableSectionRefs)),
	)
}

// uniqueSectionIDs rejects duplicate or empty section IDs.
func uniqueSectionIDs(value interface{}) error {
	sections, _ := value.([]Section)
	seen := make(map[string]bool, len(sections))
	for _, s := range sections {
		if s.ID == "" {
			return fmt.Errorf("section %q has an empty id", s.Label)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate section id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

// resolvableSectionRefs rejects fields that point at undeclared sections.
func (d *Document) resolvableSectionRefs(value interface{}) error {
	fields, _ := value.([]Field)
	for _, f := range fields {
		if f.Section == nil {
			continue
		}
		if !d.HasSection(f.Section.ID) {
			return fmt.Errorf("field %q references undeclared section %q", f.Label, f.Section.ID)
		}
	}
	return nil
}
