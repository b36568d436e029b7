// Package opitem defines the 1Password item document accepted on stdin
// by `op item create --format=json`.
package opitem

// Category is the 1Password item category.
type Category string

// Item categories emitted by the translator.
const (
	CategoryLogin      Category = "LOGIN"
	CategorySecureNote Category = "SECURE_NOTE"
	CategoryCreditCard Category = "CREDIT_CARD"
	CategoryIdentity   Category = "IDENTITY"
)

// FieldType is the 1Password field type.
type FieldType string

// Field types.
const (
	TypeString     FieldType = "STRING"
	TypeConcealed  FieldType = "CONCEALED"
	TypeURL        FieldType = "URL"
	TypeCardNumber FieldType = "CREDIT_CARD_NUMBER"
	TypeCardBrand  FieldType = "CREDIT_CARD_TYPE"
	TypeMonthYear  FieldType = "MONTH_YEAR"
	TypePhone      FieldType = "PHONE"
	TypeOTP        FieldType = "OTP"
)

// Purpose marks a field as one of the well-known login fields.
type Purpose string

// Field purposes.
const (
	PurposeUsername Purpose = "USERNAME"
	PurposePassword Purpose = "PASSWORD"
	PurposeNotes    Purpose = "NOTES"
)

// Section is a named group of fields within a document.
type Section struct {
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// SectionRef points a field at a section declared in the document.
type SectionRef struct {
	ID string `json:"id"`
}

// Field is a single field of a document.
type Field struct {
	ID      string      `json:"id,omitempty"`
	Section *SectionRef `json:"section,omitempty"`
	Type    FieldType   `json:"type"`
	Purpose Purpose     `json:"purpose,omitempty"`
	Label   string      `json:"label,omitempty"`
	Value   string      `json:"value"`
}

// URL is a website entry of a login document.
type URL struct {
	HRef string `json:"href"`
}

// Document is a complete 1Password item ready for creation. It is built
// fresh per source item and never mutated after translation completes.
type Document struct {
	Title    string    `json:"title"`
	Category Category  `json:"category"`
	Sections []Section `json:"sections,omitempty"`
	Fields   []Field   `json:"fields"`
	URLs     []URL     `json:"urls,omitempty"`
}

// HasSection reports whether a section with the given ID is declared.
func (d *Document) HasSection(id string) bool {
	for _, s := range d.Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}
