// Package model defines the Bitwarden vault item data model as emitted
// by the Bitwarden CLI.
package model

import "fmt"

// ItemKind is the integer type tag the Bitwarden CLI uses to
// discriminate vault items.
type ItemKind int

// Bitwarden item kinds.
const (
	KindLogin      ItemKind = 1
	KindSecureNote ItemKind = 2
	KindCard       ItemKind = 3
	KindIdentity   ItemKind = 4
)

// String returns the string representation of the ItemKind.
func (k ItemKind) String() string {
	switch k {
	case KindLogin:
		return "login"
	case KindSecureNote:
		return "secure-note"
	case KindCard:
		return "card"
	case KindIdentity:
		return "identity"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Supported reports whether the kind is one the translator can handle.
func (k ItemKind) Supported() bool {
	return k >= KindLogin && k <= KindIdentity
}

// FieldKind is the integer type tag for custom fields.
type FieldKind int

// Bitwarden custom field kinds.
const (
	FieldText    FieldKind = 0
	FieldHidden  FieldKind = 1
	FieldBoolean FieldKind = 2
	FieldLinked  FieldKind = 3
)

// String returns the string representation of the FieldKind.
func (k FieldKind) String() string {
	switch k {
	case FieldText:
		return "text"
	case FieldHidden:
		return "hidden"
	case FieldBoolean:
		return "boolean"
	case FieldLinked:
		return "linked"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}
