// Package translate converts Bitwarden vault items into 1Password item
// documents. Translation is pure: no I/O, deterministic, and safe for
// concurrent use.
package translate

import (
	"fmt"
	"net/url"

	"github.com/nvinuesa/opmigrate/internal/model"
	"github.com/nvinuesa/opmigrate/internal/opitem"
)

// customSectionID groups translated custom fields in the destination item.
const customSectionID = "custom_fields"

// Translate converts a single item into a 1Password document. It returns
// a ValidationError when a required source field is absent and an
// UnsupportedTypeError for item kinds outside {login, secure note, card,
// identity}. No partial documents are returned.
func Translate(item *model.Item) (*opitem.Document, error) {
	var doc *opitem.Document
	var err error

	switch item.Type {
	case model.KindLogin:
		doc, err = translateLogin(item)
	case model.KindSecureNote:
		doc = translateSecureNote(item)
	case model.KindCard:
		doc, err = translateCard(item)
	case model.KindIdentity:
		doc = translateIdentity(item)
	default:
		return nil, &UnsupportedTypeError{Kind: item.Type}
	}
	if err != nil {
		return nil, err
	}

	appendCustomFields(item, doc)

	return doc, nil
}

func translateLogin(item *model.Item) (*opitem.Document, error) {
	login := item.Login
	if login == nil || login.Username == nil {
		return nil, &ValidationError{Item: item.Name, Field: "login.username", Reason: "username is required"}
	}
	if login.Password == nil {
		return nil, &ValidationError{Item: item.Name, Field: "login.password", Reason: "password is required"}
	}

	doc := &opitem.Document{
		Title:    item.Name,
		Category: opitem.CategoryLogin,
		Fields: []opitem.Field{
			{
				ID:      "username",
				Type:    opitem.TypeString,
				Purpose: opitem.PurposeUsername,
				Label:   "username",
				Value:   *login.Username,
			},
			{
				ID:      "password",
				Type:    opitem.TypeConcealed,
				Purpose: opitem.PurposePassword,
				Label:   "password",
				Value:   *login.Password,
			},
			{
				ID:      "notesPlain",
				Type:    opitem.TypeString,
				Purpose: opitem.PurposeNotes,
				Label:   "notes",
				Value:   item.Notes,
			},
		},
	}

	for _, u := range login.URIs {
		doc.URLs = append(doc.URLs, opitem.URL{HRef: u.URI})
	}

	if login.TOTP != "" {
		doc.Fields = append(doc.Fields, opitem.Field{
			ID:    "totp",
			Type:  opitem.TypeOTP,
			Value: otpauthURI(item.Name, *login.Username, login.TOTP),
		})
	}

	return doc, nil
}

// otpauthURI builds the otpauth URI 1Password expects for one-time
// password fields.
func otpauthURI(name, username, seed string) string {
	return fmt.Sprintf("otpauth://totp/%s:%s?secret=%s",
		url.PathEscape(name), url.PathEscape(username), seed)
}

func translateSecureNote(item *model.Item) *opitem.Document {
	return &opitem.Document{
		Title:    item.Name,
		Category: opitem.CategorySecureNote,
		Fields: []opitem.Field{
			{
				ID:      "notesPlain",
				Type:    opitem.TypeString,
				Purpose: opitem.PurposeNotes,
				Label:   "Notes",
				Value:   item.Notes,
			},
		},
	}
}

func translateCard(item *model.Item) (*opitem.Document, error) {
	card := item.Card
	if card == nil {
		return nil, &ValidationError{Item: item.Name, Field: "card", Reason: "card data is required"}
	}

	holder, err := requiredField(item.Name, card.CardholderName, "card.cardholderName")
	if err != nil {
		return nil, err
	}
	brand, err := requiredField(item.Name, card.Brand, "card.brand")
	if err != nil {
		return nil, err
	}
	number, err := requiredField(item.Name, card.Number, "card.number")
	if err != nil {
		return nil, err
	}
	code, err := requiredField(item.Name, card.Code, "card.code")
	if err != nil {
		return nil, err
	}
	month, err := requiredField(item.Name, card.ExpMonth, "card.expMonth")
	if err != nil {
		return nil, err
	}
	year, err := requiredField(item.Name, card.ExpYear, "card.expYear")
	if err != nil {
		return nil, err
	}

	expiry, err := MonthYear(month, year)
	if err != nil {
		return nil, err
	}

	return &opitem.Document{
		Title:    item.Name,
		Category: opitem.CategoryCreditCard,
		Fields: []opitem.Field{
			{
				ID:      "notesPlain",
				Type:    opitem.TypeString,
				Purpose: opitem.PurposeNotes,
				Label:   "notes",
				Value:   item.Notes,
			},
			{ID: "cardholder", Type: opitem.TypeString, Label: "cardholder name", Value: holder},
			{ID: "type", Type: opitem.TypeCardBrand, Label: "type", Value: brand},
			{ID: "ccnum", Type: opitem.TypeCardNumber, Label: "number", Value: number},
			{ID: "cvv", Type: opitem.TypeConcealed, Label: "verification number", Value: code},
			{ID: "expiry", Type: opitem.TypeMonthYear, Label: "expiry date", Value: expiry},
		},
	}, nil
}

// requiredField unwraps a nullable source value, failing when it is absent.
func requiredField(itemName string, value *string, field string) (string, error) {
	if value == nil {
		return "", &ValidationError{Item: itemName, Field: field, Reason: "value is required"}
	}
	return *value, nil
}

// Identity section IDs.
const (
	sectionAddress  = "address"
	sectionName     = "name"
	sectionInternet = "internet"
)

func translateIdentity(item *model.Item) *opitem.Document {
	ident := item.Identity
	if ident == nil {
		ident = &model.Identity{}
	}

	nameRef := &opitem.SectionRef{ID: sectionName}
	addressRef := &opitem.SectionRef{ID: sectionAddress}
	internetRef := &opitem.SectionRef{ID: sectionInternet}

	return &opitem.Document{
		Title:    item.Name,
		Category: opitem.CategoryIdentity,
		Sections: []opitem.Section{
			{ID: sectionAddress, Label: "Address"},
			{ID: sectionName, Label: "Identification"},
			{ID: sectionInternet, Label: "Internet Details"},
		},
		Fields: []opitem.Field{
			{
				ID:      "notesPlain",
				Type:    opitem.TypeString,
				Purpose: opitem.PurposeNotes,
				Label:   "notes",
				Value:   item.Notes,
			},
			{ID: "title", Section: nameRef, Type: opitem.TypeString, Label: "title", Value: ident.Title},
			{ID: "firstname", Section: nameRef, Type: opitem.TypeString, Label: "first name", Value: ident.FirstName},
			{ID: "middlename", Section: nameRef, Type: opitem.TypeString, Label: "middle name", Value: ident.MiddleName},
			{ID: "lastname", Section: nameRef, Type: opitem.TypeString, Label: "last name", Value: ident.LastName},
			{ID: "company", Section: nameRef, Type: opitem.TypeString, Label: "company", Value: ident.Company},
			{ID: "address", Section: addressRef, Type: opitem.TypeString, Label: "address", Value: AddressLines(ident)},
			{ID: "phone", Section: addressRef, Type: opitem.TypePhone, Label: "phone", Value: ident.Phone},
			{ID: "username", Section: internetRef, Type: opitem.TypeString, Label: "username", Value: ident.Username},
			{ID: "email", Section: internetRef, Type: opitem.TypeString, Label: "email", Value: ident.Email},
		},
	}
}

// appendCustomFields runs for every kind: it appends the item's custom
// fields under a "custom_fields" section, dropping linked fields, which
// have no destination representation. Source order is preserved.
func appendCustomFields(item *model.Item, doc *opitem.Document) {
	var fields []opitem.Field
	for _, f := range item.Fields {
		if f.Type == model.FieldLinked {
			continue
		}
		fieldType := opitem.TypeString
		if f.Type == model.FieldHidden {
			fieldType = opitem.TypeConcealed
		}
		fields = append(fields, opitem.Field{
			Section: &opitem.SectionRef{ID: customSectionID},
			Type:    fieldType,
			Label:   f.Name,
			Value:   f.Value,
		})
	}

	if len(fields) == 0 {
		return
	}

	doc.Sections = append(doc.Sections, opitem.Section{ID: customSectionID, Label: "Custom Fields"})
	doc.Fields = append(doc.Fields, fields...)
}
