package model

// Item represents a single vault item as returned by `bw list items`.
//
// Exactly one of Login, Card, or Identity is populated, matching Type.
// Fields that the CLI emits as null are decoded as pointers so that an
// absent value can be told apart from an empty string; the translator
// treats absence of a required value as a per-item validation failure.
type Item struct {
	ID          string        `json:"id"`
	FolderID    string        `json:"folderId,omitempty"`
	Type        ItemKind      `json:"type"`
	Name        string        `json:"name"`
	Notes       string        `json:"notes"`
	Favorite    bool          `json:"favorite,omitempty"`
	Login       *Login        `json:"login,omitempty"`
	Card        *Card         `json:"card,omitempty"`
	Identity    *Identity     `json:"identity,omitempty"`
	Fields      []CustomField `json:"fields,omitempty"`
	Attachments []Attachment  `json:"attachments,omitempty"`
}

// Login holds the login-specific data of an item.
type Login struct {
	URIs     []URI   `json:"uris"`
	Username *string `json:"username"`
	Password *string `json:"password"`
	TOTP     string  `json:"totp"`
}

// URI is a single URI entry of a login item.
type URI struct {
	URI   string `json:"uri"`
	Match *int   `json:"match,omitempty"`
}

// Card holds the payment card data of an item. All values are required
// for translation but may be null in the CLI output.
type Card struct {
	CardholderName *string `json:"cardholderName"`
	Brand          *string `json:"brand"`
	Number         *string `json:"number"`
	ExpMonth       *string `json:"expMonth"`
	ExpYear        *string `json:"expYear"`
	Code           *string `json:"code"`
}

// Identity holds the identity data of an item.
type Identity struct {
	Title      string `json:"title"`
	FirstName  string `json:"firstName"`
	MiddleName string `json:"middleName"`
	LastName   string `json:"lastName"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2"`
	Address3   string `json:"address3"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Company    string `json:"company"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Username   string `json:"username"`
}

// CustomField is a user-defined field attached to an item.
type CustomField struct {
	Name  string    `json:"name"`
	Value string    `json:"value"`
	Type  FieldKind `json:"type"`
}

// Attachment describes a binary attachment of an item. The content is
// fetched separately by attachment ID.
type Attachment struct {
	ID       string `json:"id"`
	FileName string `json:"fileName"`
}
