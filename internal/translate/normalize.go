package translate

import (
	"fmt"
	"strings"

	"github.com/nvinuesa/opmigrate/internal/model"
)

// MonthYear formats a card expiry date as "YYYY/MM". Both inputs are
// required. Years of one or two digits are assumed to be in the 2000s;
// four-digit years are used verbatim; any other length is rejected.
func MonthYear(month, year string) (string, error) {
	if month == "" {
		return "", &ValidationError{Field: "card.expMonth", Reason: "month is required"}
	}
	if year == "" {
		return "", &ValidationError{Field: "card.expYear", Reason: "year is required"}
	}

	if len(month) < 2 {
		month = "0" + month
	}

	switch {
	case len(year) == 1:
		year = "200" + year
	case len(year) == 2:
		year = "20" + year
	case len(year) == 4:
		// Used as-is.
	default:
		return "", &ValidationError{Field: "card.expYear", Reason: fmt.Sprintf("invalid year %q", year)}
	}

	return year + "/" + month, nil
}

// AddressLines builds a multi-line address from the identity fields,
// keeping only non-empty components. The city/postal-code pair and the
// state/country pair each share a line; the pair line is emitted when
// either half is set. Returns "" when every component is empty.
func AddressLines(ident *model.Identity) string {
	var lines []string
	for _, l := range []string{ident.Address1, ident.Address2, ident.Address3} {
		if l != "" {
			lines = append(lines, l)
		}
	}
	if ident.City != "" || ident.PostalCode != "" {
		lines = append(lines, ident.City+" "+ident.PostalCode)
	}
	if ident.State != "" || ident.Country != "" {
		lines = append(lines, ident.State+", "+ident.Country)
	}
	return strings.Join(lines, "\n")
}
