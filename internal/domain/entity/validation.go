package entity

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	domainerrors "catalog/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

const (
	MaxNameLength     = 50
	MaxEmailLength    = 100
	MaxTitleLength    = 100
	MaxAuthorLength   = 100
	MinBookYear       = 1900
	MinPasswordLength = 8
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

var fieldValidator = validator.New()

// ValidateSellerProfile checks name lengths and the email format.
func ValidateSellerProfile(p SellerProfile) error {
	verr := domainerrors.NewValidationError()

	checkRequiredText(verr, "first_name", p.FirstName, MaxNameLength)
	checkRequiredText(verr, "last_name", p.LastName, MaxNameLength)

	switch {
	case strings.TrimSpace(p.Email) == "":
		verr.Add(loc("email"), "field required", "value_error.missing")
	case utf8.RuneCountInString(p.Email) > MaxEmailLength:
		verr.Add(loc("email"), tooLong(MaxEmailLength), "value_error.any_str.max_length")
	case fieldValidator.Var(p.Email, "email") != nil:
		verr.Add(loc("email"), "value is not a valid email address", "value_error.email")
	}

	return verr.OrNil()
}

// ValidatePassword requires at least eight non-whitespace characters with one
// lower case letter, one upper case letter and one digit.
func ValidatePassword(password string) error {
	verr := domainerrors.NewValidationError()

	if len(password) > MaxPasswordBytes {
		verr.Add(loc("password"), "ensure this value has at most 72 bytes", "value_error.any_str.max_length")

		return verr
	}

	// Letter and digit classes are ASCII only; whitespace is any Unicode space.
	var lower, upper, digit, space bool
	for _, r := range password {
		switch {
		case 'a' <= r && r <= 'z':
			lower = true
		case 'A' <= r && r <= 'Z':
			upper = true
		case '0' <= r && r <= '9':
			digit = true
		case unicode.IsSpace(r):
			space = true
		}
	}

	if utf8.RuneCountInString(password) < MinPasswordLength || space || !lower || !upper || !digit {
		verr.Add(loc("password"), "Invalid password", "value_error.str.regex")
	}

	return verr.OrNil()
}

// ValidateBookDetails checks required text fields, the year floor and the page count.
func ValidateBookDetails(d BookDetails) error {
	verr := domainerrors.NewValidationError()

	checkRequiredText(verr, "title", d.Title, MaxTitleLength)
	checkRequiredText(verr, "author", d.Author, MaxAuthorLength)

	if d.Year < MinBookYear {
		verr.Add(loc("year"), "ensure this value is greater than or equal to "+strconv.Itoa(MinBookYear), "value_error.number.not_ge")
	}

	if d.CountPages < 0 {
		verr.Add(loc("pages"), "ensure this value is greater than or equal to 0", "value_error.number.not_ge")
	}

	return verr.OrNil()
}

func checkRequiredText(verr *domainerrors.ValidationError, field, value string, maxLen int) {
	switch {
	case strings.TrimSpace(value) == "":
		verr.Add(loc(field), "field required", "value_error.missing")
	case utf8.RuneCountInString(value) > maxLen:
		verr.Add(loc(field), tooLong(maxLen), "value_error.any_str.max_length")
	}
}

func loc(field string) []string {
	return []string{"body", field}
}

func tooLong(n int) string {
	return "ensure this value has at most " + strconv.Itoa(n) + " characters"
}
