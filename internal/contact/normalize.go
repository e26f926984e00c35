package contact

// normalize.go provides per-field cleaning functions for raw contact data.
//
// All functions are pure and total: any string input, including empty,
// produces a normalized (possibly empty) string. Structural validation is
// a separate concern handled in validate.go.

import (
	"regexp"
	"strings"

	"github.com/JonMunkholm/ContactCleaner/internal/csvio"
)

// nonPhoneRegex strips everything except digits and '+' from phone input.
var nonPhoneRegex = regexp.MustCompile(`[^0-9+]`)

// nonDigitRegex strips everything except digits.
var nonDigitRegex = regexp.MustCompile(`[^0-9]`)

// NormalizeSpaces trims leading/trailing whitespace and collapses any run
// of whitespace (spaces, tabs, newlines) into a single ASCII space.
func NormalizeSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanName normalizes whitespace and capitalizes each word, including the
// parts of hyphenated names: "  amy-walker   jones" -> "Amy-Walker Jones".
func CleanName(raw string) string {
	name := NormalizeSpaces(raw)
	if name == "" {
		return ""
	}

	words := strings.Split(name, " ")
	for i, word := range words {
		parts := strings.Split(word, "-")
		for j, part := range parts {
			parts[j] = capitalize(part)
		}
		words[i] = strings.Join(parts, "-")
	}

	return strings.Join(words, " ")
}

// CleanEmail normalizes whitespace and lowercases the address.
// Validity is checked separately by IsValidEmail.
func CleanEmail(raw string) string {
	return strings.ToLower(NormalizeSpaces(raw))
}

// CleanCompany normalizes whitespace and title-cases every word.
// Abbreviations like "Ltd" or "PLC" are not special-cased; "acme ltd"
// becomes "Acme Ltd".
func CleanCompany(raw string) string {
	company := NormalizeSpaces(raw)
	if company == "" {
		return ""
	}

	words := strings.Split(company, " ")
	for i, word := range words {
		words[i] = capitalize(word)
	}

	return strings.Join(words, " ")
}

// CleanPhone reduces a phone number to a pure digit string, rewriting a
// literal +44 country prefix to the UK national 0 prefix.
//
// Numbers written as 0044... are deliberately left alone; only the literal
// +44 prefix triggers the rewrite.
func CleanPhone(raw string) string {
	phone := NormalizeSpaces(raw)

	// Keep only digits and plus so the +44 prefix check sees "+447700..."
	phone = nonPhoneRegex.ReplaceAllString(phone, "")

	if strings.HasPrefix(phone, "+44") {
		phone = "0" + phone[3:]
	}

	// Finally keep only digits
	return nonDigitRegex.ReplaceAllString(phone, "")
}

// CleanContact applies the field cleaners to a raw CSV record. Missing
// columns are treated as empty input.
func CleanContact(rec csvio.Record) Contact {
	return Contact{
		Name:    CleanName(rec.Get("name")),
		Email:   CleanEmail(rec.Get("email")),
		Phone:   CleanPhone(rec.Get("phone")),
		Company: CleanCompany(rec.Get("company")),
	}
}

// capitalize uppercases the first character and lowercases the rest.
// Empty input (e.g. from a leading or doubled hyphen) stays empty.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r := []rune(s)
	return strings.ToUpper(string(r[:1])) + strings.ToLower(string(r[1:]))
}
