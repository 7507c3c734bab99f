package validate

import (
	"regexp"
	"strings"

	"github.com/ShiraazMoollatjie/goluhn"
)

// Canonical referral code format: kind prefix, hyphen, five alphanumerics.
var codeRegex = regexp.MustCompile(`^(PT|AF)-[A-Z0-9]{5}$`)

// NormalizeCode uppercases a raw code value and inserts the hyphen into
// legacy seven-character values (PTABC12 -> PT-ABC12). Returns an empty
// string when the value cannot be brought to the canonical form.
func NormalizeCode(raw string) string {
	code := strings.ToUpper(strings.TrimSpace(raw))
	if len(code) == 7 && (strings.HasPrefix(code, "PT") || strings.HasPrefix(code, "AF")) && code[2] != '-' {
		code = code[:2] + "-" + code[2:]
	}
	if !codeRegex.MatchString(code) {
		return ""
	}
	return code
}

// IsValidCode reports whether the value normalizes to a canonical code.
func IsValidCode(raw string) bool {
	return NormalizeCode(raw) != ""
}

// IsAffiliateCode reports whether a canonical code value is affiliate-kind.
func IsAffiliateCode(code string) bool {
	return strings.HasPrefix(strings.ToUpper(code), "AF")
}

// IsLuhn reports whether s passes the Luhn checksum. Payment references
// recorded on paid invoices are required to pass it.
func IsLuhn(s string) bool {
	err := goluhn.Validate(s)
	return err == nil
}
