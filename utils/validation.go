// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var phoneReplacer = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// International phone numbers: optional + prefix followed by 7-15 digits.
var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// ValidatePhone checks if a phone number is in a valid international format
// after stripping common separators.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(phoneReplacer.Replace(phone))
}
