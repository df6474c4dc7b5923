package utils

import (
	"strings"
)

// NormalizeEmail lowercases and trims an address so lookups and
// duplicate checks behave consistently.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	// Gmail ignores dots and + aliases in the local part.
	if strings.HasSuffix(email, "@gmail.com") {
		parts := strings.Split(email, "@")
		if len(parts) == 2 {
			localPart := strings.ReplaceAll(parts[0], ".", "")
			if plusIndex := strings.Index(localPart, "+"); plusIndex != -1 {
				localPart = localPart[:plusIndex]
			}
			email = localPart + "@" + parts[1]
		}
	}

	return email
}

// MaskEmail hides most of the local part for log output.
func MaskEmail(email string) string {
	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return email
	}

	localPart := parts[0]
	if len(localPart) <= 2 {
		return email
	}

	masked := string(localPart[0]) + strings.Repeat("*", len(localPart)-2) + string(localPart[len(localPart)-1])
	return masked + "@" + parts[1]
}
