package logging

import "regexp"

const RedactedText = "[REDACTED]"

var (
	// password=xxx in key/value DSNs
	passwordPattern = regexp.MustCompile(`(?i)(password|pwd)=[^;&\s]+`)

	// user:pass@host in URL DSNs
	userInfoPattern = regexp.MustCompile(`://([^:/@\s]+):[^@\s]+@`)
)

// SanitizeConnectionString hides credentials in a database URL or DSN.
func SanitizeConnectionString(connStr string) string {
	if connStr == "" {
		return ""
	}
	sanitized := passwordPattern.ReplaceAllString(connStr, "${1}="+RedactedText)
	return userInfoPattern.ReplaceAllString(sanitized, "://${1}:"+RedactedText+"@")
}
