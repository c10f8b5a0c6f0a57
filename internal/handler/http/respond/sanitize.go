package respond

import "regexp"

// dbPasswordPattern masks credentials embedded in DSN-style URLs before they
// reach the logs.
var dbPasswordPattern = regexp.MustCompile(`://([^:/@]+):([^@]+)@`)

// SanitizeError returns the error message with embedded secrets masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return dbPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
