package courier

import "strings"

func isValidUserID(userID string) bool {
	return strings.TrimSpace(userID) != ""
}
