package utils

import "strings"

// CleanJSON strips the markdown code fence that chat models like to wrap JSON
// answers in.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	// opening ```json or ```
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")

	clean = strings.TrimSuffix(clean, "```")

	return strings.TrimSpace(clean)
}
