package utils

import (
	"log"
	"strings"
)

// LogAction prints one line per domain action (listing, booking, review,
// docs), tagged with the request id so it correlates with the request
// log. detail should be a short summary, never raw payload.
func LogAction(requestID, scope, action, detail string) {
	line := "action=" + scope + "." + action + " request_id=" + strings.TrimSpace(requestID)
	if detail = strings.TrimSpace(detail); detail != "" {
		line += " " + detail
	}
	log.Print(line)
}
