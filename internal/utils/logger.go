package utils

import (
	"log"
	"strings"
)

// LogAction prints one audit line per dashboard action: invoice mutations,
// sign-ins, PDF renders, cache hits and misses. Detail should stay
// summarized; never log raw form payloads or credentials.
func LogAction(requestID, action, detail string) {
	rid := strings.TrimSpace(requestID)
	if rid == "" {
		rid = "-"
	}
	log.Printf("[DASHBOARD] action=%s request_id=%s %s", action, rid, detail)
}
