package utils

import (
	"log"
	"strings"
)

// LogEvent writes one grep-friendly line per back-office action, tagged so
// service logs line up with the HTTP access log by request_id. Messages
// carry identifiers and totals only; customer details stay out of logs.
func LogEvent(requestID, module, action, message string) {
	log.Printf("[%s] action=%s request_id=%s %s",
		strings.ToUpper(strings.TrimSpace(module)), action, strings.TrimSpace(requestID), message)
}
