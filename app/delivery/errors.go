package delivery

import (
	"strings"
)

// permanentSignals are error-text fragments indicating a destination is
// gone for good: removed, blocked or deactivated. Matching one triggers
// inline deregistration.
var permanentSignals = []string{
	"kicked",
	"not found",
	"deactivated",
	"blocked",
	"forbidden",
}

// IsPermanentSendError reports whether a delivery error means the
// destination should be deregistered rather than retried.
func IsPermanentSendError(err error) bool {
	if err == nil {
		return false
	}

	text := strings.ToLower(err.Error())
	for _, signal := range permanentSignals {
		if strings.Contains(text, signal) {
			return true
		}
	}
	return false
}
