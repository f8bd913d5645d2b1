package feed

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Fingerprint derives the stable dedup identifier for a (link, title) pair.
func Fingerprint(link, title string) string {
	content := fmt.Sprintf("%s|%s", link, title)

	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}
