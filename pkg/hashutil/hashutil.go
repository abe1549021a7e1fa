package hashutil

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HMACSHA256Hex returns the hex-encoded HMAC-SHA256 of the trimmed input
// under key. Used to derive storage keys for secrets we must never persist
// in the clear.
func HMACSHA256Hex(key string, input string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(strings.TrimSpace(input)))
	return hex.EncodeToString(mac.Sum(nil))
}
