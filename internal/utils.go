package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateRecordID creates a unique ID for a translation record based on
// timestamp and source text. Format: epochMillis_md5(text)[:8]
func GenerateRecordID(text string) string {
	epochMillis := time.Now().UnixMilli()

	hash := md5.Sum([]byte(text))
	hashStr := hex.EncodeToString(hash[:])[:8] // Use first 8 chars of MD5

	return fmt.Sprintf("%d_%s", epochMillis, hashStr)
}

// SanitizeKey creates a safe file name from a storage key
func SanitizeKey(s string) string {
	result := ""
	for _, r := range s {
		if isAlphaNumeric(r) || r == '-' || r == '_' || r == '.' {
			result += string(r)
		} else {
			result += "_"
		}
	}
	return result
}

// isAlphaNumeric checks if a rune is alphanumeric (Latin or Cyrillic)
func isAlphaNumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') || (r >= 'а' && r <= 'я') ||
		(r >= 'А' && r <= 'Я')
}
