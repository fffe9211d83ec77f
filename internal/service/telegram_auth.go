package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ValidateTelegramLogin verifies a Telegram Login Widget callback. The widget
// redirects with user fields plus an HMAC-SHA256 hash over the sorted
// key=value pairs (hash excluded), keyed by SHA-256 of the bot token. Also
// rejects payloads older than a day to limit replay.
func ValidateTelegramLogin(values url.Values, botToken string) bool {
	hash := values.Get("hash")
	if hash == "" {
		return false
	}

	var dataCheck []string
	for k, v := range values {
		if k == "hash" {
			continue
		}
		dataCheck = append(dataCheck, k+"="+strings.Join(v, ""))
	}

	sort.Strings(dataCheck)
	dataString := strings.Join(dataCheck, "\n")

	secret := sha256.Sum256([]byte(botToken))
	h := hmac.New(sha256.New, secret[:])
	h.Write([]byte(dataString))

	calculated := h.Sum(nil)
	provided, err := hex.DecodeString(hash)
	if err != nil {
		return false
	}

	if !hmac.Equal(calculated, provided) {
		return false
	}

	authDateStr := values.Get("auth_date")
	if authDateStr == "" {
		return false
	}
	authDate, err := strconv.ParseInt(authDateStr, 10, 64)
	if err != nil {
		return false
	}

	now := time.Now().Unix()
	// allow small clock skew, reject anything older than a day
	if now-authDate > 86400 || authDate-now > 300 {
		return false
	}

	return true
}
