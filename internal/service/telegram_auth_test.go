package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"
)

// signLogin computes the widget hash for the given fields, mirroring what
// Telegram's servers do.
func signLogin(t *testing.T, botToken string, fields map[string]string) url.Values {
	t.Helper()
	var parts []string
	for k, v := range fields {
		parts = append(parts, k+"="+v)
	}
	sort.Strings(parts)
	dataString := strings.Join(parts, "\n")

	secret := sha256.Sum256([]byte(botToken))
	h := hmac.New(sha256.New, secret[:])
	h.Write([]byte(dataString))

	vals := url.Values{}
	for k, v := range fields {
		vals.Set(k, v)
	}
	vals.Set("hash", hex.EncodeToString(h.Sum(nil)))
	return vals
}

func TestValidateTelegramLogin_Valid(t *testing.T) {
	botToken := "test-bot-token"
	vals := signLogin(t, botToken, map[string]string{
		"id":         "12345",
		"first_name": "Alice",
		"auth_date":  strconv.FormatInt(time.Now().Unix(), 10),
	})

	if !ValidateTelegramLogin(vals, botToken) {
		t.Fatal("expected valid login payload")
	}
}

func TestValidateTelegramLogin_Tampered(t *testing.T) {
	botToken := "test-bot-token"
	vals := signLogin(t, botToken, map[string]string{
		"id":         "12345",
		"first_name": "Alice",
		"auth_date":  strconv.FormatInt(time.Now().Unix(), 10),
	})
	vals.Set("id", "99999")

	if ValidateTelegramLogin(vals, botToken) {
		t.Fatal("expected tampered payload to be rejected")
	}
}

func TestValidateTelegramLogin_WrongToken(t *testing.T) {
	vals := signLogin(t, "token-a", map[string]string{
		"id":        "1",
		"auth_date": strconv.FormatInt(time.Now().Unix(), 10),
	})

	if ValidateTelegramLogin(vals, "token-b") {
		t.Fatal("expected payload signed with another token to be rejected")
	}
}

func TestValidateTelegramLogin_Stale(t *testing.T) {
	botToken := "test-bot-token"
	vals := signLogin(t, botToken, map[string]string{
		"id":        "1",
		"auth_date": strconv.FormatInt(time.Now().Add(-48*time.Hour).Unix(), 10),
	})

	if ValidateTelegramLogin(vals, botToken) {
		t.Fatal("expected stale payload to be rejected")
	}
}

func TestValidateTelegramLogin_MissingHash(t *testing.T) {
	vals := url.Values{}
	vals.Set("id", "1")
	vals.Set("auth_date", strconv.FormatInt(time.Now().Unix(), 10))

	if ValidateTelegramLogin(vals, "token") {
		t.Fatal("expected payload without hash to be rejected")
	}
}
