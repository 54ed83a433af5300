package handlers

import (
	"encoding/base64"
	"encoding/json"

	"github.com/gin-gonic/gin"
)

// Flash messages ride in their own cookie so they survive the
// POST → redirect → GET hop, then get consumed exactly once.
const (
	flashCookieName = "watchlist_flash"
	flashCookieTTL  = 300 // seconds; a flash that old is abandoned anyway
)

func encodeFlashes(msgs []string) string {
	b, err := json.Marshal(msgs)
	if err != nil {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeFlashes(raw string) []string {
	b, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return nil
	}
	var msgs []string
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil
	}
	return msgs
}

// queueFlash appends a one-shot notification for the next rendered page.
func queueFlash(c *gin.Context, msg string) {
	var pending []string
	if raw, err := c.Cookie(flashCookieName); err == nil {
		pending = decodeFlashes(raw)
	}
	pending = append(pending, msg)
	c.SetCookie(flashCookieName, encodeFlashes(pending), flashCookieTTL, "/", "", false, true)
}

// consumeFlashes drains the queue: returns all pending messages and deletes
// the cookie so nothing is shown twice.
func consumeFlashes(c *gin.Context) []string {
	raw, err := c.Cookie(flashCookieName)
	if err != nil || raw == "" {
		return []string{}
	}
	c.SetCookie(flashCookieName, "", -1, "/", "", false, true)
	msgs := decodeFlashes(raw)
	if msgs == nil {
		return []string{}
	}
	return msgs
}
