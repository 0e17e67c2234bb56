package handler

import (
	"net/http"
	"net/url"
	"strings"
)

// Flash is a one-shot notification shown on the next rendered page, the
// client's stand-in for transient toasts. It rides a short-lived cookie and
// is cleared as soon as it is read.
type Flash struct {
	Level   string // "success", "warn" or "error"
	Message string
}

const flashCookie = "flash"

func setFlash(w http.ResponseWriter, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(level + "|" + message),
		Path:     "/",
		HttpOnly: true,
	})
}

func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	raw, err := url.QueryUnescape(c.Value)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(raw, "|")
	if !ok || message == "" {
		return nil
	}
	return &Flash{Level: level, Message: message}
}
