package utils

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
)

const flashSessionName = "blog_flash"

// Flash is a one-shot user-visible message. Category maps onto a CSS class
// ("danger", "success", "info").
type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

type FlashStore struct {
	store *sessions.CookieStore
}

func NewFlashStore(secret string) *FlashStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

// SetSecure restricts the flash cookie to HTTPS.
func (f *FlashStore) SetSecure(secure bool) {
	f.store.Options.Secure = secure
}

func (f *FlashStore) Add(w http.ResponseWriter, r *http.Request, category, message string) error {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil && session == nil {
		return err
	}
	session.AddFlash(Flash{Category: category, Message: message})
	return session.Save(r, w)
}

// Pop returns pending flashes and clears them. A tampered or undecodable
// cookie yields no flashes.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) []Flash {
	session, err := f.store.Get(r, flashSessionName)
	if err != nil || session == nil {
		return nil
	}

	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}

	flashes := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if flash, ok := v.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	_ = session.Save(r, w)
	return flashes
}
