package session

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"session-guard/internal/apperr"
	"session-guard/internal/model"

	"github.com/gorilla/securecookie"
	"github.com/labstack/echo/v4"
)

const (
	DefaultCookieName = "sid"
	DefaultMaxAge     = 60 * time.Second
	sidBytes          = 24
)

var (
	randRead = rand.Read
	timeNow  = time.Now
)

// Options 設定 session cookie
type Options struct {
	CookieName string
	Secret     string
	MaxAge     time.Duration
	HTTPOnly   bool
	Secure     bool
}

// Manager 負責 session 的建立、還原與銷毀
type Manager struct {
	store      *Store
	serializer *Serializer
	opts       Options
	codec      *securecookie.SecureCookie
	logger     *slog.Logger
}

func NewManager(store *Store, serializer *Serializer, opts Options, logger *slog.Logger) (*Manager, error) {
	if opts.Secret == "" {
		return nil, errors.New("session secret is required")
	}
	if opts.CookieName == "" {
		opts.CookieName = DefaultCookieName
	}
	if opts.MaxAge <= 0 {
		opts.MaxAge = DefaultMaxAge
	}
	if logger == nil {
		logger = slog.Default()
	}
	// cookie 只帶 sid，內容存在 store；簽章含時間戳，逾期即失效
	codec := securecookie.New([]byte(opts.Secret), nil).
		MaxAge(int(opts.MaxAge.Seconds())).
		SetSerializer(securecookie.JSONEncoder{})
	return &Manager{store: store, serializer: serializer, opts: opts, codec: codec, logger: logger}, nil
}

// Middleware 由 cookie 還原 session 與使用者。
// cookie 無效、session 不存在或 store 無法讀取時視為未登入並繼續處理。
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ck, err := c.Cookie(m.opts.CookieName)
			if err != nil || ck.Value == "" {
				return next(c)
			}
			sid, err := m.unsign(ck.Value)
			if err != nil {
				m.logger.Debug("session cookie rejected", "ip", c.RealIP(), "error", err)
				return next(c)
			}

			ctx := c.Request().Context()
			rec, err := m.store.Get(ctx, sid)
			if err != nil {
				if !errors.Is(err, ErrSessionNotFound) {
					m.logger.Warn("session lookup failed", "error", err)
				}
				return next(c)
			}

			user, err := m.serializer.Deserialize(ctx, rec.Passport.User)
			if err != nil {
				if !errors.Is(err, apperr.ErrNotFound) {
					return err
				}
				// 使用者已不存在，銷毀 session
				m.logger.Info("stale session destroyed", "user_id", rec.Passport.User.ID)
				if err := m.store.Destroy(ctx, sid); err != nil {
					m.logger.Warn("destroy stale session", "error", err)
				}
				m.expireCookie(c)
				return next(c)
			}

			c.Set(contextIDKey, sid)
			c.Set(contextRecordKey, rec)
			SetUser(c, user)
			return next(c)
		}
	}
}

// Login 為使用者建立新的 session。舊 session 會先銷毀，避免 session fixation。
func (m *Manager) Login(c echo.Context, user *model.PublicUser) (*Record, error) {
	ctx := c.Request().Context()
	if old, ok := currentID(c); ok {
		if err := m.store.Destroy(ctx, old); err != nil {
			return nil, err
		}
	}

	sid, err := newSessionID()
	if err != nil {
		return nil, err
	}
	rec := &Record{
		Cookie: Cookie{
			OriginalMaxAge: m.opts.MaxAge.Milliseconds(),
			Expires:        timeNow().Add(m.opts.MaxAge).UTC(),
			HTTPOnly:       m.opts.HTTPOnly,
			Path:           "/",
			SameSite:       "strict",
		},
		Passport: Passport{User: m.serializer.Serialize(user)},
	}
	if err := m.store.Save(ctx, sid, rec, m.opts.MaxAge); err != nil {
		return nil, err
	}

	value, err := m.sign(sid)
	if err != nil {
		return nil, err
	}
	c.SetCookie(&http.Cookie{
		Name:     m.opts.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  rec.Cookie.Expires,
		MaxAge:   int(m.opts.MaxAge.Seconds()),
		HttpOnly: m.opts.HTTPOnly,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteStrictMode,
	})
	c.Set(contextIDKey, sid)
	c.Set(contextRecordKey, rec)
	SetUser(c, user)
	m.logger.Info("session created", "user_id", user.ID)
	return rec, nil
}

// Logout 銷毀目前的 session，未登入時只清 cookie
func (m *Manager) Logout(c echo.Context) error {
	if sid, ok := currentID(c); ok {
		if err := m.store.Destroy(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	m.expireCookie(c)
	resetContext(c)
	return nil
}

func (m *Manager) IsAuthenticated(c echo.Context) bool {
	_, ok := CurrentUser(c)
	return ok
}

func (m *Manager) expireCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     m.opts.CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: m.opts.HTTPOnly,
		Secure:   m.opts.Secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func (m *Manager) sign(sid string) (string, error) {
	value, err := m.codec.Encode(m.opts.CookieName, sid)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return value, nil
}

func (m *Manager) unsign(value string) (string, error) {
	var sid string
	if err := m.codec.Decode(m.opts.CookieName, value, &sid); err != nil {
		return "", err
	}
	if sid == "" {
		return "", errors.New("empty session id")
	}
	return sid, nil
}

func newSessionID() (string, error) {
	b := make([]byte, sidBytes)
	if _, err := randRead(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
