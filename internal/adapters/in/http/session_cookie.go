package http

import (
	"net/http"

	"cargofresh/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// SessionCookieName identifies a visitor across requests.
const SessionCookieName = "cargofresh_session"

const sessionIDKey = "cargofresh.session_id"

// SessionCookie reads the visitor ID from the session cookie, issuing a new one
// when the cookie is missing or unreadable.
func SessionCookie() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id, ok := readSessionCookie(ctx)
			if !ok {
				id = kernel.NewUUID()
				ctx.SetCookie(&http.Cookie{
					Name:     SessionCookieName,
					Value:    id.String(),
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx.Set(sessionIDKey, id)
			return next(ctx)
		}
	}
}

func readSessionCookie(ctx echo.Context) (kernel.UUID, bool) {
	cookie, err := ctx.Cookie(SessionCookieName)
	if err != nil {
		return kernel.UUID{}, false
	}

	id, err := kernel.UUIDFromString(cookie.Value)
	if err != nil {
		return kernel.UUID{}, false
	}
	return id, true
}

// sessionID returns the ID set by SessionCookie, or the zero UUID outside it.
func sessionID(ctx echo.Context) kernel.UUID {
	id, _ := ctx.Get(sessionIDKey).(kernel.UUID)
	return id
}
