package http

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUserRole = "X-User-Role"

	identityKey = "identity"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Identity is the caller as asserted by the upstream gateway.
type Identity struct {
	UserID kernel.UUID
	Role   Role
}

func (i Identity) Viewer() (queries.Viewer, error) {
	if i.Role == RoleAdmin {
		return queries.NewAdminViewer(i.UserID), nil
	}
	return queries.NewCustomerViewer(i.UserID)
}

// Authenticate trusts the gateway identity headers. Missing or malformed
// headers are rejected with 401.
func Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, err := kernel.UUIDFromString(strings.TrimSpace(c.Request().Header.Get(HeaderUserID)))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+HeaderUserID)
			}

			role := Role(strings.ToLower(strings.TrimSpace(c.Request().Header.Get(HeaderUserRole))))
			if role != RoleCustomer && role != RoleAdmin {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid "+HeaderUserRole)
			}

			c.Set(identityKey, Identity{UserID: id, Role: role})
			return next(c)
		}
	}
}

// RequireRole must run after Authenticate.
func RequireRole(roles ...Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := identityFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
			}
			if !slices.Contains(roles, identity.Role) {
				return echo.NewHTTPError(http.StatusForbidden, "role "+string(identity.Role)+" may not access this resource")
			}
			return next(c)
		}
	}
}

func identityFrom(c echo.Context) (Identity, bool) {
	identity, ok := c.Get(identityKey).(Identity)
	return identity, ok
}

// RequestLogger logs one line per request at a level matching the status.
func RequestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			fields := []zap.Field{
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.String("route", c.Path()),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			}
			if identity, ok := identityFrom(c); ok {
				fields = append(fields, zap.String("user_id", identity.UserID.String()), zap.String("role", string(identity.Role)))
			}

			switch {
			case status >= http.StatusInternalServerError:
				logger.Error("request", fields...)
			case status >= http.StatusBadRequest:
				logger.Warn("request", fields...)
			default:
				logger.Info("request", fields...)
			}
			return nil
		}
	}
}
