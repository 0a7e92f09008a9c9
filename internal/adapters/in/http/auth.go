package http

import (
	"errors"
	"net/http"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/generated/servers"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
)

// staffRole is the role claim every fulfillment operator token must carry.
const staffRole = "staff"

// actorContextKey is where the auth middleware stores the authenticated
// staff id for handlers that stamp an actor on domain mutations.
const actorContextKey = "auth.actorID"

var errUnauthenticated = errors.New("request is not authenticated")

// staffClaims is the token payload issued to back-office staff.
type staffClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// StaffAuthMiddleware authenticates requests with a bearer JWT signed with
// secret. A missing or invalid token yields 401; a valid token without the
// staff role yields 403. The token subject is the acting staff id.
func StaffAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			tokenString, err := bearerToken(ctx)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			claims := &staffClaims{}
			token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return ctx.JSON(http.StatusUnauthorized, servers.Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			if claims.Role != staffRole {
				return ctx.JSON(http.StatusForbidden, servers.Error{
					Code:    http.StatusForbidden,
					Message: "staff role required",
				})
			}

			ctx.Set(actorContextKey, claims.Subject)
			return next(ctx)
		}
	}
}

func bearerToken(ctx echo.Context) (string, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return "", errors.New("authorization header is not a bearer token")
	}
	return token, nil
}

// actorFromContext resolves the staff id the auth middleware stored on the
// request. Commands that stamp an actor fail without it.
func actorFromContext(ctx echo.Context) (kernel.UUID, error) {
	subject, ok := ctx.Get(actorContextKey).(string)
	if !ok || subject == "" {
		return kernel.UUID{}, errUnauthenticated
	}

	actorID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.UUID{}, errUnauthenticated
	}
	return actorID, nil
}
