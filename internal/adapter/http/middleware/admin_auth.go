// Package middleware holds gin middlewares shared by the route groups.
package middleware

import (
	"log"
	"net/http"
	"strings"

	"athwela/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CtxAdminSubjectKey = "admin_subject"
	RoleAdmin          = "admin"
)

var (
	errMissingToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing or malformed bearer token", http.StatusUnauthorized)
	errInvalidToken = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Invalid token", http.StatusUnauthorized)
	errNotAdmin     = pkg.NewDomainErrorSimple("FORBIDDEN", "Admin role required", http.StatusForbidden)
	errAdminOff     = pkg.NewDomainErrorSimple("ADMIN_DISABLED", "Admin endpoints are not configured", http.StatusServiceUnavailable)
)

func abort(c *gin.Context, e *pkg.AppError) {
	c.AbortWithStatusJSON(e.HTTPStatus, e.ToHTTPError())
}

// RequireAdmin validates an HS256 bearer token signed with secret and requires its
// role claim to be "admin". An empty secret disables the admin surface entirely.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(secret) == 0 {
			abort(c, errAdminOff)
			return
		}

		parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, errMissingToken)
			return
		}

		token, err := jwt.Parse(strings.TrimSpace(parts[1]), func(t *jwt.Token) (any, error) {
			return secret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || token == nil || !token.Valid {
			log.Printf("[admin][middleware] rejected token err=%v", err)
			abort(c, errInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abort(c, errInvalidToken)
			return
		}
		if role, _ := claims["role"].(string); role != RoleAdmin {
			abort(c, errNotAdmin)
			return
		}

		sub, _ := claims.GetSubject()
		c.Set(CtxAdminSubjectKey, sub)
		log.Printf("[admin][middleware] authorized subject=%s path=%s", sub, c.FullPath())
		c.Next()
	}
}
