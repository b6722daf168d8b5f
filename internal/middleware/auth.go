package middleware

import (
	"net/http"
	"strings"

	"github.com/Jonathancraxker/api-ecoparking/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const ClaimsKey = "claims"

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID uint   `json:"user_id"`
	Correo string `json:"correo"`
	Tipo   string `json:"tipo"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role (tipo) is not in the allowed
// list. Every role decision in the API goes through this gate.
func RequireRole(tipos ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(tipos))
	for _, t := range tipos {
		allowed[t] = true
	}
	return func(c *gin.Context) {
		v, exists := c.Get(ClaimsKey)
		claims, ok := v.(*JWTClaims)
		if !exists || !ok || !allowed[claims.Tipo] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Acceso denegado"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
// Returns nil when the route is not behind JWTAuth.
func GetClaims(c *gin.Context) *JWTClaims {
	v, _ := c.Get(ClaimsKey)
	claims, _ := v.(*JWTClaims)
	return claims
}
