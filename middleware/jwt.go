package middleware

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"scms/apperrors"
	"scms/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Role tags carried in the token's "type" claim.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Locals keys populated by Protected for downstream handlers.
const (
	LocalUserID = "authUserId"
	LocalRole   = "authRole"
)

// GenerateToken issues a signed bearer token for the given identity. The
// loginKey lands in an "email" or "username" claim depending on the role.
func GenerateToken(cfg *config.Config, userID uint, role, loginKey string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(userID), 10),
		"type": role,
		"iat":  now.Unix(),
		"exp":  now.Add(config.JWTExpirationHours * time.Hour).Unix(),
	}
	if role == RoleAdmin {
		claims["username"] = loginKey
	} else {
		claims["email"] = loginKey
	}

	token := jwt.NewWithClaims(jwt.GetSigningMethod(strings.ToUpper(cfg.JWTAlgorithm)), claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// VerifyToken decodes and checks a bearer token. It never touches the store
// and treats malformed input as a normal failure, not a panic.
func VerifyToken(cfg *config.Config, tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.Unauthorized("Invalid token payload")
	}
	return claims, nil
}

// Protected is the authorization gate: it resolves the Authorization header
// to an identity and role before any domain logic runs.
func Protected(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.Unauthorized("Authorization header required")
		}

		// The token should be prefixed with "Bearer "
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return apperrors.Unauthorized("Invalid Authorization header format")
		}
		tokenString := authHeader[len("Bearer "):]

		claims, err := VerifyToken(cfg, tokenString)
		if err != nil {
			return err
		}

		sub, _ := claims["sub"].(string)
		userID, convErr := strconv.ParseUint(sub, 10, 64)
		if convErr != nil {
			return apperrors.Unauthorized("Invalid token payload")
		}
		role, _ := claims["type"].(string)
		if role != RoleStudent && role != RoleAdmin {
			return apperrors.Unauthorized("Invalid token payload")
		}

		c.Locals(LocalUserID, uint(userID))
		c.Locals(LocalRole, role)
		return c.Next()
	}
}
