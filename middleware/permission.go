package middleware

import (
	"strconv"

	"scms/apperrors"

	"github.com/gofiber/fiber/v2"
)

// RequireAdmin restricts a route to admin callers. Must run after Protected.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return apperrors.Unauthorized("Authentication required")
		}
		if role != RoleAdmin {
			return apperrors.Forbidden("Admin access required")
		}
		return c.Next()
	}
}

// RequireSelfOrAdmin allows an admin, or a student whose id matches the named
// route param. Any other student is denied. Must run after Protected.
func RequireSelfOrAdmin(param string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals(LocalRole).(string)
		if !ok {
			return apperrors.Unauthorized("Authentication required")
		}
		if role == RoleAdmin {
			return c.Next()
		}

		userID, ok := c.Locals(LocalUserID).(uint)
		if !ok {
			return apperrors.Unauthorized("Authentication required")
		}
		paramID, err := strconv.ParseUint(c.Params(param), 10, 64)
		if err != nil {
			return apperrors.Validation("Invalid id parameter")
		}
		if uint(paramID) != userID {
			return apperrors.Forbidden("Access denied")
		}
		return c.Next()
	}
}
