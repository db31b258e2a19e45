package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// Locals keys yang dihydrate oleh AuthJWT.
const (
	LocUserID = "user_id"
	LocRole   = "role"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

// AuthJWT memverifikasi token HMAC yang diterbitkan auth service upstream.
// Core ini TIDAK menerbitkan token dan tidak menentukan role; dia hanya
// menerima actor + role yang sudah dipercaya dan menaruhnya di Locals.
func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}

		// Simpan raw claims (opsional)
		c.Locals("jwt_claims", claims)

		// === HYDRATE LOCALS: user_id + role ===
		if v, ok := claims["user_id"].(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
				c.Locals(LocUserID, id)
			}
		}
		if c.Locals(LocUserID) == nil {
			// sub sebagai fallback
			if v, ok := claims["sub"].(string); ok {
				if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
					c.Locals(LocUserID, id)
				}
			}
		}
		if c.Locals(LocUserID) == nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Token tanpa user_id")
		}

		if v, ok := claims["role"].(string); ok {
			c.Locals(LocRole, strings.ToLower(strings.TrimSpace(v)))
		}

		return c.Next()
	}
}
