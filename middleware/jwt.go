package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/yashsingh9651/arvan-backend/common"
	"github.com/yashsingh9651/arvan-backend/models"
)

// Principal is the authenticated caller, resolved once by RequireAuth and
// passed explicitly to controllers instead of being smeared across the
// request object.
type Principal struct {
	UserID uint
	Role   string
	Mobile string
}

const principalKey = "principal"

// Auth signs and verifies the HS256 tokens used for sessions and for the
// short-lived password-reset continuation.
type Auth struct {
	secret []byte
}

func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// GenerateJWT issues a 7-day session token for the user
func (a *Auth) GenerateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"userId": user.ID,
		"role":   user.Role,
		"mobile": user.Mobile,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// SignResetToken mints the time-boxed continuation returned by a successful
// forget-password OTP verification. It carries the mobile number and the id
// of the backing OTP record so redemption can cross-check both.
func (a *Auth) SignResetToken(mobile string, otpID uint, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"mobile": mobile,
		"otpId":  otpID,
		"iat":    time.Now().Unix(),
		"exp":    time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// VerifyResetToken validates signature and expiry and returns the embedded
// mobile number and OTP record id.
func (a *Auth) VerifyResetToken(tokenString string) (string, uint, error) {
	token, err := jwt.Parse(tokenString, a.keyFunc)
	if err != nil || !token.Valid {
		return "", 0, fmt.Errorf("invalid reset token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, fmt.Errorf("invalid reset token payload")
	}

	mobile, _ := claims["mobile"].(string)
	otpID, okID := claims["otpId"].(float64)
	if mobile == "" || !okID {
		return "", 0, fmt.Errorf("invalid reset token payload")
	}

	return mobile, uint(otpID), nil
}

func (a *Auth) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return a.secret, nil
}

// RequireAuth checks the Authorization header and stores the resolved
// Principal for the handler chain.
func (a *Auth) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return common.NewUnauthorized("Missing or invalid Authorization header")
	}

	tokenString := authHeader[len("Bearer "):]

	token, err := jwt.Parse(tokenString, a.keyFunc)
	if err != nil || !token.Valid {
		return common.NewUnauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["userId"] == nil {
		return common.NewUnauthorized("Invalid token payload")
	}

	userID, ok := claims["userId"].(float64)
	if !ok {
		return common.NewUnauthorized("Invalid token payload")
	}
	role, _ := claims["role"].(string)
	mobile, _ := claims["mobile"].(string)

	c.Locals(principalKey, Principal{UserID: uint(userID), Role: role, Mobile: mobile})
	return c.Next()
}

// RequireAdmin must run after RequireAuth
func (a *Auth) RequireAdmin(c *fiber.Ctx) error {
	p, ok := c.Locals(principalKey).(Principal)
	if !ok || p.Role != models.RoleAdmin {
		return common.NewUnauthorized("Admin access required")
	}
	return c.Next()
}

// GetPrincipal extracts the authenticated caller set by RequireAuth.
func GetPrincipal(c *fiber.Ctx) (Principal, bool) {
	p, ok := c.Locals(principalKey).(Principal)
	return p, ok
}
