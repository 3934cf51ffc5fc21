// file: internals/features/users/auth/service/token_service.go
package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	authModel "orquestra_backend/internals/features/users/auth/model"
	profileModel "orquestra_backend/internals/features/users/profile/model"
	userModel "orquestra_backend/internals/features/users/user/model"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func getJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

func getRefreshSecret() string {
	if s := os.Getenv("JWT_REFRESH_SECRET"); s != "" {
		return s
	}
	return getJWTSecret()
}

func accessTTL() time.Duration {
	if h, err := strconv.Atoi(os.Getenv("ACCESS_TOKEN_TTL_HOURS")); err == nil && h > 0 {
		return time.Duration(h) * time.Hour
	}
	return accessTTLDefault
}

func refreshTTL() time.Duration {
	if d, err := strconv.Atoi(os.Getenv("REFRESH_TOKEN_TTL_DAYS")); err == nil && d > 0 {
		return time.Duration(d) * 24 * time.Hour
	}
	return refreshTTLDefault
}

// computeRefreshHash keeps refresh tokens out of the database in clear text.
func computeRefreshHash(token string) []byte {
	mac := hmac.New(sha256.New, []byte(getRefreshSecret()))
	mac.Write([]byte(token))
	return mac.Sum(nil)
}

func generateAccessToken(user *userModel.User, profile *profileModel.Profile) (string, error) {
	isSpalla := false
	isLeader := false
	if profile != nil {
		isSpalla = profile.IsSpalla
		isLeader = profile.IsSectionLeader
	}
	claims := jwt.MapClaims{
		"id":                user.ID.String(),
		"user_name":         user.UserName,
		"role":              user.Role,
		"is_spalla":         isSpalla,
		"is_section_leader": isLeader,
		"iat":               time.Now().Unix(),
		"exp":               time.Now().Add(accessTTL()).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(getJWTSecret()))
}

func generateRefreshToken(user *userModel.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(refreshTTL())
	claims := jwt.MapClaims{
		"id":  user.ID.String(),
		"typ": "refresh",
		"iat": time.Now().Unix(),
		"exp": expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(getRefreshSecret()))
	return signed, expiresAt, err
}

// issueTokenPair builds access + refresh tokens and persists the refresh hash.
func issueTokenPair(db *gorm.DB, c *fiber.Ctx, user *userModel.User, profile *profileModel.Profile) (string, string, error) {
	accessToken, err := generateAccessToken(user, profile)
	if err != nil {
		return "", "", err
	}
	refreshToken, expiresAt, err := generateRefreshToken(user)
	if err != nil {
		return "", "", err
	}

	ua := c.Get("User-Agent")
	ip := c.IP()
	record := authModel.RefreshToken{
		UserID:    user.ID,
		TokenHash: computeRefreshHash(refreshToken),
		ExpiresAt: expiresAt,
		UserAgent: &ua,
		IP:        &ip,
	}
	if err := db.Create(&record).Error; err != nil {
		return "", "", err
	}

	setAuthCookies(c, accessToken, refreshToken, expiresAt)
	return accessToken, refreshToken, nil
}

func setAuthCookies(c *fiber.Ctx, accessToken, refreshToken string, refreshExpires time.Time) {
	secure := os.Getenv("COOKIE_SECURE") != "false"
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(accessTTL()),
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  refreshExpires,
		HTTPOnly: true,
		Secure:   secure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
}

// RotateRefreshToken validates a refresh token, revokes its stored hash and
// issues a fresh pair.
func RotateRefreshToken(db *gorm.DB, c *fiber.Ctx, refreshToken string) (string, string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(refreshToken, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(getRefreshSecret()), nil
	})
	if err != nil || !token.Valid {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token inválido")
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token inválido")
	}
	userIDStr, _ := claims["id"].(string)
	if userIDStr == "" {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Refresh token inválido")
	}

	hash := computeRefreshHash(refreshToken)
	var stored authModel.RefreshToken
	if err := db.Where("token_hash = ? AND revoked_at IS NULL AND expires_at > ?", hash, time.Now()).
		First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", fiber.NewError(fiber.StatusUnauthorized, "Sessão expirada. Faça login novamente")
		}
		return "", "", err
	}

	var user userModel.User
	if err := db.First(&user, "id = ?", userIDStr).Error; err != nil {
		return "", "", fiber.NewError(fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	var profile profileModel.Profile
	profilePtr := &profile
	if err := db.First(&profile, "user_id = ?", user.ID).Error; err != nil {
		profilePtr = nil
	}

	// Rotation: the old hash is gone before the new pair exists.
	if err := db.Delete(&stored).Error; err != nil {
		return "", "", err
	}
	return issueTokenPair(db, c, &user, profilePtr)
}
