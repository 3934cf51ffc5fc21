// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"log"
	"time"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"orquestra_backend/internals/configs"
	"orquestra_backend/internals/features/users/auth/dto"
	authModel "orquestra_backend/internals/features/users/auth/model"
	profileModel "orquestra_backend/internals/features/users/profile/model"
	userModel "orquestra_backend/internals/features/users/user/model"
	helper "orquestra_backend/internals/helpers"
)

// Register creates the user plus an empty profile row in one transaction.
func Register(db *gorm.DB, c *fiber.Ctx, req *dto.RegisterRequest) (*dto.TokenPairResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := userModel.User{
		UserName: req.UserName,
		Email:    req.Email,
		Password: string(hashed),
	}
	profile := profileModel.Profile{Nickname: req.Nickname}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if helper.IsUniqueViolation(err) {
				return fiber.NewError(fiber.StatusConflict, "E-mail já cadastrado")
			}
			return err
		}
		profile.UserID = user.ID
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, err
	}

	return buildPairResponse(db, c, &user, &profile)
}

// Login verifies the password and issues a token pair.
func Login(db *gorm.DB, c *fiber.Ctx, req *dto.LoginRequest) (*dto.TokenPairResponse, error) {
	var user userModel.User
	if err := db.Where("email = ? AND status = ?", req.Email, "ativo").First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "E-mail ou senha inválidos")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "E-mail ou senha inválidos")
	}

	profile := loadProfile(db, &user)
	return buildPairResponse(db, c, &user, profile)
}

// GoogleLogin verifies the Google ID token and signs the matching user in,
// creating the account on first login.
func GoogleLogin(db *gorm.DB, c *fiber.Ctx, idToken string) (*dto.TokenPairResponse, error) {
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{configs.GoogleClientID}); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token Google inválido")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Token Google inválido")
	}

	var user userModel.User
	err = db.Where("google_id = ? OR email = ?", claimSet.Sub, claimSet.Email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		sub := claimSet.Sub
		user = userModel.User{
			UserName: claimSet.Name,
			Email:    claimSet.Email,
			GoogleID: &sub,
		}
		profile := profileModel.Profile{Nickname: claimSet.GivenName}
		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			profile.UserID = user.ID
			return tx.Create(&profile).Error
		}); err != nil {
			return nil, err
		}
		return buildPairResponse(db, c, &user, &profile)
	case err != nil:
		return nil, err
	}

	if user.GoogleID == nil {
		sub := claimSet.Sub
		if err := db.Model(&user).Update("google_id", sub).Error; err != nil {
			log.Println("[ERROR] failed linking google account:", err)
		}
	}
	profile := loadProfile(db, &user)
	return buildPairResponse(db, c, &user, profile)
}

// Logout blacklists the current access token and revokes the refresh token.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	rawToken := helper.GetRawAccessToken(c)
	if rawToken != "" {
		expiredAt := time.Now().Add(accessTTL())
		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte(getJWTSecret()), nil
		}); err == nil {
			if exp, ok := claims["exp"].(float64); ok {
				expiredAt = time.Unix(int64(exp), 0)
			}
		}
		entry := authModel.TokenBlacklist{Token: rawToken, ExpiredAt: expiredAt}
		if err := db.Create(&entry).Error; err != nil && !helper.IsUniqueViolation(err) {
			return err
		}
	}

	if refresh := helper.GetRefreshTokenFromCookie(c); refresh != "" {
		hash := computeRefreshHash(refresh)
		now := time.Now()
		db.Model(&authModel.RefreshToken{}).
			Where("token_hash = ? AND revoked_at IS NULL", hash).
			Update("revoked_at", now)
	}

	clearAuthCookies(c)
	return nil
}

func loadProfile(db *gorm.DB, user *userModel.User) *profileModel.Profile {
	var profile profileModel.Profile
	if err := db.First(&profile, "user_id = ?", user.ID).Error; err != nil {
		return nil
	}
	return &profile
}

func buildPairResponse(db *gorm.DB, c *fiber.Ctx, user *userModel.User, profile *profileModel.Profile) (*dto.TokenPairResponse, error) {
	accessToken, refreshToken, err := issueTokenPair(db, c, user, profile)
	if err != nil {
		return nil, err
	}
	resp := &dto.TokenPairResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.AuthUser{
			ID:       user.ID.String(),
			UserName: user.UserName,
			Email:    user.Email,
			Role:     user.Role,
		},
	}
	if profile != nil {
		resp.User.IsSpalla = profile.IsSpalla
		resp.User.IsSectionLeader = profile.IsSectionLeader
	}
	return resp, nil
}
