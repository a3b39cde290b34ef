package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/types"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration, login and token validation.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

// NewAuthService creates a new AuthService instance
func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
	}
}

// Register creates the user, their profile and their default dietary
// targets, and returns a signed token.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (string, *models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return "", nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashed),
		Name:         req.Name,
	}
	// User, profile and default targets commit together; a failure must
	// not leave an account missing its profile rows.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.UserProfile{
			UserID:   user.ID,
			Username: req.Username,
			Email:    req.Email,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		return tx.Create(models.DefaultDietPreference(user.ID)).Error
	})
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(user.ID, req.Username)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	var profile models.UserProfile
	username := ""
	if err := s.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&profile).Error; err == nil {
		username = profile.Username
	}

	token, err := s.generateToken(user.ID, username)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

func (s *AuthService) generateToken(userID uuid.UUID, username string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID.String(),
		"username": username,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a JWT and returns its typed claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	idStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	return &types.TokenClaims{UserID: userID, Username: username}, nil
}
