package services

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"folio-hand/config"
	"folio-hand/models"
	"folio-hand/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues and validates the bearer tokens that gate the admin
// routes.
type AuthService struct {
	store  *storage.Store
	log    *zap.Logger
	secret []byte
	ttl    time.Duration
}

func NewAuthService(cfg *config.Config, store *storage.Store, log *zap.Logger) *AuthService {
	return &AuthService{
		store:  store,
		log:    log,
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}
}

// EnsureAdminUser seeds the admin account from config if it does not exist
// yet. The password is stored as a bcrypt hash only.
func (a *AuthService) EnsureAdminUser(username, password string) error {
	_, err := a.store.UserByUsername(username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = a.store.CreateUser(models.User{Username: username, Password: string(hash)})
	if err != nil && storage.IsUniqueViolation(err) {
		// Another instance seeded it first.
		return nil
	}
	return err
}

// Login verifies the credentials and returns a signed token.
func (a *AuthService) Login(username, password string) (string, error) {
	user, err := a.store.UserByUsername(username)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Username,
		"exp": time.Now().Add(a.ttl).Unix(),
	})
	return token.SignedString(a.secret)
}

// Username extracts the subject from a raw token string.
func (a *AuthService) Username(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrInvalidKeyType
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	username, _ := claims["sub"].(string)
	if username == "" {
		return "", ErrInvalidCredentials
	}
	return username, nil
}

// Middleware aborts with 401 unless the request carries a valid bearer token.
func (a *AuthService) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}
		username, err := a.Username(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		c.Set("username", username)
		c.Next()
	}
}
