package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// jwtSecret has no default here; the only source is ConfigureAuth,
// fed from config.Env at startup.
var jwtSecret []byte

// ConfigureAuth sets the token signing secret. Called once at startup.
func ConfigureAuth(secret string) {
	jwtSecret = []byte(strings.TrimSpace(secret))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=8"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	repo := repositories.UserRepository{}
	user, hash, err := repo.GetCredentials(req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to query user", nil)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
		return
	}

	if len(jwtSecret) == 0 {
		RespondError(c, http.StatusInternalServerError, "auth secret not configured", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", nil)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user":  user,
	})
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", nil)
		return
	}

	repo := repositories.UserRepository{}
	id, err := repo.Create(models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     "user",
		Status:   "active",
	}, string(hash))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "email or username already taken", nil)
		return
	}

	user, err := repo.GetByID(id)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load user", nil)
		return
	}
	c.JSON(http.StatusCreated, user)
}
