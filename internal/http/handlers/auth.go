package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"zambus/internal/domain"
	"zambus/internal/store"
)

type AuthHandler struct {
	Store    *store.Store
	Secret   []byte
	TokenTTL time.Duration
}

type authUser struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone"`
	Role  domain.Role `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Store.FindUserByEmail(req.Email)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		RespondError(c, http.StatusUnauthorized, "wrong email or password", nil)
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"exp":     time.Now().Add(h.TokenTTL).Unix(),
	})
	signed, err := token.SignedString(h.Secret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": signed,
		"user":  authUser{ID: user.ID, Name: user.Name, Email: user.Email, Phone: user.Phone, Role: user.Role},
	})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register — self-service signup always creates a passenger
// account; drivers and admins are provisioned by an admin.
func (h AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if _, err := h.Store.FindUserByEmail(req.Email); err == nil {
		RespondError(c, http.StatusBadRequest, "email already registered", nil)
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "could not hash password", err)
		return
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         domain.RolePassenger,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	h.Store.AddUser(user)

	c.JSON(http.StatusCreated, gin.H{
		"user": authUser{ID: user.ID, Name: user.Name, Email: user.Email, Phone: user.Phone, Role: user.Role},
	})
}
