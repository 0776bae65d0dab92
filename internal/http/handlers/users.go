package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"zambus/internal/domain"
	"zambus/internal/http/middleware"
	"zambus/internal/store"
)

type UserHandler struct {
	Store *store.Store
}

// GET /api/users (admin)
func (h UserHandler) List(c *gin.Context) {
	users := h.Store.ListUsers()
	out := make([]authUser, 0, len(users))
	for _, u := range users {
		out = append(out, authUser{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

// GET /api/users/:id (admin)
func (h UserHandler) Get(c *gin.Context) {
	u, err := h.Store.GetUser(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, authUser{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role})
}

type createUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/users (admin) — provisions drivers and extra admins.
func (h UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	role := domain.Role(req.Role)
	switch role {
	case domain.RoleAdmin, domain.RolePassenger, domain.RoleDriver:
	default:
		RespondDomainError(c, domain.ValidationError{Field: "role", Msg: "unknown role"})
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
	u := domain.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         req.Name,
		Phone:        req.Phone,
		Role:         role,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	h.Store.AddUser(u)
	c.JSON(http.StatusCreated, authUser{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role})
}

type updateUserRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// PUT /api/users/:id — profile edits; users may edit themselves, admins
// anyone.
func (h UserHandler) Update(c *gin.Context) {
	if middleware.CurrentRole(c) != string(domain.RoleAdmin) && middleware.CurrentUserID(c) != c.Param("id") {
		RespondError(c, http.StatusForbidden, "cannot edit another user", nil)
		return
	}
	u, err := h.Store.GetUser(c.Param("id"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	var req updateUserRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Phone != "" {
		u.Phone = req.Phone
	}
	if err := h.Store.UpdateUser(u); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, authUser{ID: u.ID, Name: u.Name, Email: u.Email, Phone: u.Phone, Role: u.Role})
}
