package account

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rohit273848/travel-notes-app/internal/pkg/response"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/signup", h.signup)
	a.POST("/login", h.login)
}

func (h *Handler) signup(c *gin.Context) {
	var dto SignupDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "name, email and password are required")
		return
	}

	u, err := h.svc.Signup(dto.Name, dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			response.Error(c, http.StatusBadRequest, response.KindDuplicateEmail, "email already registered")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, gin.H{"userId": u.ID, "message": "signup successful"})
}

func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "email and password are required")
		return
	}

	token, err := h.svc.Login(dto.Email, dto.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, response.KindInvalidCredentials, "invalid email or password")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, loginResponse{Token: token})
}
