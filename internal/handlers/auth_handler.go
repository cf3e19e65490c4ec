package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/services"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.service.Refresh(&req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Logout handles POST /api/auth/logout (protected)
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.Logout(&req); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// Me handles GET /api/auth/me (protected)
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := identity.UserIDFromContext(c)
	if err != nil {
		return fail(c, err)
	}

	user, err := h.service.GetUser(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		ImageURL: user.ImageURL,
	})
}
