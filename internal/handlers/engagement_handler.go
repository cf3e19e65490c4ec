package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/services"
)

// EngagementHandler serves the authenticated like/save/comment routes.
type EngagementHandler struct {
	service *services.EngagementService
}

func NewEngagementHandler(service *services.EngagementService) *EngagementHandler {
	return &EngagementHandler{service: service}
}

// Like handles POST /api/tierlists/:id/like
func (h *EngagementHandler) Like(c *fiber.Ctx) error {
	return h.toggle(c, h.service.Like, "liked")
}

// Unlike handles DELETE /api/tierlists/:id/like
func (h *EngagementHandler) Unlike(c *fiber.Ctx) error {
	return h.toggle(c, h.service.Unlike, "unliked")
}

// Save handles POST /api/tierlists/:id/save
func (h *EngagementHandler) Save(c *fiber.Ctx) error {
	return h.toggle(c, h.service.Save, "saved")
}

// Unsave handles DELETE /api/tierlists/:id/save
func (h *EngagementHandler) Unsave(c *fiber.Ctx) error {
	return h.toggle(c, h.service.Unsave, "unsaved")
}

// SaveStatus handles GET /api/tierlists/:id/save
func (h *EngagementHandler) SaveStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}
	userID, err := identity.UserIDFromContext(c)
	if err != nil {
		return fail(c, err)
	}

	saved, err := h.service.IsSaved(id, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(dto.SaveStatusResponse{Saved: saved})
}

// Comment handles POST /api/tierlists/:id/comments
func (h *EngagementHandler) Comment(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}
	userID, err := identity.UserIDFromContext(c)
	if err != nil {
		return fail(c, err)
	}

	var req dto.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	comment, err := h.service.Comment(id, userID, req.Content)
	if err != nil {
		return fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

func (h *EngagementHandler) toggle(c *fiber.Ctx, op func(uuid.UUID, uuid.UUID) error, message string) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}
	userID, err := identity.UserIDFromContext(c)
	if err != nil {
		return fail(c, err)
	}

	if err := op(id, userID); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": message})
}
