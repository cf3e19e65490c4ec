package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/services"
)

type VoteHandler struct {
	service *services.VoteService
}

func NewVoteHandler(service *services.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

// Vote handles POST /api/tierlists/:id/vote
func (h *VoteHandler) Vote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}

	var req dto.VoteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ident := identity.FromContext(c).WithBodyToken(req.AnonymousID)
	resp, err := h.service.Vote(id, ident, req.Value)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}

// Status handles GET /api/tierlists/:id/vote. The anonymous token may also
// arrive as a query parameter here.
func (h *VoteHandler) Status(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}

	ident := identity.FromContext(c).WithBodyToken(c.Query("anonymousId"))
	resp, err := h.service.Status(id, ident)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(resp)
}
