package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rankmaker/rankmaker/internal/dto"
	"github.com/rankmaker/rankmaker/internal/identity"
	"github.com/rankmaker/rankmaker/internal/services"
)

type TierListHandler struct {
	service *services.TierListService
}

func NewTierListHandler(service *services.TierListService) *TierListHandler {
	return &TierListHandler{service: service}
}

// Create handles POST /api/tierlists
func (h *TierListHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTierListRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	ident := identity.FromContext(c).WithBodyToken(req.AnonymousID)
	list, minted, err := h.service.Create(ident, &req)
	if err != nil {
		return fail(c, err)
	}

	resp := fiber.Map{"tierList": list}
	if minted != "" {
		resp["anonymousId"] = minted
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get handles GET /api/tierlists/:id
func (h *TierListHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}

	detail, err := h.service.Get(id, identity.FromContext(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(detail)
}

// Update handles PUT /api/tierlists/:id
func (h *TierListHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}

	var req dto.UpdateTierListRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	list, err := h.service.Update(id, identity.FromContext(c), &req)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(list)
}

// Delete handles DELETE /api/tierlists/:id
func (h *TierListHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}

	if err := h.service.Delete(id, identity.FromContext(c)); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "tier list deleted"})
}

// ListMine handles GET /api/tierlists/mine
func (h *TierListHandler) ListMine(c *fiber.Ctx) error {
	lists, err := h.service.ListMine(identity.FromContext(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"tierLists": lists})
}

// ListSaved handles GET /api/tierlists/saved (protected)
func (h *TierListHandler) ListSaved(c *fiber.Ctx) error {
	userID, err := identity.UserIDFromContext(c)
	if err != nil {
		return fail(c, err)
	}

	lists, err := h.service.ListSaved(userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"tierLists": lists})
}

// ListPublic handles GET /api/tierlists/public. The page is shared-cacheable
// for 30 minutes.
func (h *TierListHandler) ListPublic(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)

	lists, err := h.service.ListPublic(page)
	if err != nil {
		return fail(c, err)
	}

	c.Set(fiber.HeaderCacheControl, "public, s-maxage=1800")
	return c.JSON(fiber.Map{"tierLists": lists, "page": page})
}

// ListTop handles GET /api/tierlists/top?limit=N
func (h *TierListHandler) ListTop(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)

	lists, err := h.service.ListTop(limit)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"tierLists": lists})
}

// UseTemplate handles POST /api/tierlists/:id/use-template
func (h *TierListHandler) UseTemplate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid tier list ID")
	}

	var req struct {
		AnonymousID string `json:"anonymousId"`
	}
	// Body is optional for authenticated requesters.
	_ = c.BodyParser(&req)

	ident := identity.FromContext(c).WithBodyToken(req.AnonymousID)
	clone, minted, err := h.service.CloneAsTemplate(id, ident)
	if err != nil {
		return fail(c, err)
	}

	resp := fiber.Map{"tierList": clone}
	if minted != "" {
		resp["anonymousId"] = minted
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
