package handlers

import (
	"errors"
	"fmt"
	"log"

	"vgcatalog/internal/middleware"
	"vgcatalog/internal/pipeline"

	"github.com/gofiber/fiber/v2"
)

// ResourceHandler exposes one pipeline resource over HTTP. All four entity
// controllers are instances of this handler; the differences live in the
// resource descriptors.
type ResourceHandler[T any, P any] struct {
	res *pipeline.Resource[T, P]
}

// NewResourceHandler creates a handler for one resource.
func NewResourceHandler[T any, P any](res *pipeline.Resource[T, P]) *ResourceHandler[T, P] {
	return &ResourceHandler[T, P]{res: res}
}

// RegisterRoutes registers the resource's routes with the Fiber router.
// The static /list and /add segments must precede the :id routes.
func (h *ResourceHandler[T, P]) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/" + h.res.Name)
	routes.Get("/list", h.HandleList)
	routes.Post("/add", h.HandleCreate)
	routes.Get("/:id", h.HandleGet)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleList returns one page of entities.
func (h *ResourceHandler[T, P]) HandleList(c *fiber.Ctx) error {
	page, err := pipeline.ParsePageRequest(c.Query("page"), c.Query("limit"))
	if err != nil {
		return h.respondError(c, err)
	}
	views, err := h.res.List(middleware.PrincipalFrom(c), page)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(views)
}

// HandleGet returns a single entity by id.
func (h *ResourceHandler[T, P]) HandleGet(c *fiber.Ctx) error {
	view, err := h.res.Get(middleware.PrincipalFrom(c), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(view)
}

// HandleCreate creates an entity and answers 201 with the serialized
// instance and a Location reference built from its new id.
func (h *ResourceHandler[T, P]) HandleCreate(c *fiber.Ctx) error {
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	entity, err := h.res.Create(middleware.PrincipalFrom(c), &patch)
	if err != nil {
		return h.respondError(c, err)
	}
	c.Set(fiber.HeaderLocation, h.location(c, h.res.ID(entity)))
	return c.Status(fiber.StatusCreated).JSON(h.res.View(entity))
}

// HandleUpdate applies a partial update to an existing entity.
func (h *ResourceHandler[T, P]) HandleUpdate(c *fiber.Ctx) error {
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	entity, err := h.res.Update(middleware.PrincipalFrom(c), c.Params("id"), &patch)
	if err != nil {
		return h.respondError(c, err)
	}
	c.Set(fiber.HeaderLocation, h.location(c, h.res.ID(entity)))
	return c.JSON(fiber.Map{"status": "success"})
}

// HandleDelete removes an entity by id.
func (h *ResourceHandler[T, P]) HandleDelete(c *fiber.Ctx) error {
	if err := h.res.Delete(middleware.PrincipalFrom(c), c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(fiber.Map{"status": "success"})
}

func (h *ResourceHandler[T, P]) location(c *fiber.Ctx, id string) string {
	return fmt.Sprintf("%s/api/v1/%s/%s", c.BaseURL(), h.res.Name, id)
}

// respondError maps pipeline outcomes to HTTP statuses: Forbidden 403,
// NotFound 404, a rejected entity 400 with its full violation list, and
// anything else is an infrastructure failure surfaced as 500.
func (h *ResourceHandler[T, P]) respondError(c *fiber.Ctx, err error) error {
	if errors.Is(err, pipeline.ErrForbidden) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"status": "Forbidden"})
	}
	if pipeline.IsNotFound(err) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"status":  "Not Found",
			"message": err.Error(),
		})
	}
	if ve, ok := pipeline.AsValidation(err); ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":     "Validation Failed",
			"violations": ve.Violations,
		})
	}
	log.Printf("Error handling %s request: %v", h.res.Name, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fmt.Sprintf("Could not process %s request", h.res.Name),
	})
}
