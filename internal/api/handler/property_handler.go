package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fabrica/realestate-crm/internal/core/ports"
)

// PropertyHandler handles HTTP requests for property listings.
type PropertyHandler struct {
	service ports.PropertyService
}

func NewPropertyHandler(service ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

// List handles GET /api/properties (public).
//
// @Summary      List all property listings
// @Tags         properties
// @Produce      json
// @Success      200  {array}   domain.Property
// @Failure      500  {object}  messageResponse
// @Router       /api/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	props, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, props)
}

// Get handles GET /api/properties/:id (public).
//
// @Summary      Get a property by id
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property id"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  messageResponse
// @Router       /api/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	prop, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prop)
}

// Create handles POST /api/properties.
//
// @Summary      Create a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property fields"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload."})
	}
	if req.Title == "" || req.Price == 0 || req.Status == "" {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Title, price & status are required."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	prop, err := h.service.Create(c.Request().Context(), ports.CreatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
		AgentID:     req.AgentID,
		Images:      req.Images,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqFt:    req.AreaSqFt,
		Videos:      req.Videos,
		Features:    req.Features,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, prop)
}

// Update handles PUT /api/properties/:id. Provided fields merge into the
// stored record; the rest stay as they were.
//
// @Summary      Update a property listing
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property id"
// @Param        body  body      updatePropertyRequest  true  "Fields to change"
// @Success      200   {object}  domain.Property
// @Failure      400   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /api/properties/{id} [put]
func (h *PropertyHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload."})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	prop, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdatePropertyInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Status:      req.Status,
		AgentID:     req.AgentID,
		Images:      req.Images,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		ZipCode:     req.ZipCode,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqFt:    req.AreaSqFt,
		Videos:      req.Videos,
		Features:    req.Features,
		ActorID:     userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, prop)
}

// Delete handles DELETE /api/properties/:id.
//
// @Summary      Delete a property listing
// @Tags         properties
// @Security     BearerAuth
// @Param        id  path  string  true  "Property id"
// @Success      204
// @Failure      404  {object}  messageResponse
// @Router       /api/properties/{id} [delete]
func (h *PropertyHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
