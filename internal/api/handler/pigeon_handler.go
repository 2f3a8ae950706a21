package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pigeonpulse/loft-api/internal/api/metrics"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// PigeonHandler handles HTTP requests for pigeon records and pedigrees.
type PigeonHandler struct {
	service ports.PigeonService
}

func NewPigeonHandler(service ports.PigeonService) *PigeonHandler {
	return &PigeonHandler{service: service}
}

// List returns the pigeons of the target loft, optionally filtered.
//
// @Summary      List pigeons
// @Tags         pigeons
// @Produce      json
// @Security     BearerAuth
// @Param        loft_id  query  string  false  "Target loft (defaults to the token's loft)"
// @Param        status   query  string  false  "Filter by status"
// @Param        sex      query  string  false  "Filter by sex"
// @Param        line     query  string  false  "Filter by bloodline"
// @Param        search   query  string  false  "Case-insensitive search over ring, color and line"
// @Success      200  {object}  listPigeonsResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/pigeons [get]
func (h *PigeonHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	pigeons, err := h.service.List(c.Request().Context(), ports.ListPigeonsInput{
		UserID: p.User.ID,
		ListPigeonsFilter: ports.ListPigeonsFilter{
			LoftID: targetLoftID(c, p),
			Status: c.QueryParam("status"),
			Sex:    c.QueryParam("sex"),
			Line:   c.QueryParam("line"),
			Search: c.QueryParam("search"),
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listPigeonsResponse{Data: toPigeonListResponse(pigeons)})
}

// Get returns a single pigeon by id.
//
// @Summary      Get a pigeon
// @Tags         pigeons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pigeon ID"
// @Success      200  {object}  pigeonResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/pigeons/{id} [get]
func (h *PigeonHandler) Get(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	pigeon, err := h.service.Get(c.Request().Context(), p.User.ID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPigeonResponse(pigeon))
}

// Create registers a pigeon in the target loft.
//
// @Summary      Register a pigeon
// @Tags         pigeons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      pigeonRequest  true  "Pigeon details"
// @Success      201   {object}  pigeonResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/pigeons [post]
func (h *PigeonHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req pigeonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	loftID := req.LoftID
	if loftID == "" {
		loftID = p.Loft.ID
	}

	pigeon, err := h.service.Create(c.Request().Context(), ports.CreatePigeonInput{
		UserID: p.User.ID,
		LoftID: loftID,
		Pigeon: toPigeonInput(req),
	})
	if err != nil {
		return err
	}

	metrics.PigeonsCreatedTotal.WithLabelValues(pigeon.Status).Inc()
	return c.JSON(http.StatusCreated, toPigeonResponse(pigeon))
}

// Update replaces a pigeon's writable fields, optionally moving it to
// another loft the caller can access.
//
// @Summary      Update a pigeon
// @Tags         pigeons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Pigeon ID"
// @Param        body  body      pigeonRequest  true  "Pigeon details"
// @Success      200   {object}  pigeonResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/pigeons/{id} [put]
func (h *PigeonHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req pigeonRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	pigeon, err := h.service.Update(c.Request().Context(), ports.UpdatePigeonInput{
		UserID:       p.User.ID,
		PigeonID:     c.Param("id"),
		TargetLoftID: req.LoftID,
		Pigeon:       toPigeonInput(req),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPigeonResponse(pigeon))
}

// Delete removes a pigeon record.
//
// @Summary      Delete a pigeon
// @Tags         pigeons
// @Security     BearerAuth
// @Param        id  path  string  true  "Pigeon ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/pigeons/{id} [delete]
func (h *PigeonHandler) Delete(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), p.User.ID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Ancestors returns the full ancestor chain of a pigeon, father branch
// first, within the pigeon's own loft.
//
// @Summary      Pedigree ancestors
// @Tags         pigeons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pigeon ID"
// @Success      200  {object}  pedigreeResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/pigeons/{id}/ancestors [get]
func (h *PigeonHandler) Ancestors(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	ancestors, err := h.service.Ancestors(c.Request().Context(), p.User.ID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PedigreeLookupsTotal.WithLabelValues("ancestors").Inc()
	return c.JSON(http.StatusOK, pedigreeResponse{Data: toPigeonListResponse(ancestors)})
}

// Descendants returns the direct children of a pigeon.
//
// @Summary      Pedigree descendants
// @Tags         pigeons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Pigeon ID"
// @Success      200  {object}  pedigreeResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/pigeons/{id}/descendants [get]
func (h *PigeonHandler) Descendants(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	descendants, err := h.service.Descendants(c.Request().Context(), p.User.ID, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.PedigreeLookupsTotal.WithLabelValues("descendants").Inc()
	return c.JSON(http.StatusOK, pedigreeResponse{Data: toPigeonListResponse(descendants)})
}
