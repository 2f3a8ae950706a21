package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pigeonpulse/loft-api/internal/core/domain"
	"github.com/pigeonpulse/loft-api/internal/core/ports"
)

// LoftHandler handles HTTP requests for loft management and access grants.
type LoftHandler struct {
	service ports.LoftService
}

func NewLoftHandler(service ports.LoftService) *LoftHandler {
	return &LoftHandler{service: service}
}

func toLoftResponse(l *domain.Loft) loftResponse {
	return loftResponse{ID: l.ID, Name: l.Name, Alias: l.Alias}
}

// List returns every loft the caller belongs to, with their role in each.
//
// @Summary      List my lofts
// @Tags         lofts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listLoftsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/lofts [get]
func (h *LoftHandler) List(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	lofts, err := h.service.ListMine(c.Request().Context(), p.User.ID)
	if err != nil {
		return err
	}

	data := make([]loftWithRoleResponse, len(lofts))
	for i, lw := range lofts {
		data[i] = loftWithRoleResponse{
			loftResponse: toLoftResponse(lw.Loft),
			Role:         string(lw.Role),
		}
	}
	return c.JSON(http.StatusOK, listLoftsResponse{Data: data})
}

// Create registers an additional loft owned by the caller.
//
// @Summary      Create a loft
// @Tags         lofts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLoftRequest  true  "Loft details"
// @Success      201   {object}  loftResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/lofts [post]
func (h *LoftHandler) Create(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createLoftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	loft, err := h.service.Create(c.Request().Context(), ports.CreateLoftInput{
		OwnerID: p.User.ID,
		Name:    req.Name,
		Alias:   req.Alias,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toLoftResponse(loft))
}

// Update changes a loft's alias. Owner only.
//
// @Summary      Update a loft
// @Tags         lofts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Loft ID"
// @Param        body  body      updateLoftRequest  true  "Fields to update"
// @Success      200   {object}  loftResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/lofts/{id} [put]
func (h *LoftHandler) Update(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateLoftRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	loft, err := h.service.Update(c.Request().Context(), ports.UpdateLoftInput{
		UserID: p.User.ID,
		LoftID: c.Param("id"),
		Alias:  req.Alias,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toLoftResponse(loft))
}

// ListMembers returns the loft's access list. Any member may view it.
//
// @Summary      List loft members
// @Tags         lofts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Loft ID"
// @Success      200  {object}  listMembersResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/lofts/{id}/members [get]
func (h *LoftHandler) ListMembers(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	members, err := h.service.ListMembers(c.Request().Context(), p.User.ID, c.Param("id"))
	if err != nil {
		return err
	}

	data := make([]loftMemberResponse, len(members))
	for i, m := range members {
		data[i] = loftMemberResponse{
			MembershipID: m.MembershipID,
			UserID:       m.UserID,
			Name:         m.UserName,
			Email:        m.UserEmail,
			Role:         string(m.Role),
			GrantedAt:    m.GrantedAt,
		}
	}
	return c.JSON(http.StatusOK, listMembersResponse{Data: data})
}

// Grant adds a collaborator to the loft. Owner only.
//
// @Summary      Grant loft access
// @Tags         lofts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Loft ID"
// @Param        body  body      grantAccessRequest  true  "User to grant"
// @Success      201   {object}  membershipResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/lofts/{id}/members [post]
func (h *LoftHandler) Grant(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req grantAccessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	m, err := h.service.Grant(c.Request().Context(), p.User.ID, c.Param("id"), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toMembershipResponse(m))
}

// Revoke removes a member's access to the loft. Owner only.
//
// @Summary      Revoke loft access
// @Tags         lofts
// @Security     BearerAuth
// @Param        id       path  string  true  "Loft ID"
// @Param        user_id  path  string  true  "Member's user ID"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/lofts/{id}/members/{user_id} [delete]
func (h *LoftHandler) Revoke(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Revoke(c.Request().Context(), p.User.ID, c.Param("id"), c.Param("user_id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Memberships returns the caller's raw membership relations.
//
// @Summary      List my memberships
// @Tags         lofts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listMembershipsResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/roles [get]
func (h *LoftHandler) Memberships(c echo.Context) error {
	p, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	relations, err := h.service.Memberships(c.Request().Context(), p.User.ID)
	if err != nil {
		return err
	}

	data := make([]membershipResponse, len(relations))
	for i, m := range relations {
		data[i] = toMembershipResponse(m)
	}
	return c.JSON(http.StatusOK, listMembershipsResponse{Data: data})
}

func toMembershipResponse(m *domain.Membership) membershipResponse {
	return membershipResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		LoftID:    m.LoftID,
		Role:      string(m.Role),
		GrantedAt: m.GrantedAt,
	}
}
