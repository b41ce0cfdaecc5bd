package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// OperatorHandler serves tour operator browse and admin CRUD.
type OperatorHandler struct {
	Store store.Store
}

func NewOperatorHandler(s store.Store) *OperatorHandler {
	return &OperatorHandler{Store: s}
}

type operatorReq struct {
	Name           string   `json:"name"`
	Website        string   `json:"website"`
	Specialties    []string `json:"specialties"`
	Rating         float64  `json:"rating"`
	Certifications []string `json:"certifications"`
}

func (h *OperatorHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	ops, err := h.Store.ListOperators(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, ops)
}

func (h *OperatorHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	o, err := h.Store.GetOperator(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

func (h *OperatorHandler) Create(c echo.Context) error {
	var req operatorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	o := &model.TourOperator{
		Name:           strings.TrimSpace(req.Name),
		Website:        req.Website,
		Specialties:    req.Specialties,
		Rating:         req.Rating,
		Certifications: req.Certifications,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateOperator(ctx, o); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, o)
}

func (h *OperatorHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req operatorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	o, err := h.Store.GetOperator(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	o.Name = strings.TrimSpace(req.Name)
	o.Website = req.Website
	o.Specialties = req.Specialties
	o.Rating = req.Rating
	o.Certifications = req.Certifications
	if err := h.Store.UpdateOperator(ctx, o); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, o)
}

// Delete removes the operator; its tours survive with operator_id
// cleared in the same transaction.
func (h *OperatorHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.DeleteOperator(ctx, id); err != nil {
		return storeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
