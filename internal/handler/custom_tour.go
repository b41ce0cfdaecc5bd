package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// CustomTourHandler serves the free-form trip request flow.
type CustomTourHandler struct {
	Store store.Store
}

func NewCustomTourHandler(s store.Store) *CustomTourHandler {
	return &CustomTourHandler{Store: s}
}

type customTourReq struct {
	FullName     string   `json:"full_name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	DurationDays int      `json:"duration_days"`
	GroupSize    int      `json:"group_size"`
	BudgetCents  uint32   `json:"budget_cents"`
	Interests    []string `json:"interests"`
	Destinations []string `json:"destinations"`
}

// Create accepts a custom trip inquiry; it always starts pending.
func (h *CustomTourHandler) Create(c echo.Context) error {
	var req customTourReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case req.FullName == "" || req.Email == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name and email required"})
	case req.DurationDays < 1:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "duration_days must be at least 1"})
	case req.GroupSize < 1:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "group_size must be at least 1"})
	}

	r := &model.CustomTourRequest{
		FullName:     req.FullName,
		Email:        req.Email,
		Phone:        req.Phone,
		DurationDays: req.DurationDays,
		GroupSize:    req.GroupSize,
		BudgetCents:  req.BudgetCents,
		Interests:    req.Interests,
		Destinations: req.Destinations,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateCustomTourRequest(ctx, r); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, r)
}

func (h *CustomTourHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	reqs, err := h.Store.ListCustomTourRequests(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, reqs)
}

func (h *CustomTourHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	r, err := h.Store.GetCustomTourRequest(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

// UpdateStatus accepts or declines a request, optionally attaching
// admin notes.
func (h *CustomTourHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidRequestStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	r, err := h.Store.UpdateCustomTourRequestStatus(ctx, id, req.Status, req.Notes)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, r)
}
