package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// GuideHandler serves public guide/driver registration and the admin
// registry.
type GuideHandler struct {
	Store store.Store
}

func NewGuideHandler(s store.Store) *GuideHandler {
	return &GuideHandler{Store: s}
}

type guideReq struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	RegistrationType string   `json:"registration_type"`
	LicenseNumber    string   `json:"license_number"`
	Specializations  []string `json:"specializations"`
}

// Register creates a guide or driver record. Status always starts
// not_assigned regardless of what the client sends.
func (h *GuideHandler) Register(c echo.Context) error {
	var req guideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case req.Name == "" || req.Email == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and email required"})
	case !model.ValidRegistrationType(req.RegistrationType):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "registration_type must be guide or driver"})
	case req.RegistrationType == model.RegistrationDriver && strings.TrimSpace(req.LicenseNumber) == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "license_number required for drivers"})
	}

	g := &model.Guide{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		RegistrationType: req.RegistrationType,
		LicenseNumber:    strings.TrimSpace(req.LicenseNumber),
		Specializations:  req.Specializations,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateGuide(ctx, g); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

// List filters by ?status= and ?type=.
func (h *GuideHandler) List(c echo.Context) error {
	f := store.GuideFilter{
		Status:           c.QueryParam("status"),
		RegistrationType: c.QueryParam("type"),
	}
	if f.Status != "" && !model.ValidGuideStatus(f.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	guides, err := h.Store.ListGuides(ctx, f)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, guides)
}

func (h *GuideHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	g, err := h.Store.GetGuide(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

// UpdateStatus flips assignment status, including blacklisting.
func (h *GuideHandler) UpdateStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !model.ValidGuideStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	g, err := h.Store.UpdateGuideStatus(ctx, id, req.Status)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, g)
}
