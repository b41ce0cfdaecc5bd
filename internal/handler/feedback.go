package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// FeedbackHandler serves post-trip feedback, the public contact form
// and testimonials.
type FeedbackHandler struct {
	Store store.Store
}

func NewFeedbackHandler(s store.Store) *FeedbackHandler {
	return &FeedbackHandler{Store: s}
}

type feedbackReq struct {
	TourID      *uint64 `json:"tour_id"`
	ItineraryID *uint64 `json:"itinerary_id"`
	Rating      int     `json:"rating"`
	Category    string  `json:"category"`
	Comment     string  `json:"comment"`
	IsPublic    bool    `json:"is_public"`
}

// Create records feedback for the authenticated user. The store checks
// any tour/itinerary references.
func (h *FeedbackHandler) Create(c echo.Context) error {
	var req feedbackReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}

	f := &model.Feedback{
		UserID:      authedUserID(c),
		TourID:      req.TourID,
		ItineraryID: req.ItineraryID,
		Rating:      req.Rating,
		Category:    req.Category,
		Comment:     req.Comment,
		IsPublic:    req.IsPublic,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateFeedback(ctx, f); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, f)
}

// MyFeedback lists the caller's own feedback entries.
func (h *FeedbackHandler) MyFeedback(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Store.ListFeedback(ctx, store.FeedbackFilter{UserID: authedUserID(c)})
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// AdminList returns every feedback entry for moderation.
func (h *FeedbackHandler) AdminList(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Store.ListFeedback(ctx, store.FeedbackFilter{})
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

type inquiryReq struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Subject  string `json:"subject"`
	Message  string `json:"message"`
}

// CreateInquiry accepts a message from the public contact form.
func (h *FeedbackHandler) CreateInquiry(c echo.Context) error {
	var req inquiryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.FullName == "" || req.Email == "" || strings.TrimSpace(req.Message) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name, email and message required"})
	}

	i := &model.Inquiry{
		FullName: req.FullName,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateInquiry(ctx, i); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, i)
}

func (h *FeedbackHandler) ListInquiries(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Store.ListInquiries(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *FeedbackHandler) MarkInquiryResponded(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	i, err := h.Store.MarkInquiryResponded(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, i)
}

type testimonialReq struct {
	Author  string `json:"author"`
	Country string `json:"country"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

// ListTestimonials returns approved testimonials for guests.
func (h *FeedbackHandler) ListTestimonials(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Store.ListTestimonials(ctx, true)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// AdminListTestimonials includes unapproved entries.
func (h *FeedbackHandler) AdminListTestimonials(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Store.ListTestimonials(ctx, false)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, items)
}

// CreateTestimonial adds an unapproved testimonial for review.
func (h *FeedbackHandler) CreateTestimonial(c echo.Context) error {
	var req testimonialReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Author = strings.TrimSpace(req.Author)
	switch {
	case req.Author == "" || strings.TrimSpace(req.Content) == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "author and content required"})
	case req.Rating < 1 || req.Rating > 5:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rating must be between 1 and 5"})
	}

	t := &model.Testimonial{
		Author:  req.Author,
		Country: req.Country,
		Content: req.Content,
		Rating:  req.Rating,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateTestimonial(ctx, t); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *FeedbackHandler) ApproveTestimonial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Store.ApproveTestimonial(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *FeedbackHandler) DeleteTestimonial(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.DeleteTestimonial(ctx, id); err != nil {
		return storeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
