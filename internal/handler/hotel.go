package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// HotelHandler serves hotels, their room types and stay bookings.
type HotelHandler struct {
	Store store.Store
}

func NewHotelHandler(s store.Store) *HotelHandler {
	return &HotelHandler{Store: s}
}

type hotelReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
}

func (h *HotelHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	hotels, err := h.Store.ListHotels(ctx)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, hotels)
}

func (h *HotelHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	hotel, err := h.Store.GetHotel(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

func (h *HotelHandler) Create(c echo.Context) error {
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	hotel := &model.Hotel{
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Location:    req.Location,
		Category:    req.Category,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateHotel(ctx, hotel); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, hotel)
}

func (h *HotelHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.Name) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	hotel, err := h.Store.GetHotel(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	hotel.Name = strings.TrimSpace(req.Name)
	hotel.Description = req.Description
	hotel.Location = req.Location
	hotel.Category = req.Category
	if err := h.Store.UpdateHotel(ctx, hotel); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, hotel)
}

func (h *HotelHandler) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.DeleteHotel(ctx, id); err != nil {
		return storeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type hotelRoomReq struct {
	RoomType           string `json:"room_type"`
	PricePerNightCents uint32 `json:"price_per_night_cents"`
	MaxOccupancy       int    `json:"max_occupancy"`
	TotalRooms         int    `json:"total_rooms"`
}

func (r *hotelRoomReq) validate() string {
	switch {
	case strings.TrimSpace(r.RoomType) == "":
		return "room_type required"
	case r.MaxOccupancy < 1:
		return "max_occupancy must be at least 1"
	case r.TotalRooms < 1:
		return "total_rooms must be at least 1"
	}
	return ""
}

func (h *HotelHandler) ListRooms(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	rooms, err := h.Store.ListHotelRooms(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

func (h *HotelHandler) CreateRoom(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req hotelRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	room := &model.HotelRoom{
		HotelID:            id,
		RoomType:           strings.TrimSpace(req.RoomType),
		PricePerNightCents: req.PricePerNightCents,
		MaxOccupancy:       req.MaxOccupancy,
		TotalRooms:         req.TotalRooms,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateHotelRoom(ctx, room); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

func (h *HotelHandler) UpdateRoom(c echo.Context) error {
	hotelID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	roomID, err := parseID(c, "roomID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	var req hotelRoomReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	room := &model.HotelRoom{
		ID:                 roomID,
		HotelID:            hotelID,
		RoomType:           strings.TrimSpace(req.RoomType),
		PricePerNightCents: req.PricePerNightCents,
		MaxOccupancy:       req.MaxOccupancy,
		TotalRooms:         req.TotalRooms,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.UpdateHotelRoom(ctx, room); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

func (h *HotelHandler) DeleteRoom(c echo.Context) error {
	hotelID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	roomID, err := parseID(c, "roomID")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.DeleteHotelRoom(ctx, hotelID, roomID); err != nil {
		return storeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

type hotelBookingReq struct {
	RoomID   uint64 `json:"room_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

// CreateBooking reserves one room of a room type for [check_in,
// check_out). The store counts overlapping stays against total_rooms,
// so a fully booked range answers 409.
func (h *HotelHandler) CreateBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req hotelBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	switch {
	case req.RoomID == 0:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_id required"})
	case req.FullName == "" || req.Email == "":
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name and email required"})
	case !validDate(req.CheckIn) || !validDate(req.CheckOut):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_in and check_out must be YYYY-MM-DD"})
	case req.CheckOut <= req.CheckIn:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "check_out must be after check_in"})
	case req.Guests < 1:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "guests must be at least 1"})
	}

	b := &model.HotelBooking{
		HotelID:   id,
		RoomID:    req.RoomID,
		Reference: uuid.NewString(),
		FullName:  req.FullName,
		Email:     req.Email,
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Guests:    req.Guests,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Store.CreateHotelBooking(ctx, b); err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusCreated, b)
}

func (h *HotelHandler) ListBookings(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	bookings, err := h.Store.ListHotelBookings(ctx, id)
	if err != nil {
		return storeErr(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}
