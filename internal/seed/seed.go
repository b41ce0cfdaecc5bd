// Package seed loads a small demo dataset through the store interface,
// so it works identically on the memory and MySQL backends.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/sonamdorji/tour-booking-platform/internal/model"
	"github.com/sonamdorji/tour-booking-platform/internal/store"
)

// Load inserts operators, tours, guides, festivals, hotels with rooms
// and a sample itinerary. It stops at the first error.
func Load(ctx context.Context, s store.Store) error {
	druk := &model.TourOperator{
		Name:        "Druk Heritage Travels",
		Website:     "https://drukheritage.example",
		Specialties: []string{"cultural", "festival"},
		Rating:      4.8,
	}
	himalaya := &model.TourOperator{
		Name:           "High Himalaya Expeditions",
		Website:        "https://highhimalaya.example",
		Specialties:    []string{"trekking"},
		Rating:         4.6,
		Certifications: []string{"mountain-guide-association"},
	}
	for _, o := range []*model.TourOperator{druk, himalaya} {
		if err := s.CreateOperator(ctx, o); err != nil {
			return fmt.Errorf("seed operator %q: %w", o.Name, err)
		}
	}

	tours := []*model.Tour{
		{
			OperatorID:   &druk.ID,
			Name:         "Western Valleys Cultural Circuit",
			Description:  "Seven days through Paro, Thimphu and Punakha with dzong and temple visits.",
			DurationDays: 7,
			PriceCents:   189_000,
			Category:     "Cultural",
			Rating:       4.7,
			Highlights:   []string{"Tiger's Nest hike", "Punakha Dzong", "weekend market"},
		},
		{
			OperatorID:   &himalaya.ID,
			Name:         "Druk Path Trek",
			Description:  "Classic five-day ridge trek between Paro and Thimphu past alpine lakes.",
			DurationDays: 5,
			PriceCents:   142_500,
			Category:     "Trekking",
			Rating:       4.5,
			Highlights:   []string{"Jimilang Tsho", "Phajoding monastery"},
		},
		{
			Name:         "Eastern Festivals Overland",
			Description:  "Ten days timed around the eastern tshechu calendar.",
			DurationDays: 10,
			PriceCents:   264_000,
			Category:     "Festival",
			Rating:       4.9,
			Highlights:   []string{"masked dances", "village homestays"},
		},
	}
	for _, t := range tours {
		if err := s.CreateTour(ctx, t); err != nil {
			return fmt.Errorf("seed tour %q: %w", t.Name, err)
		}
	}

	guides := []*model.Guide{
		{
			Name:             "Tashi Wangchuk",
			Email:            "tashi@guides.example",
			Phone:            "+975-17-111111",
			RegistrationType: model.RegistrationGuide,
			Specializations:  []string{"cultural", "birding"},
		},
		{
			Name:             "Karma Dema",
			Email:            "karma@guides.example",
			Phone:            "+975-17-222222",
			RegistrationType: model.RegistrationGuide,
			Specializations:  []string{"trekking"},
		},
		{
			Name:             "Sonam Dorji",
			Email:            "sonam@drivers.example",
			Phone:            "+975-17-333333",
			RegistrationType: model.RegistrationDriver,
			LicenseNumber:    "BT-DRV-0041",
		},
	}
	for _, g := range guides {
		if err := s.CreateGuide(ctx, g); err != nil {
			return fmt.Errorf("seed guide %q: %w", g.Name, err)
		}
	}

	festival := &model.Festival{
		Name:             "Paro Tshechu",
		Description:      "Spring festival at Rinpung Dzong ending with the thongdrol unfurling.",
		Location:         "Paro",
		StartDate:        "2026-03-28",
		EndDate:          "2026-04-01",
		MaxCapacity:      400,
		TicketPriceCents: 4_500,
	}
	if err := s.CreateFestival(ctx, festival); err != nil {
		return fmt.Errorf("seed festival: %w", err)
	}

	hotel := &model.Hotel{
		Name:        "Gangtey Lodge",
		Description: "Farmhouse-style lodge overlooking the Phobjikha valley.",
		Location:    "Phobjikha",
		Category:    "luxury",
	}
	if err := s.CreateHotel(ctx, hotel); err != nil {
		return fmt.Errorf("seed hotel: %w", err)
	}
	rooms := []*model.HotelRoom{
		{HotelID: hotel.ID, RoomType: "valley-view suite", PricePerNightCents: 38_000, MaxOccupancy: 2, TotalRooms: 8},
		{HotelID: hotel.ID, RoomType: "family room", PricePerNightCents: 52_000, MaxOccupancy: 4, TotalRooms: 4},
	}
	for _, r := range rooms {
		if err := s.CreateHotelRoom(ctx, r); err != nil {
			return fmt.Errorf("seed room %q: %w", r.RoomType, err)
		}
	}

	// One scheduled run of the cultural circuit with the first guide and
	// the driver assigned.
	it := &model.Itinerary{
		TourID:          tours[0].ID,
		Name:            "Cultural Circuit - April departure",
		StartDate:       "2026-04-06",
		EndDate:         "2026-04-12",
		GuideID:         &guides[0].ID,
		DriverID:        &guides[2].ID,
		MaxParticipants: 12,
		Status:          model.ItineraryActive,
		Days: []model.ItineraryDay{
			{DayNumber: 1, Activities: []string{"arrival in Paro", "Kyichu Lhakhang"}, Accommodation: "Paro hotel", Meals: []string{"dinner"}},
			{DayNumber: 2, Activities: []string{"Tiger's Nest hike"}, Accommodation: "Paro hotel", Meals: []string{"breakfast", "lunch", "dinner"}},
			{DayNumber: 3, Activities: []string{"drive to Thimphu", "weekend market"}, Accommodation: "Thimphu hotel", Meals: []string{"breakfast", "dinner"}},
		},
	}
	if err := s.CreateItinerary(ctx, it); err != nil {
		return fmt.Errorf("seed itinerary: %w", err)
	}

	booking := &model.Booking{
		TourID:     tours[1].ID,
		Reference:  uuid.NewString(),
		FullName:   "Elena Fischer",
		Email:      "elena@example.com",
		Phone:      "+49-30-5550101",
		TravelDate: "2026-10-12",
		GroupSize:  2,
	}
	if err := s.CreateBooking(ctx, booking); err != nil {
		return fmt.Errorf("seed booking: %w", err)
	}

	testimonial := &model.Testimonial{
		Author:  "Marta Kowalska",
		Country: "Poland",
		Content: "The festival timing was perfect and our guide knew every dance by name.",
		Rating:  5,
	}
	if err := s.CreateTestimonial(ctx, testimonial); err != nil {
		return fmt.Errorf("seed testimonial: %w", err)
	}
	if _, err := s.ApproveTestimonial(ctx, testimonial.ID); err != nil {
		return fmt.Errorf("approve seeded testimonial: %w", err)
	}

	return nil
}
