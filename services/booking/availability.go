package booking

import (
	"context"
	"fmt"
	"sort"

	"salonify/models"
)

// BookedTimes returns the slots on date held by a non-canceled booking, in
// slot order.
func (s *DefaultBookingService) BookedTimes(ctx context.Context, date string) ([]string, error) {
	if !models.IsValidDate(date) {
		return nil, invalidInput("date %q must be formatted YYYY-MM-DD", date)
	}
	bookings, err := s.Repo.ListByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}

	seen := make(map[string]bool)
	times := []string{}
	for _, b := range bookings {
		if b.Date != date || b.Status == models.StatusCanceled || seen[b.Time] {
			continue
		}
		seen[b.Time] = true
		times = append(times, b.Time)
	}
	sort.SliceStable(times, func(i, j int) bool {
		return slotRank(times[i]) < slotRank(times[j])
	})
	return times, nil
}

// slotRank puts unknown times (legacy data) after the fixed slots.
func slotRank(t string) int {
	if i := models.SlotIndex(t); i >= 0 {
		return i
	}
	return len(models.TimeSlots)
}

// Availability lists every slot with its booked flag.
func (s *DefaultBookingService) Availability(ctx context.Context, date string) ([]models.SlotAvailability, error) {
	booked, err := s.BookedTimes(ctx, date)
	if err != nil {
		return nil, err
	}
	taken := make(map[string]bool, len(booked))
	for _, t := range booked {
		taken[t] = true
	}

	slots := make([]models.SlotAvailability, 0, len(models.TimeSlots))
	for _, t := range models.TimeSlots {
		slots = append(slots, models.SlotAvailability{Time: t, Booked: taken[t]})
	}
	return slots, nil
}
