package store

import (
	"context"
	"math"

	"safarihub/models"

	"github.com/google/uuid"
)

// CreateBooking writes a booking for the authenticated user. The total is
// computed here in minor units from the tour's current price (discount price
// when set), not trusted from the request.
func (s *Store) CreateBooking(ctx context.Context, p Principal, booking *models.Booking) ErrorKind {
	if p.UserID == uuid.Nil {
		return KindForbidden
	}

	var tour models.Tour
	if err := s.db.WithContext(ctx).Where("id = ? AND active = ?", booking.TourID, true).First(&tour).Error; err != nil {
		return fail("create booking: load tour", err)
	}

	unit := tour.Price
	if tour.DiscountPrice != nil {
		unit = *tour.DiscountPrice
	}

	booking.UserID = p.UserID
	booking.TotalAmount = int64(math.Round(unit*100)) * int64(booking.NumPeople)
	booking.Status = models.BookingPending
	booking.PaymentStatus = models.PaymentPending

	if err := s.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fail("create booking", err)
	}

	return KindNone
}

// BookingsForUser lists the caller's own bookings.
func (s *Store) BookingsForUser(ctx context.Context, p Principal) ([]models.Booking, ErrorKind) {
	if p.UserID == uuid.Nil {
		return []models.Booking{}, KindForbidden
	}

	bookings := []models.Booking{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", p.UserID).
		Order("created_at DESC").
		Preload("Tour").
		Find(&bookings).Error
	if err != nil {
		return []models.Booking{}, fail("bookings for user", err)
	}
	return bookings, KindNone
}

func (s *Store) AllBookings(ctx context.Context, p Principal) ([]models.Booking, ErrorKind) {
	if !p.IsAdmin() {
		return []models.Booking{}, KindForbidden
	}

	bookings := []models.Booking{}
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Preload("Tour").
		Find(&bookings).Error
	if err != nil {
		return []models.Booking{}, fail("all bookings", err)
	}
	return bookings, KindNone
}

func (s *Store) UpdateBookingStatus(ctx context.Context, p Principal, id uuid.UUID, status models.BookingStatus) ErrorKind {
	if !p.IsAdmin() {
		return KindForbidden
	}

	res := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return fail("update booking status", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}
	return KindNone
}

// SetBookingPaymentRef records the processor's confirmation token after
// checkout hand-off.
func (s *Store) SetBookingPaymentRef(ctx context.Context, id uuid.UUID, ref string) ErrorKind {
	res := s.db.WithContext(ctx).Model(&models.Booking{}).Where("id = ?", id).Update("payment_ref", ref)
	if res.Error != nil {
		return fail("set booking payment ref", res.Error)
	}
	if res.RowsAffected == 0 {
		return KindNotFound
	}
	return KindNone
}

// MarkBookingPayment applies an asynchronous payment outcome. A PAID outcome
// also confirms the booking; REFUNDED cancels it. Called from the payment
// event subscriber, so there is no principal.
func (s *Store) MarkBookingPayment(ctx context.Context, id uuid.UUID, status models.PaymentStatus, ref string) ErrorKind {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return fail("mark booking payment: load", err)
	}

	updates := map[string]interface{}{"payment_status": status}
	if ref != "" {
		updates["payment_ref"] = ref
	}
	switch status {
	case models.PaymentPaid:
		updates["status"] = models.BookingConfirmed
	case models.PaymentRefunded:
		updates["status"] = models.BookingCancelled
	}

	if err := s.db.WithContext(ctx).Model(&booking).Updates(updates).Error; err != nil {
		return fail("mark booking payment", err)
	}
	return KindNone
}
