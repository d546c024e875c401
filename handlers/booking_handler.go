package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"safarihub/models"
	"safarihub/payments"
	"safarihub/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func CreateBooking(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var input struct {
		TourID       string `json:"tourId" binding:"required"`
		TourDate     string `json:"tourDate" binding:"required"`
		NumPeople    int    `json:"numPeople" binding:"required"`
		ContactName  string `json:"contactName" binding:"required"`
		ContactEmail string `json:"contactEmail" binding:"required,email"`
		ContactPhone string `json:"contactPhone"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tourID, err := uuid.Parse(input.TourID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tourId"})
		return
	}

	tourDate, err := time.Parse("2006-01-02", input.TourDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tour date format, use YYYY-MM-DD"})
		return
	}

	if input.NumPeople < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "numPeople must be at least 1"})
		return
	}

	booking := models.Booking{
		TourID:       tourID,
		TourDate:     tourDate,
		NumPeople:    input.NumPeople,
		ContactName:  input.ContactName,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
	}

	if kind := dataStore.CreateBooking(c.Request.Context(), principal, &booking); kind != store.KindNone {
		if kind == store.KindNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "tour not found"})
			return
		}
		abortForKind(c, kind)
		return
	}

	// Checkout hand-off. The booking survives a processor outage; payment
	// stays PENDING until the processor's event arrives.
	if paymentClient != nil {
		token, err := paymentClient.CreateCharge(c.Request.Context(), booking.TotalAmount, "USD", booking.ID.String(), []payments.LineItem{
			{
				Name:       fmt.Sprintf("Tour booking %s", booking.ID),
				Quantity:   booking.NumPeople,
				UnitAmount: booking.TotalAmount / int64(booking.NumPeople),
			},
		})
		if err != nil {
			log.Printf("Payment hand-off failed for booking %s: %v", booking.ID, err)
		} else {
			booking.PaymentRef = token
			dataStore.SetBookingPaymentRef(c.Request.Context(), booking.ID, token)
		}
	}

	c.JSON(http.StatusCreated, booking)
}

func GetMyBookings(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, _ := dataStore.BookingsForUser(c.Request.Context(), principal)
	c.JSON(http.StatusOK, bookings)
}

func GetAllBookings(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	bookings, kind := dataStore.AllBookings(c.Request.Context(), principal)
	if kind == store.KindForbidden {
		abortForKind(c, kind)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func UpdateBookingStatus(c *gin.Context) {
	principal, err := principalFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking ID"})
		return
	}

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	status, err := models.ParseBookingStatus(body.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if kind := dataStore.UpdateBookingStatus(c.Request.Context(), principal, id, status); kind != store.KindNone {
		abortForKind(c, kind)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully"})
}
