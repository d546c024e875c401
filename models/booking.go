package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type Booking struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"userId"`
	TourID        uuid.UUID     `gorm:"type:uuid;not null;index" json:"tourId"`
	Tour          Tour          `gorm:"foreignKey:TourID" json:"tour,omitempty"`
	TourDate      time.Time     `gorm:"not null" json:"tourDate"`
	NumPeople     int           `gorm:"not null" json:"numPeople"`
	TotalAmount   int64         `gorm:"not null" json:"totalAmount"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'PENDING'" json:"paymentStatus"`
	PaymentRef    string        `gorm:"type:varchar(255)" json:"paymentRef"`
	ContactName   string        `gorm:"type:varchar(255);not null" json:"contactName"`
	ContactEmail  string        `gorm:"type:varchar(255);not null" json:"contactEmail"`
	ContactPhone  string        `gorm:"type:varchar(50)" json:"contactPhone"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func ParseBookingStatus(statusStr string) (BookingStatus, error) {
	switch statusStr {
	case string(BookingPending):
		return BookingPending, nil
	case string(BookingConfirmed):
		return BookingConfirmed, nil
	case string(BookingCompleted):
		return BookingCompleted, nil
	case string(BookingCancelled):
		return BookingCancelled, nil
	default:
		return "", fmt.Errorf("invalid booking status: %s", statusStr)
	}
}

func ParsePaymentStatus(statusStr string) (PaymentStatus, error) {
	switch statusStr {
	case string(PaymentPending):
		return PaymentPending, nil
	case string(PaymentPaid):
		return PaymentPaid, nil
	case string(PaymentFailed):
		return PaymentFailed, nil
	case string(PaymentRefunded):
		return PaymentRefunded, nil
	default:
		return "", fmt.Errorf("invalid payment status: %s", statusStr)
	}
}
