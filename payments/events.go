package payments

import (
	"context"
	"encoding/json"
	"log"

	"safarihub/models"
	"safarihub/store"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
)

const (
	EventsSubject = "payments.events"
	ReplySubject  = "payments.events.reply"
)

// Event is the processor's asynchronous payment outcome.
type Event struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

// Subscribe wires payment outcome events into booking state. Failures are
// answered with a FAILED reply so the processor side can retry or alert.
func Subscribe(natsConn *nats.Conn, s *store.Store) error {
	_, err := natsConn.Subscribe(EventsSubject, func(msg *nats.Msg) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Failed to parse payment event: %v", err)
			return
		}

		bookingID, err := uuid.Parse(event.BookingID)
		if err != nil {
			log.Printf("Invalid booking id in payment event: %v", err)
			publishReply(natsConn, event.BookingID, "FAILED")
			return
		}

		status, err := models.ParsePaymentStatus(event.Status)
		if err != nil {
			log.Printf("Invalid status in payment event: %v", err)
			publishReply(natsConn, event.BookingID, "FAILED")
			return
		}

		if kind := s.MarkBookingPayment(context.Background(), bookingID, status, event.Reference); kind != store.KindNone {
			log.Printf("Failed to apply payment event for booking %s: %s", event.BookingID, kind)
			publishReply(natsConn, event.BookingID, "FAILED")
			return
		}

		log.Printf("Payment %s applied to booking %s", event.Status, event.BookingID)
		publishReply(natsConn, event.BookingID, "APPLIED")
	})
	return err
}

func publishReply(natsConn *nats.Conn, bookingID, status string) {
	reply := map[string]interface{}{
		"bookingId": bookingID,
		"status":    status,
	}
	replyBytes, _ := json.Marshal(reply)
	if err := natsConn.Publish(ReplySubject, replyBytes); err != nil {
		log.Printf("Failed to publish payment reply: %v", err)
	}
}
