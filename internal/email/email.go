package email

import (
	"context"
	"fmt"

	"github.com/shawn910604/taipei-day-trip/internal/kafka"
)

type Sender struct{}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.OrderEvent) error {
	fmt.Printf("send email to %s about order %s (%s, status %d)\n", event.ContactEmail, event.OrderNumber, event.Type, event.Status)
	return nil
}
