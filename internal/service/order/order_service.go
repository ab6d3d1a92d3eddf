package order

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shawn910604/taipei-day-trip/internal/domain"
	"github.com/shawn910604/taipei-day-trip/internal/kafka"
	"github.com/shawn910604/taipei-day-trip/internal/payment"
	"github.com/shawn910604/taipei-day-trip/internal/repository"
)

type OrderUseCase interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
	GetOrder(ctx context.Context, number string) (*domain.Order, error)
}

type CreateOrderInput struct {
	Prime string       `json:"prime"`
	Order OrderPayload `json:"order"`
}

type OrderPayload struct {
	Price   int64          `json:"price"`
	Trip    domain.Trip    `json:"trip"`
	Contact domain.Contact `json:"contact"`
}

// OrderResult carries the order number and the payment outcome. An unpaid
// outcome is still a successful result; the order row exists either way.
type OrderResult struct {
	Number  string
	Status  domain.OrderStatus
	Message string
}

// Producer publishes order events after reconciliation, best effort.
type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type OrderService struct {
	orders     repository.OrderRepository
	gateway    payment.Gateway
	producer   Producer
	orderTopic string
	now        func() time.Time
}

type OrderServiceOption func(*OrderService)

func WithProducer(producer Producer, topic string) OrderServiceOption {
	return func(s *OrderService) {
		s.producer = producer
		s.orderTopic = topic
	}
}

func NewOrderService(orders repository.OrderRepository, gateway payment.Gateway, opts ...OrderServiceOption) *OrderService {
	service := &OrderService{
		orders:  orders,
		gateway: gateway,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// CreateOrder runs the checkout protocol: validate, persist unpaid, charge
// through the gateway, reconcile. The order insert is never rolled back on a
// gateway failure; a declined or unreachable gateway leaves the row at
// unpaid, a terminal state for separate reconciliation tooling.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	order := &domain.Order{
		Number:       s.newOrderNumber(),
		Prime:        input.Prime,
		Price:        input.Order.Price,
		Attraction:   input.Order.Trip.Attraction,
		Date:         input.Order.Trip.Date,
		Time:         input.Order.Trip.Time,
		ContactName:  input.Order.Contact.Name,
		ContactEmail: input.Order.Contact.Email,
		ContactPhone: input.Order.Contact.Phone,
		Status:       domain.OrderStatusUnpaid,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	result := &OrderResult{Number: order.Number, Status: domain.OrderStatusUnpaid, Message: "UNPAID"}
	if err := s.gateway.PayByPrime(ctx, order); err != nil {
		log.Printf("order %s payment failed: %v", order.Number, err)
	} else {
		if err := s.orders.UpdateStatus(ctx, order.Number, domain.OrderStatusPaid); err != nil {
			return nil, fmt.Errorf("reconcile order %s: %w", order.Number, err)
		}
		order.Status = domain.OrderStatusPaid
		result.Status = domain.OrderStatusPaid
		result.Message = "PAID"
	}

	s.publish(ctx, order)
	return result, nil
}

func (s *OrderService) GetOrder(ctx context.Context, number string) (*domain.Order, error) {
	return s.orders.GetByNumber(ctx, number)
}

func validate(input CreateOrderInput) error {
	o := input.Order
	switch {
	case input.Prime == "",
		o.Price <= 0,
		o.Trip.Attraction.ID <= 0,
		o.Trip.Attraction.Name == "",
		o.Trip.Attraction.Address == "",
		o.Trip.Attraction.Image == "",
		o.Trip.Date == "",
		o.Trip.Time == "",
		o.Contact.Name == "",
		o.Contact.Email == "",
		o.Contact.Phone == "":
		return domain.ErrInvalidInput
	}
	return nil
}

// newOrderNumber combines a timestamp prefix, kept readable for support
// staff, with a uuid segment so concurrent checkouts never collide.
func (s *OrderService) newOrderNumber() string {
	ts := s.now().UTC().Format("20060102150405")
	id := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return ts + "-" + id
}

func (s *OrderService) publish(ctx context.Context, order *domain.Order) {
	if s.producer == nil || s.orderTopic == "" {
		return
	}
	eventType := "order_unpaid"
	if order.Status == domain.OrderStatusPaid {
		eventType = "order_paid"
	}
	event := kafka.OrderEvent{
		Type:         eventType,
		OrderNumber:  order.Number,
		Price:        order.Price,
		Attraction:   order.Attraction.Name,
		Date:         order.Date,
		Time:         order.Time,
		ContactEmail: order.ContactEmail,
		Status:       int(order.Status),
		CreatedAt:    s.now(),
	}
	if err := s.producer.Publish(ctx, s.orderTopic, order.Number, event); err != nil {
		log.Printf("publish %s event for order %s: %v", eventType, order.Number, err)
	}
}

var _ OrderUseCase = (*OrderService)(nil)
