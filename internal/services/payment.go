package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ysfrd/dream-accessory-ecommerce/internal/logging"
	"github.com/ysfrd/dream-accessory-ecommerce/internal/models"
)

// Receipt is the outcome of a simulated payment.
type Receipt struct {
	OrderID   string
	Total     float64
	CardLast4 string
	PaidAt    time.Time
}

// PaymentService simulates payment processing. There is no real processor
// behind it: success is resolved after a fixed artificial delay.
//
// Cancellation contract: if ctx is cancelled before the delay elapses the
// payment is dropped — Pay returns ErrPaymentCancelled and nothing is
// applied. A payment that already resolved is never rolled back.
type PaymentService interface {
	Pay(ctx context.Context, total float64, card models.Card) (*Receipt, error)
}

type paymentService struct {
	delay time.Duration
	log   logging.Logger
	now   func() time.Time
}

// NewPaymentService constructs a PaymentService resolving after delay.
func NewPaymentService(delay time.Duration, log logging.Logger) PaymentService {
	return &paymentService{delay: delay, log: log, now: time.Now}
}

func (s *paymentService) Pay(ctx context.Context, total float64, card models.Card) (*Receipt, error) {
	if card.CardNumber == "" {
		return nil, ErrNoCard
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		s.log.Warn(ctx, "payment cancelled before completion")
		return nil, ErrPaymentCancelled
	case <-timer.C:
	}

	cleaned := strings.ReplaceAll(card.CardNumber, " ", "")
	last4 := cleaned
	if len(cleaned) > 4 {
		last4 = cleaned[len(cleaned)-4:]
	}

	receipt := &Receipt{
		OrderID:   uuid.NewString(),
		Total:     total,
		CardLast4: last4,
		PaidAt:    s.now(),
	}
	s.log.Info(ctx, "payment completed", "order", receipt.OrderID, "total", receipt.Total)
	return receipt, nil
}
