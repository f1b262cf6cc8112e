package notification

import (
	"context"
	"log/slog"

	"github.com/shashank1027/car-rental-system/repository/events"
)

// Sender is the notification end of the rental-events topic. Real
// delivery is out of scope; it writes what an email would say.
type Sender struct {
	log *slog.Logger
}

func NewSender(log *slog.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, ev events.RentalEvent) error {
	switch ev.Type {
	case events.TypeRentalCreated:
		s.log.Info("notify: booking confirmed",
			"rental_id", ev.RentalID, "customer_id", ev.CustomerID,
			"car_id", ev.CarID, "total_cost", ev.TotalCost,
			"return_by", ev.ReturnDate)
	case events.TypeRentalReturned:
		s.log.Info("notify: car returned",
			"rental_id", ev.RentalID, "customer_id", ev.CustomerID,
			"car_id", ev.CarID)
	case events.TypeRentalOverdue:
		s.log.Warn("notify: rental overdue",
			"rental_id", ev.RentalID, "customer_id", ev.CustomerID,
			"car_id", ev.CarID, "was_due", ev.ReturnDate)
	default:
		s.log.Info("notify: rental event", "type", ev.Type, "rental_id", ev.RentalID)
	}
	return nil
}
