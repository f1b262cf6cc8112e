package rentalsvc

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/shashank1027/car-rental-system/repository/events"
	rentalrepo "github.com/shashank1027/car-rental-system/repository/rental"
)

type OverdueRepo interface {
	ClaimOverdue(ctx context.Context, before time.Time) ([]rentalrepo.OverdueRow, error)
}

// Sweeper flags rentals that blew past their planned return date and
// announces each one exactly once.
type Sweeper interface {
	SweepOverdue(ctx context.Context) (int, error)
}

type sweeper struct {
	r        OverdueRepo
	producer Producer
	topic    string
}

func NewSweeper(r OverdueRepo, producer Producer, topic string) Sweeper {
	return &sweeper{r: r, producer: producer, topic: topic}
}

func (s *sweeper) SweepOverdue(ctx context.Context) (int, error) {
	rows, err := s.r.ClaimOverdue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	for _, row := range rows {
		if s.producer == nil || s.topic == "" {
			continue
		}
		err := s.producer.Publish(ctx, s.topic, strconv.FormatInt(row.RentalID, 10), events.RentalEvent{
			Type:         events.TypeRentalOverdue,
			RentalID:     row.RentalID,
			CustomerID:   row.CustomerID,
			CarID:        row.CarID,
			CustomerName: row.CustomerName,
			ReturnDate:   row.ReturnDate,
			OccurredAt:   time.Now(),
		})
		if err != nil {
			slog.Warn("overdue event publish failed", "rental_id", row.RentalID, "err", err)
		}
	}
	return len(rows), nil
}
