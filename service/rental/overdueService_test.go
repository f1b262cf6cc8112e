// service/rental/overdueService_test.go
package rentalsvc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/shashank1027/car-rental-system/repository/events"
	rentalrepo "github.com/shashank1027/car-rental-system/repository/rental"
)

type overdueRepoMock struct {
	rows []rentalrepo.OverdueRow
	err  error
	got  time.Time
}

func (m *overdueRepoMock) ClaimOverdue(ctx context.Context, before time.Time) ([]rentalrepo.OverdueRow, error) {
	m.got = before
	return m.rows, m.err
}

func TestSweepOverdue_PublishesEachClaimedRow(t *testing.T) {
	due := date("2024-01-04")
	r := &overdueRepoMock{rows: []rentalrepo.OverdueRow{
		{RentalID: 11, CustomerID: 7, CarID: 5, CustomerName: "Shashank", ReturnDate: due},
		{RentalID: 12, CustomerID: 8, CarID: 6, CustomerName: "Priya", ReturnDate: due},
	}}
	p := &producerMock{}
	s := NewSweeper(r, p, "rental_events")

	n, err := s.SweepOverdue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.WithinDuration(t, time.Now().UTC(), r.got, 5*time.Second)

	require.Equal(t, []string{"11", "12"}, p.keys)
	for _, ev := range p.events {
		require.Equal(t, events.TypeRentalOverdue, ev.Type)
		require.Equal(t, due, ev.ReturnDate)
	}
	require.Equal(t, int64(7), p.events[0].CustomerID)
	require.Equal(t, int64(8), p.events[1].CustomerID)
}

func TestSweepOverdue_NothingClaimed(t *testing.T) {
	p := &producerMock{}
	s := NewSweeper(&overdueRepoMock{}, p, "rental_events")

	n, err := s.SweepOverdue(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
	require.Empty(t, p.events)
}

func TestSweepOverdue_RepoError(t *testing.T) {
	boom := errors.New("db down")
	s := NewSweeper(&overdueRepoMock{err: boom}, &producerMock{}, "rental_events")

	_, err := s.SweepOverdue(context.Background())
	require.ErrorIs(t, err, boom)
}

func TestSweepOverdue_PublishFailureLogged(t *testing.T) {
	warns := captureWarnings(t)
	r := &overdueRepoMock{rows: []rentalrepo.OverdueRow{{RentalID: 11}}}
	p := &producerMock{err: errors.New("kafka: broker unreachable")}
	s := NewSweeper(r, p, "rental_events")

	n, err := s.SweepOverdue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Contains(t, warns.msgs, "overdue event publish failed")
}

func TestSweepOverdue_NoProducerStillCounts(t *testing.T) {
	r := &overdueRepoMock{rows: []rentalrepo.OverdueRow{{RentalID: 11}}}
	s := NewSweeper(r, nil, "")

	n, err := s.SweepOverdue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
