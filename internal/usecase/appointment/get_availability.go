package appointment

import (
	"context"
	"time"

	domain "github.com/VelvetRowStudio/salon-manager/internal/domain/appointment"
	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/timezone"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute lists the free slots of a date: grid slots minus confirmed
// appointments minus anything already in the past.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	dateStr string,
) ([]domain.TimeSlot, error) {

	salon, err := uc.repo.GetSalon(ctx)
	if err != nil {
		return nil, err
	}

	grid := domain.GridFromSalon(salon)
	loc := timezone.Location(salon.Timezone)

	date, err := timezone.DateIn(salon.Timezone, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	confirmed, err := uc.repo.ListConfirmedForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(confirmed))
	for _, ap := range confirmed {
		taken[ap.TimeSlot] = true
	}

	now := timezone.NowIn(salon.Timezone)
	step := time.Duration(grid.SlotMinutes) * time.Minute

	slots := []domain.TimeSlot{}
	for _, label := range grid.Slots() {
		if taken[label] {
			continue
		}

		start, err := grid.StartAt(date, label, loc)
		if err != nil {
			continue
		}
		if !start.After(now) {
			continue
		}

		slots = append(slots, domain.TimeSlot{
			Label: label,
			Start: start.Format("15:04"),
			End:   start.Add(step).Format("15:04"),
		})
	}

	return slots, nil
}
