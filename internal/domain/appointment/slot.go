package appointment

import (
	"time"

	"github.com/VelvetRowStudio/salon-manager/internal/httperr"
	"github.com/VelvetRowStudio/salon-manager/internal/models"
)

// SlotLabelLayout is the canonical wire format of a slot, e.g. "09:00 AM".
const SlotLabelLayout = "03:04 PM"

const (
	DefaultOpenTime    = "09:00"
	DefaultCloseTime   = "17:00"
	DefaultSlotMinutes = 30
)

// Grid is the bookable daily window of the salon, sliced into
// fixed-size slots. Built from the Salon settings row.
type Grid struct {
	Open        string // "15:04"
	Close       string // "15:04"
	SlotMinutes int
}

func DefaultGrid() Grid {
	return Grid{
		Open:        DefaultOpenTime,
		Close:       DefaultCloseTime,
		SlotMinutes: DefaultSlotMinutes,
	}
}

func GridFromSalon(s *models.Salon) Grid {
	g := DefaultGrid()
	if s == nil {
		return g
	}
	if s.OpenTime != "" {
		g.Open = s.OpenTime
	}
	if s.CloseTime != "" {
		g.Close = s.CloseTime
	}
	if s.SlotMinutes > 0 {
		g.SlotMinutes = s.SlotMinutes
	}
	return g
}

func (g Grid) step() time.Duration {
	return time.Duration(g.SlotMinutes) * time.Minute
}

func (g Grid) bounds() (time.Time, time.Time) {
	open, err := time.Parse("15:04", g.Open)
	if err != nil {
		open, _ = time.Parse("15:04", DefaultOpenTime)
	}
	closing, err := time.Parse("15:04", g.Close)
	if err != nil {
		closing, _ = time.Parse("15:04", DefaultCloseTime)
	}
	return open, closing
}

// Slots returns every bookable label of the day, in order. The last
// slot starts one step before closing time.
func (g Grid) Slots() []string {
	open, closing := g.bounds()

	var labels []string
	for cur := open; cur.Before(closing); cur = cur.Add(g.step()) {
		labels = append(labels, cur.Format(SlotLabelLayout))
	}
	return labels
}

// Normalize parses a slot label and returns it in canonical form,
// rejecting labels that do not fall on the grid.
func (g Grid) Normalize(label string) (string, error) {
	t, err := time.Parse(SlotLabelLayout, label)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_time_slot")
	}

	open, closing := g.bounds()
	if t.Before(open) || !t.Before(closing) {
		return "", httperr.ErrBusiness("outside_booking_hours")
	}

	if int(t.Sub(open).Minutes())%g.SlotMinutes != 0 {
		return "", httperr.ErrBusiness("invalid_time_slot")
	}

	return t.Format(SlotLabelLayout), nil
}

// StartAt anchors a slot label on a calendar date in the salon timezone.
func (g Grid) StartAt(date time.Time, label string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(SlotLabelLayout, label)
	if err != nil {
		return time.Time{}, httperr.ErrBusiness("invalid_time_slot")
	}

	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		loc,
	), nil
}
