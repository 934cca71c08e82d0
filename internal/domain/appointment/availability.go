package appointment

// TimeSlot is one bookable slot of a day as shown to callers.
type TimeSlot struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}
