// internal/domain/rota/category.go
package rota

// TimingCategory is the shift-timing classification for a line on a given day number.
type TimingCategory string

const (
	CategoryEarly  TimingCategory = "Early"
	CategoryMiddle TimingCategory = "Middle"
	CategoryLate   TimingCategory = "Late"
)

// String returns the display form used in bot replies.
func (c TimingCategory) String() string {
	return string(c)
}
