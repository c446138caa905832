package models

// Category is the classification derived from the rooms token of a flat.
type Category string

const (
	CategoryStudio  Category = "studio"
	CategoryOneRoom Category = "one_room"
	CategoryOther   Category = "other"
)

// Rooms tokens the listing API uses per monitored category.
var (
	StudioTokens  = []string{"0", "studio", "студия"}
	OneRoomTokens = []string{"1"}
)

// MonitoredCategories lists the tracked categories in report order.
var MonitoredCategories = []Category{CategoryStudio, CategoryOneRoom}

// Classify maps a rooms token to its category.
func Classify(rooms string) Category {
	for _, t := range StudioTokens {
		if rooms == t {
			return CategoryStudio
		}
	}
	for _, t := range OneRoomTokens {
		if rooms == t {
			return CategoryOneRoom
		}
	}
	return CategoryOther
}

// Tokens returns the rooms tokens of a category, for store queries.
func (c Category) Tokens() []string {
	switch c {
	case CategoryStudio:
		return StudioTokens
	case CategoryOneRoom:
		return OneRoomTokens
	default:
		return nil
	}
}

// IsMonitored reports whether the category is tracked.
func (c Category) IsMonitored() bool {
	return c == CategoryStudio || c == CategoryOneRoom
}

// Label is the human-readable plural name used in reports.
func (c Category) Label() string {
	switch c {
	case CategoryStudio:
		return "Studios"
	case CategoryOneRoom:
		return "1-room"
	default:
		return "Other"
	}
}

// MonitoredTokens returns the rooms tokens of every monitored category.
func MonitoredTokens() []string {
	tokens := make([]string, 0, len(StudioTokens)+len(OneRoomTokens))
	for _, c := range MonitoredCategories {
		tokens = append(tokens, c.Tokens()...)
	}
	return tokens
}

// FilterMonitored keeps the flats of monitored categories, preserving order.
func FilterMonitored(flats []Flat) []Flat {
	out := make([]Flat, 0, len(flats))
	for _, f := range flats {
		if f.Category().IsMonitored() {
			out = append(out, f)
		}
	}
	return out
}
