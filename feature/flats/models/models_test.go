package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		rooms string
		want  Category
	}{
		{"0", CategoryStudio},
		{"studio", CategoryStudio},
		{"студия", CategoryStudio},
		{"1", CategoryOneRoom},
		{"2", CategoryOther},
		{"", CategoryOther},
		{"Studio", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.rooms, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.rooms))
		})
	}
}

func TestFilterMonitored(t *testing.T) {
	flats := []Flat{{ID: 1, Rooms: "2"}, {ID: 2, Rooms: "1"}, {ID: 3, Rooms: "studio"}, {ID: 4, Rooms: "3"}}

	kept := FilterMonitored(flats)

	assert.Len(t, kept, 2)
	assert.Equal(t, int64(2), kept[0].ID)
	assert.Equal(t, int64(3), kept[1].ID)
}

func TestMonitoredTokens(t *testing.T) {
	assert.Equal(t, []string{"0", "studio", "студия", "1"}, MonitoredTokens())
	assert.Nil(t, CategoryOther.Tokens())
}

func TestFlat_Validate(t *testing.T) {
	assert.NoError(t, Flat{ID: 1}.Validate())
	assert.ErrorIs(t, Flat{}.Validate(), ErrValidation)
	assert.ErrorIs(t, Flat{ID: -4}.Validate(), ErrValidation)
}

func TestTrackedFields_AbsentVsZero(t *testing.T) {
	zero := 0
	absent := Flat{ID: 1}
	present := Flat{ID: 1, Floor: &zero}

	var floor TrackedField
	for _, f := range TrackedFields {
		if f.Name == "floor" {
			floor = f
		}
	}

	assert.Nil(t, floor.Value(absent))
	assert.Equal(t, 0, floor.Value(present))
	assert.NotEqual(t, floor.Value(absent), floor.Value(present))
}

func TestTrackedFields_Unique(t *testing.T) {
	seen := map[string]bool{}
	for _, f := range TrackedFields {
		assert.False(t, seen[f.Name], "duplicate tracked field %s", f.Name)
		seen[f.Name] = true
	}
	// Every tracked field has a column, plus id and last_seen.
	assert.Len(t, TrackedColumns, len(TrackedFields)+2)
}
