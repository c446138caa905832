package reconcile

import (
	"testing"

	"flat-monitor/core/reconcile"
	"flat-monitor/feature/flats/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func stringPtr(s string) *string  { return &s }
func boolPtr(b bool) *bool        { return &b }

func TestFlatAdapter_Key(t *testing.T) {
	a := NewAdapter()
	assert.Equal(t, "flats", a.Name())
	assert.Equal(t, int64(42), a.Key(models.Flat{ID: 42}))
}

func TestFlatAdapter_CompareFields_Equal(t *testing.T) {
	a := NewAdapter()
	f := models.Flat{
		ID: 1, Rooms: "1", Price: 8_000_000, Status: "free", URL: "https://pik.ru/flat/1",
		Area: floatPtr(35.2), Floor: intPtr(7), Location: stringPtr("A"), IsResell: boolPtr(false),
	}
	// Separate pointers with equal values must compare equal.
	g := f
	g.Area = floatPtr(35.2)
	g.Floor = intPtr(7)

	assert.Empty(t, a.CompareFields(f, g))
}

func TestFlatAdapter_CompareFields_Order(t *testing.T) {
	a := NewAdapter()
	old := models.Flat{ID: 1, Rooms: "studio", Price: 9_000_000, Status: "reserve"}
	cur := models.Flat{ID: 1, Rooms: "1", Price: 8_000_000, Status: "free", Floor: intPtr(3)}

	changes := a.CompareFields(old, cur)

	require.Len(t, changes, 4)
	assert.Equal(t, reconcile.FieldChange{Field: "price", Old: int64(9_000_000), New: int64(8_000_000)}, changes[0])
	assert.Equal(t, reconcile.FieldChange{Field: "status", Old: "reserve", New: "free"}, changes[1])
	assert.Equal(t, reconcile.FieldChange{Field: "floor", Old: nil, New: 3}, changes[2])
	assert.Equal(t, reconcile.FieldChange{Field: "rooms", Old: "studio", New: "1"}, changes[3])
}

func TestFlatAdapter_CompareFields_NullHandling(t *testing.T) {
	a := NewAdapter()

	tests := []struct {
		name string
		old  models.Flat
		new  models.Flat
		diff bool
	}{
		{"both absent", models.Flat{}, models.Flat{}, false},
		{"absent vs zero", models.Flat{}, models.Flat{Discount: new(int64)}, true},
		{"absent vs empty string", models.Flat{}, models.Flat{Location: stringPtr("")}, true},
		{"absent vs false", models.Flat{IsPreSale: boolPtr(false)}, models.Flat{}, true},
		{"zero vs zero", models.Flat{Discount: new(int64)}, models.Flat{Discount: new(int64)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := a.CompareFields(tt.old, tt.new)
			assert.Equal(t, tt.diff, len(changes) > 0)
		})
	}
}
