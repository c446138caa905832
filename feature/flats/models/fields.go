package models

// TrackedField is one attribute compared between two versions of a flat.
type TrackedField struct {
	// Name is the field label used in change reports.
	Name string
	// Value returns the comparable value, or nil when the attribute is absent.
	Value func(f Flat) any
}

// TrackedFields is the fixed, ordered list of attributes taking part in change detection.
// Values are dereferenced so that two absent values compare equal, an absent value
// differs from any present one (nil != 0, nil != ""), and present values compare by value.
var TrackedFields = []TrackedField{
	{"price", func(f Flat) any { return f.Price }},
	{"status", func(f Flat) any { return f.Status }},
	{"area", func(f Flat) any { return deref(f.Area) }},
	{"floor", func(f Flat) any { return deref(f.Floor) }},
	{"rooms", func(f Flat) any { return f.Rooms }},
	{"url", func(f Flat) any { return f.URL }},
	{"location", func(f Flat) any { return deref(f.Location) }},
	{"type_id", func(f Flat) any { return deref(f.TypeID) }},
	{"guid", func(f Flat) any { return deref(f.GUID) }},
	{"bulk_id", func(f Flat) any { return deref(f.BulkID) }},
	{"section_id", func(f Flat) any { return deref(f.SectionID) }},
	{"sale_scheme_id", func(f Flat) any { return deref(f.SaleSchemeID) }},
	{"ceiling_height", func(f Flat) any { return deref(f.CeilingHeight) }},
	{"is_pre_sale", func(f Flat) any { return deref(f.IsPreSale) }},
	{"rooms_fact", func(f Flat) any { return deref(f.RoomsFact) }},
	{"number", func(f Flat) any { return deref(f.Number) }},
	{"number_bti", func(f Flat) any { return deref(f.NumberBTI) }},
	{"number_stage", func(f Flat) any { return deref(f.NumberStage) }},
	{"min_month_fee", func(f Flat) any { return deref(f.MinMonthFee) }},
	{"discount", func(f Flat) any { return deref(f.Discount) }},
	{"has_advertising_price", func(f Flat) any { return deref(f.HasAdvertisingPrice) }},
	{"has_new_price", func(f Flat) any { return deref(f.HasNewPrice) }},
	{"area_bti", func(f Flat) any { return deref(f.AreaBTI) }},
	{"area_project", func(f Flat) any { return deref(f.AreaProject) }},
	{"callback", func(f Flat) any { return deref(f.Callback) }},
	{"kitchen_furniture", func(f Flat) any { return deref(f.KitchenFurniture) }},
	{"booking_cost", func(f Flat) any { return deref(f.BookingCost) }},
	{"compass_angle", func(f Flat) any { return deref(f.CompassAngle) }},
	{"booking_status", func(f Flat) any { return deref(f.BookingStatus) }},
	{"pdf", func(f Flat) any { return deref(f.PDF) }},
	{"is_resell", func(f Flat) any { return deref(f.IsResell) }},
}

// deref returns the pointed-to value as an interface, or an untyped nil.
func deref[T comparable](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

// TrackedColumns lists the table columns the repository needs, for schema checks.
var TrackedColumns = []string{
	"id", "rooms", "price", "status", "url", "area", "floor",
	"location", "type_id", "guid", "bulk_id", "section_id", "sale_scheme_id",
	"ceiling_height", "is_pre_sale", "rooms_fact", "number", "number_bti",
	"number_stage", "min_month_fee", "discount", "has_advertising_price",
	"has_new_price", "area_bti", "area_project", "callback", "kitchen_furniture",
	"booking_cost", "compass_angle", "booking_status", "pdf", "is_resell", "last_seen",
}
