package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks a record that cannot be tracked, e.g. one without an id.
var ErrValidation = errors.New("invalid flat record")

// StatusFree is the status of a flat open for sale. Any other status means
// the flat is reserved or sold.
const StatusFree = "free"

// Flat is one unit of the monitored residential complex as stored in the flats table.
//
// The core fields (ID, Rooms, Price, Status) drive the business rules. Every other
// attribute only takes part in change detection. Pointer fields are optional:
// nil means the listing API did not report the value, which is not the same as zero.
type Flat struct {
	ID     int64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Rooms  string `gorm:"column:rooms;index" json:"rooms"`
	Price  int64  `gorm:"index" json:"price"` // rubles
	Status string `json:"status"`
	URL    string `gorm:"column:url" json:"url"`

	Area  *float64 `json:"area,omitempty"`
	Floor *int     `json:"floor,omitempty"`

	Location            *string  `json:"location,omitempty"`
	TypeID              *int64   `json:"type_id,omitempty"`
	GUID                *string  `gorm:"column:guid" json:"guid,omitempty"`
	BulkID              *int64   `json:"bulk_id,omitempty"`
	SectionID           *int64   `json:"section_id,omitempty"`
	SaleSchemeID        *int64   `json:"sale_scheme_id,omitempty"`
	CeilingHeight       *float64 `json:"ceiling_height,omitempty"`
	IsPreSale           *bool    `json:"is_pre_sale,omitempty"`
	RoomsFact           *int64   `json:"rooms_fact,omitempty"`
	Number              *string  `json:"number,omitempty"`
	NumberBTI           *string  `gorm:"column:number_bti" json:"number_bti,omitempty"`
	NumberStage         *int64   `json:"number_stage,omitempty"`
	MinMonthFee         *int64   `json:"min_month_fee,omitempty"`
	Discount            *int64   `json:"discount,omitempty"`
	HasAdvertisingPrice *bool    `json:"has_advertising_price,omitempty"`
	HasNewPrice         *bool    `json:"has_new_price,omitempty"`
	AreaBTI             *float64 `gorm:"column:area_bti" json:"area_bti,omitempty"`
	AreaProject         *float64 `json:"area_project,omitempty"`
	Callback            *bool    `json:"callback,omitempty"`
	KitchenFurniture    *bool    `json:"kitchen_furniture,omitempty"`
	BookingCost         *int64   `json:"booking_cost,omitempty"`
	CompassAngle        *int64   `json:"compass_angle,omitempty"`
	BookingStatus       *string  `json:"booking_status,omitempty"`
	PDF                 *string  `gorm:"column:pdf" json:"pdf,omitempty"`
	IsResell            *bool    `json:"is_resell,omitempty"`

	// LastSeen is set by the repository on every upsert. It is not a tracked field.
	LastSeen time.Time `gorm:"not null" json:"-"`
}

// TableName pins the table name regardless of naming strategy.
func (Flat) TableName() string {
	return "flats"
}

// Validate checks the identity field.
func (f Flat) Validate() error {
	if f.ID <= 0 {
		return fmt.Errorf("%w: id %d", ErrValidation, f.ID)
	}
	return nil
}

// Category returns the derived room category.
func (f Flat) Category() Category {
	return Classify(f.Rooms)
}

// IsFree reports whether the flat is open for sale.
func (f Flat) IsFree() bool {
	return f.Status == StatusFree
}
