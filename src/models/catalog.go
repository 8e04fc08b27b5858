package models

import "evorgs/src/types"

// The four catalogs are owned by the vendor-facing side of the product.
// The booking engine only ever reads them through catalog.Resolver.

type Venue struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `json:"name,omitempty"`
	Location      string  `json:"location,omitempty"`
	PricePerEvent float64 `json:"price_per_event,omitempty"`
	Capacity      uint    `json:"capacity,omitempty"`
	VendorID      uint    `json:"vendor_id,omitempty"`
	IsAvailable   bool    `gorm:"default:true" json:"is_available"`

	types.Timestamps
}

type FarmHouse struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `json:"name,omitempty"`
	Location      string  `json:"location,omitempty"`
	PricePerNight float64 `json:"price_per_night,omitempty"`
	Rooms         uint    `json:"rooms,omitempty"`
	VendorID      uint    `json:"vendor_id,omitempty"`
	IsAvailable   bool    `gorm:"default:true" json:"is_available"`

	types.Timestamps
}

type CateringPackage struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `json:"name,omitempty"`
	PricePerGuest float64 `json:"price_per_guest,omitempty"`
	MinGuests     uint    `json:"min_guests,omitempty"`
	MaxGuests     uint    `json:"max_guests,omitempty"`
	VendorID      uint    `json:"vendor_id,omitempty"`
	IsAvailable   bool    `gorm:"default:true" json:"is_available"`

	types.Timestamps
}

type PhotographyPackage struct {
	ID            uint    `gorm:"primarykey" json:"id"`
	Name          string  `json:"name,omitempty"`
	PackagePrice  float64 `json:"package_price,omitempty"`
	DurationHours uint    `json:"duration_hours,omitempty"`
	VendorID      uint    `json:"vendor_id,omitempty"`
	IsAvailable   bool    `gorm:"default:true" json:"is_available"`

	types.Timestamps
}
