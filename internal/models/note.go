package models

import "gorm.io/gorm"

// Visit types for BasicInfo.VisitType.
const (
	VisitTypeVisited  = "visited"
	VisitTypePlanning = "planning"
	VisitTypeWishlist = "wishlist"
)

// Visibility values for BasicInfo.Visibility.
const (
	VisibilityPublic   = "public"
	VisibilityPersonal = "personal"
)

// DefaultPlaceSource is assigned when the client does not say where a place came from.
const DefaultPlaceSource = "openstreetmap"

// UnknownPlaceName is the sentinel for places whose name could not be resolved.
const UnknownPlaceName = "Unknown Place"

// Place is the canonical, schema-stable representation of a geographic location.
// Lat/Lng are nil when the source payload carried no parseable coordinate; they are
// stored as NULL and serialized as JSON null, never NaN.
type Place struct {
	Name    string   `json:"name"`
	City    string   `json:"city"`
	State   string   `json:"state"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
	Source  string   `json:"source"` // manual | google | mapbox | openstreetmap
}

// BasicInfo groups the required core of a note.
type BasicInfo struct {
	Place      Place  `json:"place"      gorm:"embedded;embeddedPrefix:place_"`
	VisitType  string `json:"visitType"  gorm:"index"`
	Visibility string `json:"visibility" gorm:"index"`
	Rating     int    `json:"rating,omitempty"`
}

// TravelDetails describes how the trip was made. Mode is an optional enum; an
// unset mode is omitted entirely, never stored as "".
type TravelDetails struct {
	Mode            string  `json:"mode,omitempty"` // train | bus | car | bike | flight
	TransportNumber string  `json:"transportNumber,omitempty"`
	From            string  `json:"from,omitempty"`
	To              string  `json:"to,omitempty"`
	Duration        string  `json:"duration,omitempty"`
	ApproxCost      float64 `json:"approxCost,omitempty"`
}

// StayDetails describes lodging. BookingType follows the same empty-omission rule as Mode.
type StayDetails struct {
	HotelName         string `json:"hotelName,omitempty"`
	PriceRange        string `json:"priceRange,omitempty"`
	BookingType       string `json:"bookingType,omitempty"` // online | offline
	CleanlinessRating int    `json:"cleanlinessRating,omitempty"`
	LocationAdvantage string `json:"locationAdvantage,omitempty"`
}

type FoodDetails struct {
	MustTryFood      []string `json:"mustTryFood,omitempty"`
	FoodPriceRange   string   `json:"foodPriceRange,omitempty"`
	BestTimeToEat    string   `json:"bestTimeToEat,omitempty"`
	LocalSpecialDish string   `json:"localSpecialDish,omitempty"`
}

type NearbyPlace struct {
	Name      string `json:"name"`
	Distance  string `json:"distance,omitempty"`
	BestRoute string `json:"bestRoute,omitempty"`
}

type Warnings struct {
	CommonMistakes string `json:"commonMistakes,omitempty"`
	CrowdTiming    string `json:"crowdTiming,omitempty"`
	WeatherIssues  string `json:"weatherIssues,omitempty"`
	HiddenCharges  string `json:"hiddenCharges,omitempty"`
}

// NoteModel is a travel-journal entry owned by exactly one user.
type NoteModel struct {
	Base
	BasicInfo          BasicInfo      `json:"basicInfo"               gorm:"embedded"`
	TravelDetails      *TravelDetails `json:"travelDetails,omitempty" gorm:"serializer:json"`
	StayDetails        *StayDetails   `json:"stayDetails,omitempty"   gorm:"serializer:json"`
	FoodDetails        *FoodDetails   `json:"foodDetails,omitempty"   gorm:"serializer:json"`
	NearbyPlaces       []NearbyPlace  `json:"nearbyPlaces,omitempty"  gorm:"serializer:json"`
	Warnings           *Warnings      `json:"warnings,omitempty"      gorm:"serializer:json"`
	PersonalExperience string         `json:"personalExperience,omitempty" gorm:"type:longtext"`
	NoteText           string         `json:"noteText,omitempty"      gorm:"type:longtext"`
	UserID             string         `json:"user"                    gorm:"index;not null"`

	// LegacyIsPublic was written by an earlier schema generation instead of
	// BasicInfo.Visibility. It is reconciled into the canonical field on read and
	// never produced by new writes.
	LegacyIsPublic *bool `json:"-" gorm:"column:is_public"`
}

func (NoteModel) TableName() string { return "notes" }

// AfterFind folds legacy rows into the canonical visibility representation so callers
// only ever see one schema shape.
func (n *NoteModel) AfterFind(tx *gorm.DB) error {
	n.ReconcileLegacy()
	return nil
}

// ReconcileLegacy maps the legacy is_public boolean onto the visibility enum for rows
// written before visibility existed. Rows that carry a canonical visibility win.
func (n *NoteModel) ReconcileLegacy() {
	if n.BasicInfo.Visibility == "" && n.LegacyIsPublic != nil {
		if *n.LegacyIsPublic {
			n.BasicInfo.Visibility = VisibilityPublic
		} else {
			n.BasicInfo.Visibility = VisibilityPersonal
		}
	}
}

// IsPublic reports whether the note is discoverable without authentication.
func (n *NoteModel) IsPublic() bool {
	n.ReconcileLegacy()
	return n.BasicInfo.Visibility == VisibilityPublic
}

// ValidVisitType reports enum membership for BasicInfo.VisitType.
func ValidVisitType(v string) bool {
	switch v {
	case VisitTypeVisited, VisitTypePlanning, VisitTypeWishlist:
		return true
	}
	return false
}

// ValidVisibility reports enum membership for BasicInfo.Visibility.
func ValidVisibility(v string) bool {
	return v == VisibilityPublic || v == VisibilityPersonal
}

// ValidTravelMode reports enum membership for TravelDetails.Mode.
func ValidTravelMode(v string) bool {
	switch v {
	case "train", "bus", "car", "bike", "flight":
		return true
	}
	return false
}

// ValidBookingType reports enum membership for StayDetails.BookingType.
func ValidBookingType(v string) bool {
	return v == "online" || v == "offline"
}
