package note

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/Rohit273848/travel-notes-app/internal/models"
)

// NoteInput is the write payload for create and update. It accepts two dialects:
// the canonical nested shape (basicInfo/travelDetails/...) and the legacy flat shape
// (top-level placeName/isPublic/visitType). Everything downstream of the adapter in
// canonicalBasicInfo sees only the nested shape.
type NoteInput struct {
	BasicInfo     *BasicInfoInput      `json:"basicInfo"`
	TravelDetails *TravelDetailsInput  `json:"travelDetails"`
	StayDetails   *StayDetailsInput    `json:"stayDetails"`
	FoodDetails   *models.FoodDetails  `json:"foodDetails"`
	NearbyPlaces  []models.NearbyPlace `json:"nearbyPlaces"`
	Warnings      *models.Warnings     `json:"warnings"`

	PersonalExperience *string `json:"personalExperience"`
	NoteText           *string `json:"noteText"`

	// Legacy flat dialect. Not persisted; folded into basicInfo by the adapter.
	Place      *PlaceInput `json:"place"`
	PlaceName  string      `json:"placeName"`
	IsPublic   *bool       `json:"isPublic"`
	VisitType  string      `json:"visitType"`
	Visibility string      `json:"visibility"`
	Rating     *int        `json:"rating"`
}

// BasicInfoInput mirrors models.BasicInfo but keeps optionality visible and tolerates
// the legacy isPublic alias nested inside basicInfo.
type BasicInfoInput struct {
	Place      *PlaceInput `json:"place"`
	VisitType  string      `json:"visitType"`
	Visibility string      `json:"visibility"`
	IsPublic   *bool       `json:"isPublic"`
	Rating     *int        `json:"rating"`
}

// TravelDetailsInput tolerates the legacy trainOrBusNumber field name.
type TravelDetailsInput struct {
	Mode             string  `json:"mode"`
	TransportNumber  string  `json:"transportNumber"`
	TrainOrBusNumber string  `json:"trainOrBusNumber"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	Duration         string  `json:"duration"`
	ApproxCost       float64 `json:"approxCost"`
}

type StayDetailsInput struct {
	HotelName         string `json:"hotelName"`
	PriceRange        string `json:"priceRange"`
	BookingType       string `json:"bookingType"`
	CleanlinessRating *int   `json:"cleanlinessRating"`
	LocationAdvantage string `json:"locationAdvantage"`
}

// PlaceInput is whatever the client calls a place: a bare string, a structured
// autocomplete payload with a nested address object, or an already-canonical place.
type PlaceInput struct {
	Name        string        `json:"name"`
	DisplayName string        `json:"display_name"`
	City        string        `json:"city"`
	State       string        `json:"state"`
	Country     string        `json:"country"`
	Address     *placeAddress `json:"address"`
	Lat         LooseFloat    `json:"lat"`
	Lng         LooseFloat    `json:"lng"`
	Lon         LooseFloat    `json:"lon"` // alternate longitude key used by OSM payloads
	Source      string        `json:"source"`
}

type placeInputAlias PlaceInput

// UnmarshalJSON lets a plain JSON string stand in for a whole place object: it becomes
// the place name, everything else takes its documented fallback.
func (p *PlaceInput) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		*p = PlaceInput{Name: name}
		return nil
	}
	var alias placeInputAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = PlaceInput(alias)
	return nil
}

type placeAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	State   string `json:"state"`
	Country string `json:"country"`
}

// LooseFloat coerces JSON numbers, numeric strings, and null into an optional float.
// Anything unparseable (or NaN/Inf) resolves to nil so unknown coordinates stay null
// instead of propagating NaN into stored records. Unmarshal never fails.
type LooseFloat struct {
	Value *float64
}

func (f *LooseFloat) UnmarshalJSON(data []byte) error {
	f.Value = nil
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return nil
		}
		s = strings.TrimSpace(str)
		if s == "" {
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	f.Value = &v
	return nil
}

// hasBasicFields reports whether the input carries any basic-info data in either dialect.
func (in *NoteInput) hasBasicFields() bool {
	return in.BasicInfo != nil ||
		in.Place != nil || in.PlaceName != "" ||
		in.VisitType != "" || in.Visibility != "" ||
		in.IsPublic != nil || in.Rating != nil
}

// canonicalBasicInfo folds whichever dialect arrived into the nested canonical shape.
// Returns nil when the input carries no basic-info data at all.
func (in *NoteInput) canonicalBasicInfo() *BasicInfoInput {
	if in.BasicInfo != nil {
		bi := *in.BasicInfo
		if bi.Visibility == "" && bi.IsPublic != nil {
			bi.Visibility = visibilityFromLegacy(*bi.IsPublic)
		}
		return &bi
	}
	if !in.hasBasicFields() {
		return nil
	}

	bi := BasicInfoInput{
		Place:      in.Place,
		VisitType:  in.VisitType,
		Visibility: in.Visibility,
		Rating:     in.Rating,
	}
	if bi.Place == nil && in.PlaceName != "" {
		bi.Place = &PlaceInput{Name: in.PlaceName}
	}
	if bi.Visibility == "" && in.IsPublic != nil {
		bi.Visibility = visibilityFromLegacy(*in.IsPublic)
	}
	return &bi
}

func visibilityFromLegacy(isPublic bool) string {
	if isPublic {
		return models.VisibilityPublic
	}
	return models.VisibilityPersonal
}
