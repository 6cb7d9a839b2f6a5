package note

import (
	"fmt"
	"strings"

	"github.com/Rohit273848/travel-notes-app/internal/models"
)

// ValidationError kinds.
const (
	KindMissingField = "missing_field"
	KindInvalidEnum  = "invalid_enum"
	KindOutOfRange   = "out_of_range"
)

// ValidationError is a client-fixable rejection of a note payload. It always blocks
// the repository call entirely.
type ValidationError struct {
	Kind    string
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func missingField(field string) *ValidationError {
	return &ValidationError{Kind: KindMissingField, Field: field, Message: "required field is missing"}
}

func invalidEnum(field, value string) *ValidationError {
	return &ValidationError{Kind: KindInvalidEnum, Field: field, Message: fmt.Sprintf("%q is not a valid value", value)}
}

func outOfRange(field string) *ValidationError {
	return &ValidationError{Kind: KindOutOfRange, Field: field, Message: "must be between 1 and 5"}
}

// buildNote validates a create payload and assembles the canonical note for owner.
// The place check runs first so a missing place never reaches the datastore as an
// opaque constraint failure.
func buildNote(ownerID string, in *NoteInput) (*models.NoteModel, *ValidationError) {
	bi := in.canonicalBasicInfo()
	if bi == nil || bi.Place == nil {
		return nil, missingField("place")
	}

	note := &models.NoteModel{UserID: ownerID}
	if verr := applyBasicInfo(note, bi); verr != nil {
		return nil, verr
	}
	if verr := applyDetails(note, in); verr != nil {
		return nil, verr
	}
	return note, nil
}

// applyPatch validates an update payload and applies it to an existing note. Groups
// absent from the payload stay untouched; groups present replace the stored group.
func applyPatch(note *models.NoteModel, in *NoteInput) *ValidationError {
	if bi := in.canonicalBasicInfo(); bi != nil {
		if bi.Place == nil {
			return missingField("place")
		}
		if verr := applyBasicInfo(note, bi); verr != nil {
			return verr
		}
	}
	return applyDetails(note, in)
}

func applyBasicInfo(note *models.NoteModel, bi *BasicInfoInput) *ValidationError {
	place := NormalizePlace(bi.Place)

	visitType := strings.TrimSpace(bi.VisitType)
	if visitType == "" {
		return missingField("visitType")
	}
	if !models.ValidVisitType(visitType) {
		return invalidEnum("visitType", visitType)
	}

	visibility := strings.TrimSpace(bi.Visibility)
	if visibility == "" {
		return missingField("visibility")
	}
	if !models.ValidVisibility(visibility) {
		return invalidEnum("visibility", visibility)
	}

	rating := 0
	if bi.Rating != nil {
		if *bi.Rating < 1 || *bi.Rating > 5 {
			return outOfRange("rating")
		}
		rating = *bi.Rating
	}

	note.BasicInfo = models.BasicInfo{
		Place:      place,
		VisitType:  visitType,
		Visibility: visibility,
		Rating:     rating,
	}
	// Canonical writes never carry the legacy flag.
	note.LegacyIsPublic = nil
	return nil
}

func applyDetails(note *models.NoteModel, in *NoteInput) *ValidationError {
	if in.TravelDetails != nil {
		td, verr := canonicalTravelDetails(in.TravelDetails)
		if verr != nil {
			return verr
		}
		note.TravelDetails = td
	}
	if in.StayDetails != nil {
		sd, verr := canonicalStayDetails(in.StayDetails)
		if verr != nil {
			return verr
		}
		note.StayDetails = sd
	}
	if in.FoodDetails != nil {
		fd := *in.FoodDetails
		note.FoodDetails = &fd
	}
	if in.NearbyPlaces != nil {
		note.NearbyPlaces = in.NearbyPlaces
	}
	if in.Warnings != nil {
		w := *in.Warnings
		note.Warnings = &w
	}
	if in.PersonalExperience != nil {
		note.PersonalExperience = *in.PersonalExperience
	}
	if in.NoteText != nil {
		note.NoteText = *in.NoteText
	}
	return nil
}

// canonicalTravelDetails cleanses the optional mode enum before validating it: an
// empty string means "not set" and is dropped entirely, because the datastore's enum
// constraint treats "" as an invalid member.
func canonicalTravelDetails(in *TravelDetailsInput) (*models.TravelDetails, *ValidationError) {
	mode := strings.TrimSpace(in.Mode)
	if mode != "" && !models.ValidTravelMode(mode) {
		return nil, invalidEnum("travelDetails.mode", mode)
	}
	transportNumber := strings.TrimSpace(in.TransportNumber)
	if transportNumber == "" {
		transportNumber = strings.TrimSpace(in.TrainOrBusNumber)
	}
	return &models.TravelDetails{
		Mode:            mode,
		TransportNumber: transportNumber,
		From:            in.From,
		To:              in.To,
		Duration:        in.Duration,
		ApproxCost:      in.ApproxCost,
	}, nil
}

func canonicalStayDetails(in *StayDetailsInput) (*models.StayDetails, *ValidationError) {
	bookingType := strings.TrimSpace(in.BookingType)
	if bookingType != "" && !models.ValidBookingType(bookingType) {
		return nil, invalidEnum("stayDetails.bookingType", bookingType)
	}
	cleanliness := 0
	if in.CleanlinessRating != nil {
		if *in.CleanlinessRating < 1 || *in.CleanlinessRating > 5 {
			return nil, outOfRange("stayDetails.cleanlinessRating")
		}
		cleanliness = *in.CleanlinessRating
	}
	return &models.StayDetails{
		HotelName:         in.HotelName,
		PriceRange:        in.PriceRange,
		BookingType:       bookingType,
		CleanlinessRating: cleanliness,
		LocationAdvantage: in.LocationAdvantage,
	}, nil
}
