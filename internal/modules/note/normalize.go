package note

import (
	"strings"

	"github.com/Rohit273848/travel-notes-app/internal/models"
)

// NormalizePlace turns a heterogeneous place payload into the canonical Place. The
// function is pure and total: any unresolvable field degrades to its documented
// fallback, and the returned name is never empty.
//
// Resolution order:
//
//	name:    name → first comma segment of display_name → "Unknown Place"
//	city:    city → address.city → address.town → address.village → ""
//	state:   state → address.state → ""
//	country: country → address.country → ""
//	lng:     lng → lon → null
//	source:  source → "openstreetmap"
func NormalizePlace(raw *PlaceInput) models.Place {
	place := models.Place{
		Name:   models.UnknownPlaceName,
		Source: models.DefaultPlaceSource,
	}
	if raw == nil {
		return place
	}

	if name := strings.TrimSpace(raw.Name); name != "" {
		place.Name = name
	} else if name := displayNameHead(raw.DisplayName); name != "" {
		place.Name = name
	}

	place.City = firstNonEmpty(raw.City, addressCity(raw.Address))
	place.State = firstNonEmpty(raw.State, addressField(raw.Address, func(a *placeAddress) string { return a.State }))
	place.Country = firstNonEmpty(raw.Country, addressField(raw.Address, func(a *placeAddress) string { return a.Country }))

	place.Lat = raw.Lat.Value
	place.Lng = raw.Lng.Value
	if place.Lng == nil {
		place.Lng = raw.Lon.Value
	}

	if source := strings.TrimSpace(raw.Source); source != "" {
		place.Source = source
	}
	return place
}

// displayNameHead extracts the leading comma-delimited segment of a provider
// display name, e.g. "Goa, India" → "Goa".
func displayNameHead(displayName string) string {
	head, _, _ := strings.Cut(displayName, ",")
	return strings.TrimSpace(head)
}

func addressCity(a *placeAddress) string {
	if a == nil {
		return ""
	}
	return firstNonEmpty(a.City, a.Town, a.Village)
}

func addressField(a *placeAddress, get func(*placeAddress) string) string {
	if a == nil {
		return ""
	}
	return get(a)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
