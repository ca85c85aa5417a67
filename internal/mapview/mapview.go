// Package mapview derives the map widget data from a geolocation record.
package mapview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/qdm12/geotrack/internal/constants"
	"github.com/qdm12/geotrack/internal/models"
)

var (
	ErrLocEmpty           = errors.New("location is empty")
	ErrLocMalformed       = errors.New("location is malformed")
	ErrLatitudeOutOfRange = errors.New("latitude is out of range")
	ErrLongitudeOutRange  = errors.New("longitude is out of range")
)

// ParseLoc parses a "latitude,longitude" string.
func ParseLoc(loc string) (latitude, longitude float64, err error) {
	if strings.TrimSpace(loc) == "" {
		return 0, 0, fmt.Errorf("%w", ErrLocEmpty)
	}

	fields := strings.Split(loc, ",")
	const expectedFields = 2
	if len(fields) != expectedFields {
		return 0, 0, fmt.Errorf("%w: %q has %d fields instead of %d",
			ErrLocMalformed, loc, len(fields), expectedFields)
	}

	const bits = 64
	latitude, err = strconv.ParseFloat(strings.TrimSpace(fields[0]), bits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude: %w", ErrLocMalformed, err)
	}
	longitude, err = strconv.ParseFloat(strings.TrimSpace(fields[1]), bits)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude: %w", ErrLocMalformed, err)
	}

	const maxLatitude, maxLongitude = 90, 180
	switch {
	case latitude < -maxLatitude || latitude > maxLatitude:
		return 0, 0, fmt.Errorf("%w: %g", ErrLatitudeOutOfRange, latitude)
	case longitude < -maxLongitude || longitude > maxLongitude:
		return 0, 0, fmt.Errorf("%w: %g", ErrLongitudeOutRange, longitude)
	}

	return latitude, longitude, nil
}

// New returns the map data centered on the record coordinates.
// ok is false when the record has no usable coordinates, in which
// case no map should be rendered.
func New(record *models.GeoRecord) (data models.MapData, ok bool) {
	if record == nil {
		return data, false
	}

	latitude, longitude, err := ParseLoc(record.Loc)
	if err != nil {
		return data, false
	}

	return models.MapData{
		Latitude:    latitude,
		Longitude:   longitude,
		Zoom:        constants.MapZoom,
		Popup:       Popup(*record),
		TileURL:     constants.MapTileURL,
		Attribution: constants.MapTileAttribution,
	}, true
}

// Popup returns the marker popup text "city, country".
func Popup(record models.GeoRecord) string {
	return record.City + ", " + record.Country
}
