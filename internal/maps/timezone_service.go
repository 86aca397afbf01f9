// README: Destination timezone lookup via Google Maps (geocode + timezone API).
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// TimezoneService resolves the IANA timezone of a destination city. It is
// used to cross-check the timezone the model claims for a destination.
type TimezoneService struct {
	client *maps.Client
}

// NewTimezoneService creates a TimezoneService with the given API key.
func NewTimezoneService(apiKey string) (*TimezoneService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create maps client: %w", err)
	}
	return &TimezoneService{client: client}, nil
}

// Lookup geocodes "city, country" and returns the IANA timezone ID at that
// location.
func (s *TimezoneService) Lookup(ctx context.Context, city, country string) (string, error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: city + ", " + country,
	})
	if err != nil {
		return "", fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(results) == 0 {
		return "", fmt.Errorf("no geocoding result for %q", city)
	}

	loc := results[0].Geometry.Location
	tz, err := s.client.Timezone(ctx, &maps.TimezoneRequest{
		Location:  &maps.LatLng{Lat: loc.Lat, Lng: loc.Lng},
		Timestamp: time.Now(),
	})
	if err != nil {
		return "", fmt.Errorf("timezone lookup for %q: %w", city, err)
	}
	return tz.TimeZoneID, nil
}
