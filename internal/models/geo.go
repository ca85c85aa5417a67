package models

import "fmt"

// GeoRecord is the location payload returned by both the backend
// home endpoint and the public IP lookup services.
type GeoRecord struct {
	IP       string `json:"ip"`
	City     string `json:"city,omitempty"`
	Region   string `json:"region,omitempty"`
	Country  string `json:"country,omitempty"`
	Loc      string `json:"loc,omitempty"`
	Org      string `json:"org,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

func (g GeoRecord) String() string {
	return fmt.Sprintf("%s (%s, %s, %s)", g.IP, g.City, g.Region, g.Country)
}

// HistoryEntry is a past successful lookup keyed by its IP address.
type HistoryEntry struct {
	IP  string    `json:"ip"`
	Geo GeoRecord `json:"geo"`
}
