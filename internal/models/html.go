package models

// LoginPage contains the fields rendered by the login template.
// It is exported so that the HTML template engine can render it.
type LoginPage struct {
	RootURL string
	Email   string
	Error   string
}

// HomePage contains the fields rendered by the home template.
// It is exported so that the HTML template engine can render it.
type HomePage struct {
	RootURL  string
	Geo      *GeoRecord
	Error    string
	History  []HistoryRow
	Selected int
	Map      *MapData
}

// HistoryRow is a single line of the search history list.
type HistoryRow struct {
	IP       string
	Selected bool
	Active   bool
}

// MapData is the map widget data, only set when the displayed
// record has coordinates.
type MapData struct {
	Latitude    float64
	Longitude   float64
	Zoom        int
	Popup       string
	TileURL     string
	Attribution string
}
