package constants

const (
	MapTileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	MapTileAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
	MapZoom            = 10
)
