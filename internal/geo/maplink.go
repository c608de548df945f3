package geo

import (
	"net/url"
	"strconv"
)

// MapLinks holds deep-links that open mapping apps at a coordinate.
// The JSON field names are part of the client contract.
type MapLinks struct {
	Amap  string `json:"amapUrl"`
	Apple string `json:"appleUrl"`
}

// Links builds map deep-links for a WGS-84 coordinate. Both providers expect
// GCJ-02, so the coordinate is transformed first. Amap wants lng,lat; Apple
// wants lat,lng.
func Links(lat, lng float64, label string) MapLinks {
	gLat, gLng := Transform(lat, lng)
	name := url.QueryEscape(label)
	return MapLinks{
		Amap:  "https://uri.amap.com/marker?position=" + formatCoord(gLng) + "," + formatCoord(gLat) + "&name=" + name,
		Apple: "https://maps.apple.com/?ll=" + formatCoord(gLat) + "," + formatCoord(gLng) + "&q=" + name,
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
