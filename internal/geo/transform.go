package geo

import "math"

// Krasovsky 1940 ellipsoid parameters used by the GCJ-02 obfuscation.
const (
	semiMajorAxis = 6378245.0
	eccentricity2 = 0.00669342162296594323
)

// Bounding box approximating mainland China. Coordinates outside it are
// returned untouched by Transform.
const (
	minLng = 72.004
	maxLng = 137.8347
	minLat = 0.8293
	maxLat = 55.8271
)

// Transform converts a WGS-84 coordinate into GCJ-02. The conversion is the
// published constant-coefficient transform: polynomial plus sine-harmonic
// offsets computed around (105E, 35N), then scaled onto the ellipsoid. It is
// deterministic and intentionally one-directional.
func Transform(lat, lng float64) (float64, float64) {
	if outsideChina(lat, lng) {
		return lat, lng
	}

	dLat := offsetLat(lng-105.0, lat-35.0)
	dLng := offsetLng(lng-105.0, lat-35.0)

	radLat := lat / 180.0 * math.Pi
	magic := math.Sin(radLat)
	magic = 1 - eccentricity2*magic*magic
	sqrtMagic := math.Sqrt(magic)

	dLat = (dLat * 180.0) / ((semiMajorAxis * (1 - eccentricity2)) / (magic * sqrtMagic) * math.Pi)
	dLng = (dLng * 180.0) / (semiMajorAxis / sqrtMagic * math.Cos(radLat) * math.Pi)

	return lat + dLat, lng + dLng
}

func outsideChina(lat, lng float64) bool {
	return lng < minLng || lng > maxLng || lat < minLat || lat > maxLat
}

func offsetLat(x, y float64) float64 {
	ret := -100.0 + 2.0*x + 3.0*y + 0.2*y*y + 0.1*x*y + 0.2*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(y*math.Pi) + 40.0*math.Sin(y/3.0*math.Pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(y/12.0*math.Pi) + 320*math.Sin(y*math.Pi/30.0)) * 2.0 / 3.0
	return ret
}

func offsetLng(x, y float64) float64 {
	ret := 300.0 + x + 2.0*y + 0.1*x*x + 0.1*x*y + 0.1*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*math.Pi) + 20.0*math.Sin(2.0*x*math.Pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(x*math.Pi) + 40.0*math.Sin(x/3.0*math.Pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(x/12.0*math.Pi) + 300.0*math.Sin(x/30.0*math.Pi)) * 2.0 / 3.0
	return ret
}
