package world

import (
	"math"
	"sort"
)

// Airport is one row of the static reference table
type Airport struct {
	ID       string
	City     string
	Pop      int
	RunwayM  int
	Region   string
	MinLevel int
	Lat      float64
	Lon      float64
}

// Airports is the static airport table, keyed by IATA code
var Airports = map[string]Airport{
	"JFK": {"JFK", "New York", 18_800_000, 4400, "north-america", 1, 40.6413, -73.7781},
	"LAX": {"LAX", "Los Angeles", 12_400_000, 3900, "north-america", 1, 33.9416, -118.4085},
	"ORD": {"ORD", "Chicago", 8_900_000, 3900, "north-america", 1, 41.9742, -87.9073},
	"ATL": {"ATL", "Atlanta", 6_000_000, 3600, "north-america", 1, 33.6407, -84.4277},
	"MIA": {"MIA", "Miami", 6_100_000, 3900, "north-america", 2, 25.7959, -80.2870},
	"YYZ": {"YYZ", "Toronto", 6_200_000, 3400, "north-america", 2, 43.6777, -79.6248},
	"MEX": {"MEX", "Mexico City", 21_800_000, 3900, "north-america", 3, 19.4363, -99.0721},
	"GRU": {"GRU", "Sao Paulo", 21_600_000, 3700, "south-america", 3, -23.4356, -46.4731},
	"EZE": {"EZE", "Buenos Aires", 15_000_000, 3300, "south-america", 4, -34.8222, -58.5358},
	"BOG": {"BOG", "Bogota", 10_700_000, 3800, "south-america", 4, 4.7016, -74.1469},
	"LHR": {"LHR", "London", 14_800_000, 3900, "europe", 1, 51.4700, -0.4543},
	"CDG": {"CDG", "Paris", 12_200_000, 4200, "europe", 1, 49.0097, 2.5479},
	"FRA": {"FRA", "Frankfurt", 5_600_000, 4000, "europe", 1, 50.0379, 8.5622},
	"AMS": {"AMS", "Amsterdam", 2_480_000, 3800, "europe", 2, 52.3105, 4.7683},
	"MAD": {"MAD", "Madrid", 6_700_000, 4100, "europe", 2, 40.4983, -3.5676},
	"FCO": {"FCO", "Rome", 4_300_000, 3900, "europe", 2, 41.8003, 12.2389},
	"ZRH": {"ZRH", "Zurich", 1_400_000, 3700, "europe", 3, 47.4647, 8.5492},
	"IST": {"IST", "Istanbul", 15_500_000, 4100, "europe", 3, 41.2753, 28.7519},
	"DXB": {"DXB", "Dubai", 3_500_000, 4400, "middle-east", 3, 25.2532, 55.3657},
	"DOH": {"DOH", "Doha", 2_400_000, 4850, "middle-east", 4, 25.2731, 51.6081},
	"JNB": {"JNB", "Johannesburg", 9_600_000, 4400, "africa", 4, -26.1367, 28.2411},
	"CAI": {"CAI", "Cairo", 20_900_000, 4000, "africa", 4, 30.1219, 31.4056},
	"LOS": {"LOS", "Lagos", 15_400_000, 3900, "africa", 5, 6.5774, 3.3212},
	"NBO": {"NBO", "Nairobi", 4_700_000, 4100, "africa", 5, -1.3192, 36.9278},
	"DEL": {"DEL", "Delhi", 31_200_000, 4400, "asia", 4, 28.5562, 77.1000},
	"BOM": {"BOM", "Mumbai", 20_700_000, 3700, "asia", 4, 19.0896, 72.8656},
	"SIN": {"SIN", "Singapore", 5_900_000, 4000, "asia", 3, 1.3644, 103.9915},
	"HKG": {"HKG", "Hong Kong", 7_500_000, 3800, "asia", 3, 22.3080, 113.9185},
	"NRT": {"NRT", "Tokyo", 37_300_000, 4000, "asia", 3, 35.7720, 140.3929},
	"ICN": {"ICN", "Seoul", 25_500_000, 4000, "asia", 4, 37.4602, 126.4407},
	"PEK": {"PEK", "Beijing", 21_500_000, 3800, "asia", 4, 40.0799, 116.6031},
	"SYD": {"SYD", "Sydney", 5_300_000, 3960, "oceania", 4, -33.9399, 151.1753},
	"AKL": {"AKL", "Auckland", 1_700_000, 3600, "oceania", 5, -37.0082, 174.7850},
}

// AirportIDs returns the table's keys in sorted order. Seeded-rng draws
// index into this slice, so the order must be stable across runs.
func AirportIDs() []string {
	ids := make([]string, 0, len(Airports))
	for id := range Airports {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// DemandFactor derives a route demand multiplier from catchment population
func (a Airport) DemandFactor() float64 {
	switch {
	case a.Pop >= 15_000_000:
		return 1.3
	case a.Pop >= 8_000_000:
		return 1.15
	case a.Pop >= 4_000_000:
		return 1.0
	case a.Pop >= 1_500_000:
		return 0.85
	default:
		return 0.7
	}
}

// Distance returns the great-circle distance in km between two airports
func Distance(a, b Airport) float64 {
	const earthRadiusKm = 6371.0
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
