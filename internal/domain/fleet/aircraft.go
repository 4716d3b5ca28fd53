package fleet

import (
	"time"
)

// AircraftStatus is the operational state of an owned aircraft
type AircraftStatus string

const (
	StatusActive      AircraftStatus = "active"
	StatusDelivering  AircraftStatus = "delivering"
	StatusMaintenance AircraftStatus = "maintenance"
	StatusGrounded    AircraftStatus = "grounded"
)

// BaseStats are the immutable performance figures of an aircraft model
type BaseStats struct {
	Seats     int
	FuelBurn  float64 // liters per km
	RangeKm   float64
	RunwayM   int
	SpeedKmh  float64
	Category  string // regional, narrowbody, widebody, freighter
	FuelCoeff float64 // model efficiency coefficient, 1.0 = fleet reference
}

// SeatConfig is the cabin split of an aircraft or route
type SeatConfig struct {
	Economy  int
	Premium  int
	Business int
}

// Total returns the summed seat count
func (s SeatConfig) Total() int {
	return s.Economy + s.Premium + s.Business
}

// PremiumFraction is the share of non-economy seats, used by the
// reputation scoring
func (s SeatConfig) PremiumFraction() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return float64(s.Premium+s.Business) / float64(total)
}

// FlightRecord is one line of an aircraft's bounded operating log
type FlightRecord struct {
	Date       time.Time
	Label      string
	Profit     float64
	Passengers int
}

const flightLogCap = 60

// Aircraft is one owned airframe. Condition degrades with flying and drives
// the stochastic penalty probabilities in the daily tick.
type Aircraft struct {
	ID              string
	Model           string
	Stats           BaseStats
	Config          SeatConfig
	Condition       float64 // 0-100
	DeliveredAt     time.Time
	Status          AircraftStatus
	HoursFlown      float64
	TotalPassengers int
	TotalRevenue    float64
	FlightLog       []FlightRecord
}

// Seats returns the configured cabin, falling back to an all-economy layout
// of the model's seat count when no configuration was chosen
func (a *Aircraft) Seats() SeatConfig {
	if a.Config.Total() > 0 {
		return a.Config
	}
	return SeatConfig{Economy: a.Stats.Seats}
}

// AgeDays returns the airframe age in whole days at the given time
func (a *Aircraft) AgeDays(now time.Time) int {
	if a.DeliveredAt.IsZero() || now.Before(a.DeliveredAt) {
		return 0
	}
	return int(now.Sub(a.DeliveredAt).Hours() / 24)
}

// WearFactor grows linearly with age and scales fuel burn and maintenance
// reserves: 1 + ageDays/1500
func (a *Aircraft) WearFactor(now time.Time) float64 {
	return 1 + float64(a.AgeDays(now))/1500
}

// AddFlightRecord appends to the bounded operating log and rolls the
// aircraft's lifetime counters
func (a *Aircraft) AddFlightRecord(date time.Time, label string, profit float64, passengers int) {
	a.TotalPassengers += passengers
	a.TotalRevenue += profit
	a.FlightLog = append(a.FlightLog, FlightRecord{Date: date, Label: label, Profit: profit, Passengers: passengers})
	if len(a.FlightLog) > flightLogCap {
		a.FlightLog = a.FlightLog[len(a.FlightLog)-flightLogCap:]
	}
}

// ApplyWear degrades condition after a day of flying. flights is the number
// of departures flown that day.
func (a *Aircraft) ApplyWear(flights int) {
	if flights <= 0 {
		return
	}
	a.Condition -= 0.15 * float64(flights)
	if a.Condition < 0 {
		a.Condition = 0
	}
	if a.Condition == 0 {
		a.Status = StatusGrounded
	}
}
