package config

// SimulationConfig holds the economy engine's starting conditions
type SimulationConfig struct {
	// Seed for the injected random source; identical seeds reproduce
	// identical days
	Seed int64 `mapstructure:"seed"`

	// BaseFuelPrice is the fuel market's reference price per liter
	BaseFuelPrice float64 `mapstructure:"base_fuel_price" validate:"required,gt=0"`

	// StartingCash is the player's opening balance
	StartingCash float64 `mapstructure:"starting_cash" validate:"min=0"`

	// StartingLevel is the player's opening progression level
	StartingLevel int `mapstructure:"starting_level" validate:"required,min=1,max=10"`
}
