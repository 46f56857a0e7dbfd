package domain

// Default configuration values
const (
	// DefaultCapacity seats available per day when no capacity is configured
	DefaultCapacity = 12
)

// Business validation constants
const (
	MaxNameLength = 100
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)
