package configs

import "strings"

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Storage selects the backend holding campaigns and balances. SQLitePath
// is only read by the sqlite driver.
type Storage struct {
	Driver     string `env:"DRIVER" envDefault:"postgres"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"crowdfund.db"`
}

// NormalizedDriver returns the driver in lower case. Unknown values are
// returned as is so the caller can reject them.
func (c Storage) NormalizedDriver() string {
	return strings.ToLower(strings.TrimSpace(c.Driver))
}
