package configs

// Ledger toggles development helpers around account balances.
type Ledger struct {
	// AllowDeposits exposes POST /api/v1/accounts/me/deposits.
	AllowDeposits bool `env:"ALLOW_DEPOSITS" envDefault:"false"`
	// SeedDemo funds the demo identities on startup.
	SeedDemo bool `env:"SEED_DEMO" envDefault:"false"`
}
