package configs

// Auth configures bearer token verification. PublicKey is a base64
// encoded ed25519 public key; tokens must be EdDSA-signed by the matching
// private key and carry Issuer and Audience.
type Auth struct {
	Issuer    string `env:"ISSUER" envDefault:"crowdfund"`
	Audience  string `env:"AUDIENCE" envDefault:"crowdfund-api"`
	PublicKey string `env:"PUBLIC_KEY"`
}
