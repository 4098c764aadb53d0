package configs

// Telemetry configures OpenTelemetry tracing. Endpoint is the OTLP/HTTP
// collector URL. With Enabled false no provider is registered and spans
// go to the global no-op tracer.
type Telemetry struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	Endpoint    string `env:"ENDPOINT" envDefault:"http://localhost:4318"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"crowdfund"`
}
