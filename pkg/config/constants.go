package config

// EnvPrefix namespaces every environment variable consumed by the service.
const EnvPrefix = "EBF"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// DriverSQLite selects the embedded sqlite driver for local development.
const DriverSQLite = "sqlite"
