package config

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "HYRPUNKTEN_DB_DSN"
	EnvDBHost = "HYRPUNKTEN_DB_HOST"
	EnvDBUser = "HYRPUNKTEN_DB_USER"
	EnvDBName = "HYRPUNKTEN_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
