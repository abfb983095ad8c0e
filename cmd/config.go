package cmd

import (
	"fmt"
	"net/url"
)

type Config struct {
	HTTPPort             string
	DBHost               string
	DBPort               string
	DBUser               string
	DBPassword           string
	DBName               string
	DBSslMode            string
	VenuesFile           string
	VenuesReloadSchedule string
	LogLevel             string
}

// DSN returns the connection string of the planner database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN returns a connection string to the server's default database,
// used to create the planner database.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(database string) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.DBUser, c.DBPassword),
		Host:   fmt.Sprintf("%s:%s", c.DBHost, c.DBPort),
		Path:   "/" + database,
	}
	if c.DBSslMode != "" {
		u.RawQuery = url.Values{"sslmode": {c.DBSslMode}}.Encode()
	}
	return u.String()
}
