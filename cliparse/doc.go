/*
Package cliparse handles configuration from CLI flags and environment.

# Usage

	cfg, err := cliparse.ParseFlags(os.Args[1:])

CLI flags take precedence over environment variables:

	-p / PORT          - Server port (default: 3000)
	-d / DATABASE_URL  - Database connection string (required)
	-t / DATABASE_TYPE - "postgres" (default) or "sqlite"

DriverName maps the configured type to the registered database/sql
driver ("postgres" for lib/pq, "sqlite" for modernc.org/sqlite).
*/
package cliparse
