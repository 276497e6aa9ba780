package database

import (
	"embed"
)

// MigrationsPath is the directory of MigrationsFS holding the SQL files.
const MigrationsPath = "migrations"

//go:embed migrations/*.sql
var MigrationsFS embed.FS
