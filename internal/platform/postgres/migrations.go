package postgres

import "embed"

// MigrationsFS embeds the goose migration scripts so the binary can run
// them without a checkout of the source tree.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migration scripts inside MigrationsFS.
const MigrationsDir = "migrations"
