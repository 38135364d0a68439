package main

import (
	"embed"

	"github.com/ghuser/foodkeeper/pkg/config"
	"github.com/ghuser/foodkeeper/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := migrator.RunMigrations(cfg.DatabaseURL, MigrationsFS); err != nil {
		panic(err)
	}
}
