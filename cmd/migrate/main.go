package main

// Run database migrations:
//   go run ./cmd/migrate --command up|down|status

import (
	"context"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/Ayuniiieee02/Resume/internal/bootstrap"
	"github.com/Ayuniiieee02/Resume/internal/shared/config"
	"github.com/Ayuniiieee02/Resume/internal/shared/storage/db"
)

func main() {
	var command string
	pflag.StringVar(&command, "command", "up", "Migration command: up, down or status")
	pflag.Parse()

	cmd, err := db.ParseMigrateCommand(command)
	if err != nil {
		log.Printf("invalid command: %v", err)
		pflag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	ctx := context.Background()

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, bootstrap.DBOptions(cfg, db.DefaultMigrateOptions()))
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		os.Exit(1)
	}

	err = db.Migrate(ctx, sqlDB, cmd)
	if cerr := sqlDB.Close(); cerr != nil {
		log.Printf("close database: %v", cerr)
	}
	if err != nil {
		log.Printf("failed to run migrations (%s): %v", cmd, err)
		os.Exit(1)
	}
	log.Printf("migrations %s complete", cmd)
}
