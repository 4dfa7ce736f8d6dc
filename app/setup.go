package app

import (
	"fmt"
	"os"

	"github.com/feetrack/api/api"
	"github.com/feetrack/api/config"
	"github.com/feetrack/api/database"
	"github.com/feetrack/api/router"
	"github.com/feetrack/api/services/cron"
	"github.com/feetrack/api/services/storage"
	"gorm.io/gorm"
)

func SetupAndRunServer() error {

	// Load ENV
	if err := config.LoadENV(); err != nil {
		return err
	}

	getEnv, err := config.Get()
	if err != nil {
		return err
	}

	// Initialize GORM database connection
	store, err := database.StartGORM()
	if err != nil {
		print("Check whether the Postgres is running or not\n")
		return err
	}

	if err := store.Init(); err != nil {
		print("Failed to initialize database tables\n")
		return err
	}

	// Proof storage backend (local disk or Spaces)
	proofs, err := storage.NewFromConfig(getEnv)
	if err != nil {
		return err
	}

	// Initialize Cron Manager (only if enabled via environment variable)
	var cronManager *cron.CronManager
	if os.Getenv("CRON_ENABLED") != "false" { // Default to enabled
		db, ok := store.GetDB().(*gorm.DB)
		if !ok {
			print("Warning: Failed to get database connection for cron jobs\n")
		} else {
			cronManager = cron.NewCronManager(db, proofs)
			if err := cronManager.Start(); err != nil {
				print("Warning: Failed to start cron jobs\n")
				print("Error: ", err.Error(), "\n")
				// Don't fail the app, just log the warning
			}
		}
	}

	// Defer Closing DB and stopping cron jobs
	defer func() {
		if cronManager != nil {
			cronManager.Stop()
		}
		store.Close()
	}()

	// Init API
	var server *api.APIServer = api.NewAPIServer(fmt.Sprintf(":%d", getEnv.PORT))
	app := server.GetEngine()

	// Setup Routes. Logging, panic recovery and the rest of the request
	// middleware are attached inside SetupRoutes via SetupSecurity.
	router.SetupRoutes(app, store, proofs, getEnv)

	// Get the PORT & Start the Server
	return server.Run()
}
