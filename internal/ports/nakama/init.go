package nakama

import (
	"context"
	"database/sql"
	"os"

	"github.com/heroiclabs/nakama-common/runtime"

	"showdown/internal/config"
)

// InitModule wires RPCs for the Nakama runtime. A config file is optional;
// without one the service runs on defaults.
func InitModule(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, initializer runtime.Initializer) error {
	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := config.LoadConfig(path); err != nil {
			return err
		}
	}

	if err := RegisterRPCs(initializer); err != nil {
		return err
	}

	logger.Info("Showdown Go module loaded.")
	return nil
}
