package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"pms/config"
	"pms/infras/postgres"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStepUp  = "step-up"
	CommandDrop    = "drop"
	CommandVersion = "version"
	CommandForce   = "force"
)

var (
	ErrUnknownCommand = errors.New("unknown migration command")
	ErrMissingVersion = errors.New("force requires a target version")
)

// MigrationDSN targets the write database and records applied versions in the
// configured migrations table.
func MigrationDSN(cfg *config.Config) string {
	params := url.Values{}
	if cfg.DB.Postgres.MigrationTable != "" {
		params.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	write := cfg.DB.Postgres.Write

	return postgres.DSN(
		write.Username,
		write.Password,
		write.Host,
		write.Port,
		postgres.DBName(cfg, write.Name),
		write.SSLMode,
		params,
	)
}

func newMigrate(cfg *config.Config) (*migrate.Migrate, error) {
	mig, err := migrate.New(cfg.DB.Postgres.MigrationPath, MigrationDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Runner applies one migration command. force takes the target version as its
// only argument.
func Runner(cfg *config.Config, command string, args ...string) error {
	if err := checkCommand(command, args); err != nil {
		return err
	}

	mig, err := newMigrate(cfg)
	if err != nil {
		return err
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("Failed to close migrate instance")
		}
	}()

	switch command {
	case CommandUp:
		err = ignoreNoChange(mig.Up())
	case CommandDown:
		err = ignoreNoChange(mig.Steps(-1))
	case CommandStepUp:
		err = ignoreNoChange(mig.Steps(1))
	case CommandDrop:
		err = ignoreNoChange(mig.Down())
	case CommandForce:
		version, _ := strconv.Atoi(args[0])
		err = mig.Force(version)
	}

	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}

	version, dirty, err := mig.Version()

	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		log.Info().Str("command", command).Msg("No migration applied")
	case err != nil:
		return fmt.Errorf("failed to read migration version: %w", err)
	default:
		log.Info().Str("command", command).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")
	}

	return nil
}

func checkCommand(command string, args []string) error {
	switch command {
	case CommandUp, CommandDown, CommandStepUp, CommandDrop, CommandVersion:
		return nil
	case CommandForce:
		if len(args) == 0 {
			return ErrMissingVersion
		}

		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

func ignoreNoChange(err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}

	return err
}

func Up(cfg *config.Config) error {
	return Runner(cfg, CommandUp)
}
