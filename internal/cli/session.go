package cli

import (
	"fmt"
	"log/slog"

	"github.com/Flyrell/checkin/internal/config"
	"github.com/Flyrell/checkin/internal/store"
	"github.com/spf13/cobra"
)

// session holds what every data command needs: the loaded configuration, an
// open store and the clock that decides what "today" is.
type session struct {
	cfg   *config.Config
	store store.Store
	clock store.Clock
	close func() error
}

func openSession() (*session, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	opts, err := cfg.StoreOptions()
	if err != nil {
		return nil, err
	}

	st, closeFn, err := store.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening %s store in %s: %w", opts.Backend, opts.DataDir, err)
	}
	slog.Debug("store opened", "backend", opts.Backend, "data_dir", opts.DataDir, "timezone", cfg.Timezone)

	return &session{cfg: cfg, store: st, clock: opts.Clock, close: closeFn}, nil
}

func (s *session) Close() {
	if err := s.close(); err != nil {
		slog.Warn("closing store", "error", err)
	}
}

// withSession opens a session for the duration of fn.
func withSession(fn func(s *session) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

// windowFlag returns --days, falling back to the configured window.
func windowFlag(cmd *cobra.Command, cfg *config.Config) (int, error) {
	if !cmd.Flags().Changed("days") {
		return cfg.WindowDays, nil
	}
	days, err := cmd.Flags().GetInt("days")
	if err != nil {
		return 0, err
	}
	if days < 0 {
		return 0, fmt.Errorf("--days must be 0 or positive, got %d", days)
	}
	return days, nil
}
