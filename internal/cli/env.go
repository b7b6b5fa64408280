package cli

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/gymdesk/gymdesk/internal/api"
	"github.com/gymdesk/gymdesk/internal/config"
	"github.com/gymdesk/gymdesk/internal/gym"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

var errRemoteStore = errors.New("class management needs the local store (api.base_url is set)")

// env is everything a command needs once flags are parsed: the loaded
// config, where classes and bookings come from, and the member's clock.
type env struct {
	cfg    *config.Config
	source gym.Source
	store  *gym.Store
	now    func() time.Time
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.Path(homeDir)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	e := &env{
		cfg: cfg,
		now: func() time.Time { return time.Now().In(loc) },
	}

	if cfg.Remote() {
		client := api.NewClient(api.Options{
			BaseURL:       cfg.API.BaseURL,
			APIKey:        cfg.API.APIKey,
			Timeout:       cfg.API.Timeout,
			RatePerSecond: cfg.API.RatePerSecond,
			Logger:        logger.With().Str("component", "api").Logger(),
		})
		if cfg.Cache.RedisAddr != "" {
			client.UseRedisCache(redis.NewClient(&redis.Options{Addr: cfg.Cache.RedisAddr}), cfg.Cache.TTL)
		}
		logger.Debug().Str("base_url", cfg.API.BaseURL).Msg("using REST backend")
		e.source = client
		return e, nil
	}

	e.store = gym.NewStore(homeDir)
	e.source = e.store
	logger.Debug().Str("dir", gym.Dir(homeDir)).Msg("using local store")
	return e, nil
}

// localStore returns the file store for commands that edit classes.
func (e *env) localStore() (*gym.Store, error) {
	if e.store == nil {
		return nil, errRemoteStore
	}
	return e.store, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
