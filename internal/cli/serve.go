package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/groundwaterkit/pitflow/internal/server"
	"github.com/groundwaterkit/pitflow/pkg/cache"
)

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr     string        // listen address
	redis    string        // Redis address for a shared solve cache
	cacheTTL time.Duration // solve cache entry lifetime
	noCache  bool          // disable the solve cache entirely
}

// newServeCmd creates the serve command, starting the HTTP API.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080", cacheTTL: server.DefaultCacheTTL}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long: `Start the HTTP API for solving scenarios remotely.

Solve results are cached in memory by default; pass --redis to share the
cache across instances.

Examples:
  pitflow serve
  pitflow serve --addr :9000 --redis localhost:6379
  pitflow serve --no-cache`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runServe(c.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address (host:port) for a shared solve cache")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", opts.cacheTTL, "solve cache entry lifetime")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the solve cache")

	return cmd
}

func runServe(ctx context.Context, opts serveOpts) error {
	logger := loggerFromContext(ctx)

	var (
		c   cache.Cache
		err error
	)
	switch {
	case opts.noCache:
		c = cache.NewNullCache()
	case opts.redis != "":
		c, err = cache.NewRedisCache(ctx, opts.redis)
		if err != nil {
			return err
		}
		logger.Info("using redis solve cache", "addr", opts.redis)
	default:
		c = cache.NewMemoryCache()
	}
	defer c.Close()

	return server.New(logger, c, opts.cacheTTL).ListenAndServe(ctx, opts.addr)
}
