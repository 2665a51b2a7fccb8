package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/casement/internal/server"
	"github.com/matzehuels/casement/pkg/cache"
)

// serveCommand runs the HTTP surface.
func (c *CLI) serveCommand() *cobra.Command {
	var addr, redisURL string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the viewer and the JSON API over HTTP",
		Long: `Serve the viewer and the JSON API over HTTP.

  GET  /            three.js viewer with a live spec form
  GET  /health      liveness probe
  POST /api/price   pricing breakdown
  POST /api/model   3D model (?format=json|obj|png|html)
  POST /api/quote   quotation (?format=pdf|svg|png|json&client=&template=)

The address comes from --addr, then CASEMENT_ADDR, then the [server]
section of the config file. Model artifacts are cached in Redis when
--redis (or CASEMENT_REDIS_URL) is set; the local file cache is not used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runner, err := c.newRunner()
			if err != nil {
				return err
			}
			cfg := c.Config.Server
			if addr != "" {
				cfg.Addr = addr
			}
			if redisURL != "" {
				cfg.RedisURL = redisURL
			}

			runner.Cache = cache.NewNullCache()
			if cfg.RedisURL != "" {
				rc, err := cache.NewRedisCache(cmd.Context(), cfg.RedisURL)
				if err != nil {
					return err
				}
				defer rc.Close()
				runner.Cache = rc
				c.Logger.Info("model cache enabled", "backend", "redis")
			}

			srv := server.New(runner, c.Logger, c.Config.Specs(), c.Config.Quotation.Client)
			return srv.ListenAndServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (e.g. :8080)")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the shared model cache (e.g. redis://localhost:6379/0)")
	return cmd
}
