package cli

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/elena-krismer/nightingale/internal/server"
	"github.com/elena-krismer/nightingale/pkg/cache"
	"github.com/elena-krismer/nightingale/pkg/session"
)

// newServeCmd creates the serve command: a synchronized viewport over HTTP.
// Session and snapshot-cache backends come from the config file.
func newServeCmd(configPath *string) *cobra.Command {
	var opts fetchOpts
	var addr string

	cmd := &cobra.Command{
		Use:   "serve <accession>",
		Short: "Serve a synchronized viewport over HTTP",
		Long: `Serve exposes one shared viewport for an accession over HTTP.

Clients read and set the visible range through the JSON API, follow
changes through the /api/events stream, and fetch SVG or PNG snapshots
of the current view. Sessions can be stored in memory, on disk, or in
MongoDB; rendered snapshots can be cached in memory or Redis.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}

			client, err := newUniProtClient(cfg)
			if err != nil {
				return err
			}
			vd, err := fetchViewData(ctx, client, args[0], opts)
			if err != nil {
				return err
			}

			sessions, err := newSessionStore(ctx, cfg)
			if err != nil {
				return err
			}
			snapshots, err := newSnapshotCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer snapshots.Close()

			srv := server.New(server.Config{
				Accession:      vd.entry.Accession,
				SequenceLength: vd.entry.Length,
				Width:          cfg.Width,
				MarginLeft:     cfg.MarginLeft,
				MarginRight:    cfg.MarginRight,
				Tracks:         vd.tracks,
				Sessions:       sessions,
				Snapshots:      snapshots,
				Logger:         loggerFromContext(ctx),
			})
			printInfo("Serving %s on %s", vd.entry.Accession, addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().StringVar(&opts.contactsPath, "contacts", "", "contact map file for the links track")
	cmd.Flags().BoolVar(&opts.noVariants, "no-variants", false, "skip the variation track")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the response cache")

	return cmd
}

func newSessionStore(ctx context.Context, cfg *Config) (session.Store, error) {
	switch cfg.Server.Sessions {
	case "file":
		return session.NewFileStore("")
	case "mongo":
		return session.NewMongoStore(ctx, session.MongoConfig{URI: cfg.Server.MongoURI})
	default:
		return session.NewMemoryStore(), nil
	}
}

func newSnapshotCache(ctx context.Context, cfg *Config) (cache.Cache, error) {
	switch cfg.Cache.Snapshots {
	case "file":
		dir, err := cacheDir()
		if err != nil {
			return nil, err
		}
		return cache.NewFileCache(filepath.Join(dir, "snapshots"))
	case "redis":
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
	case "off":
		return cache.NewNullCache(), nil
	default:
		return cache.NewMemoryCache(), nil
	}
}
