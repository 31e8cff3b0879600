package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/config"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/database"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/repository"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/routes"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/services"
	"github.com/4GeeksAcademy/endpoints-starwars-layla-v2/utils"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		utils.Log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "starwars-api",
		Short:         "Star Wars catalog and favorites API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg = config.LoadConfig()
			if err := utils.InitLogger(cfg.LogDir, cfg.LogLevel); err != nil {
				return err
			}
			if cfg.GinMode != "" {
				gin.SetMode(cfg.GinMode)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), cfg)
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Migrate the database and start the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return serve(cmd.Context(), cfg)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create or update the database schema",
			RunE: func(cmd *cobra.Command, _ []string) error {
				_, err := openDatabase(cfg)
				return err
			},
		},
		&cobra.Command{
			Use:   "seed",
			Short: "Insert the default users when the users table is empty",
			RunE: func(cmd *cobra.Command, _ []string) error {
				db, err := openDatabase(cfg)
				if err != nil {
					return err
				}
				n, err := database.SeedUsers(db)
				if err != nil {
					return fmt.Errorf("failed to seed users: %w", err)
				}
				utils.Log.WithField("users", n).Info("seed complete")
				return nil
			},
		},
	)

	return root
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}
	utils.Log.Info("Migration complete")
	return db, nil
}

func serve(ctx context.Context, cfg *config.Config) error {
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	if cfg.SeedUsers {
		n, err := database.SeedUsers(db)
		if err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		if n > 0 {
			utils.Log.WithField("users", n).Info("Users seeded")
		}
	}

	store := repository.NewStore(db)
	favorites := services.NewFavoriteService(store)

	limiter, stopLimiter, err := newLimiter(ctx, cfg)
	if err != nil {
		return err
	}
	defer stopLimiter()

	if cfg.OrphanAuditSchedule != "" {
		c, err := services.StartOrphanAuditCron(favorites, cfg.OrphanAuditSchedule)
		if err != nil {
			return err
		}
		defer c.Stop()
	}

	r := routes.SetupRouter(routes.Dependencies{
		Config:    cfg,
		Store:     store,
		Favorites: favorites,
		Limiter:   limiter,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Log.Infof("Server is running on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to run server: %w", err)
	case <-ctx.Done():
	}

	utils.Log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newLimiter picks the shared Redis limiter when REDIS_ADDR is set and an
// in-process one otherwise. A zero RATE_LIMIT_PER_MINUTE disables limiting.
func newLimiter(ctx context.Context, cfg *config.Config) (utils.Limiter, func(), error) {
	if cfg.RateLimitPerMinute <= 0 {
		return nil, func() {}, nil
	}

	if cfg.RedisAddr != "" {
		rdb, err := utils.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, err
		}
		utils.Log.Info("Connected to Redis")
		return utils.NewRedisLimiter(rdb, cfg.RateLimitPerMinute), func() { _ = rdb.Close() }, nil
	}

	local := utils.NewLocalLimiter(cfg.RateLimitPerMinute)
	// Buckets are keyed by client IP; drop them periodically so the map
	// does not grow without bound.
	c := cron.New()
	if _, err := c.AddFunc("@every 1h", local.Reset); err != nil {
		return nil, nil, err
	}
	c.Start()
	return local, func() { c.Stop() }, nil
}
