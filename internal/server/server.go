// Package server wires config, storage and the router into a running HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cli/browser"
	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/api"
	"github.com/yourname/calorietracker/internal/auth"
	"github.com/yourname/calorietracker/internal/config"
	"github.com/yourname/calorietracker/internal/seed"
	"github.com/yourname/calorietracker/internal/storage"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Run serves until ctx is cancelled, then shuts down and closes storage.
func Run(ctx context.Context, cfg *config.Config, logger internal.Logger) error {
	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	repos, err := storage.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			logger.Errorf("closing storage: %v", err)
		}
	}()

	data, err := seed.Load()
	if err != nil {
		return fmt.Errorf("load seed data: %w", err)
	}

	app := api.NewApp(logger, repos, data)
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(app, cfg, auth.NewProvider(cfg, repos, logger)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if cfg.OpenBrowser {
		url := localURL(cfg.HTTPAddr)
		if err := browser.OpenURL(url); err != nil {
			logger.Warnf("could not open browser at %s: %v", url, err)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("server running on %s (storage=%s, env=%s)", cfg.HTTPAddr, cfg.DBType, cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Infof("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

// localURL turns a listen address like ":8088" into a browsable URL.
func localURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr + "/"
}
