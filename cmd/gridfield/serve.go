package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-gridfield/internal/server"
	"github.com/goliatone/go-gridfield/internal/store"
)

func (c *cli) newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the content admin and public pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return c.serve(ctx)
		},
	}
	cmd.Flags().String("addr", defaultAddr, "listen address")
	cmd.Flags().String("db", defaultDB, "SQLite database path")
	cmd.Flags().String("templates", "", "directory of template declarations (default: bundled samples)")
	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	db, err := store.Open(ctx, c.cfg.GetString(cfgKeyDB))
	if err != nil {
		return err
	}
	defer db.Close()

	decls, err := c.declarations()
	if err != nil {
		return err
	}

	field := c.field()
	handler, err := server.New(server.Config{
		Store:        db,
		Declarations: decls,
		Registry:     c.registry(field),
		AssetPath:    field.AssetPath(),
		Logger:       c.logger,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              c.cfg.GetString(cfgKeyAddr),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.logger.Info("gridfield: listening", "addr", srv.Addr, "templates", decls.Names())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.logger.Info("gridfield: shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
