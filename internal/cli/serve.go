package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	transport "trivia-quiz/internal/transport/http"
)

// NewServeCmd builds the CLI subcommand that serves the WebSocket surface.
func NewServeCmd(configPath, port *string, envPort string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quiz over WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
	cmd.Flags().StringVar(port, "port", envPort, "port to listen on (overrides server.port)")
	return cmd
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	b, err := openBackends(ctx, configPath)
	if err != nil {
		return err
	}
	defer b.Close()

	finalPort := portFlag
	if finalPort == "" {
		finalPort = b.cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	if b.cfg.Log.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	ws := transport.NewWSHandler(transport.Deps{
		Cookies:      b.cookies,
		Ledger:       b.ledger,
		Source:       b.source,
		IdentityName: b.cfg.Identity.Cookie,
		Session:      b.sessionConfig(true),
		Logger:       b.logger,
	})

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      transport.NewRouter(ws, b.ledger, b.logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		b.logger.Info("starting trivia service", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		b.logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
