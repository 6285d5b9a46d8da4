package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/beingzuhairkhan/skillswap-rtc/internal/adapters/ai"
	router "github.com/beingzuhairkhan/skillswap-rtc/internal/adapters/http"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/adapters/resolver"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/app"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/config"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/core"
	"github.com/beingzuhairkhan/skillswap-rtc/internal/rtc"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Initialize zerolog global logger early so config.Load can use it.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	// Human-friendly output for terminal; in production you may want JSON only.
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	var responder core.Responder
	if cfg.AIEndpoint != "" {
		responder = ai.NewHTTPResponder(cfg.AIEndpoint, cfg.AITimeout)
	}

	hub := &app.Hub{
		Sessions:   app.NewRegistry(),
		Table:      core.NewTable(),
		Pending:    core.NewPendingBuffer(cfg.PendingSignals, cfg.PendingTTL),
		Responder:  responder,
		Capacity:   cfg.RoomCapacity,
		MediaPeers: cfg.MediaPeers,
		ICEServers: rtc.Servers(cfg.ICEURLs, cfg.ICEUsername, cfg.ICECredential),
	}
	links := resolver.NewLinkResolver(cfg.Secret)

	r := router.SetupRouter(ctx, cfg, hub, links)
	addr := fmt.Sprintf(":%d", cfg.Port)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("signaling server started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited gracefully")
}
