package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const watchStatus = "Moderating Server"

type GatewayConfig struct {
	RegisterCommands bool
	// CommandsGuildID restricts registration to one guild; empty registers globally.
	CommandsGuildID string
}

// Gateway keeps the websocket connection open for as long as its context lives.
type Gateway struct {
	log     *slog.Logger
	session *Session
	router  *Router
	config  GatewayConfig
}

func NewGateway(log *slog.Logger, session *Session, router *Router, config GatewayConfig) *Gateway {
	return &Gateway{log: log, session: session, router: router, config: config}
}

func (g *Gateway) Run(ctx context.Context) error {
	dg := g.session.Raw()
	detach := g.router.Attach(ctx, dg)
	defer detach()
	removeReady := dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		g.onReady(ctx, s, r)
	})
	defer removeReady()

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	g.log.Info("Gateway connected")

	<-ctx.Done()
	if err := dg.Close(); err != nil {
		g.log.Warn("Gateway close failed", "error", err)
	}
	g.log.Info("Gateway disconnected")
	return nil
}

func (g *Gateway) onReady(ctx context.Context, s *discordgo.Session, r *discordgo.Ready) {
	g.log.Info("Bot is online", "user", r.User.String(), "guilds", len(r.Guilds))
	if err := s.UpdateWatchStatus(0, watchStatus); err != nil {
		g.log.Warn("Status update failed", "error", err)
	}
	if !g.config.RegisterCommands {
		return
	}
	if err := RegisterCommands(ctx, s, g.config.CommandsGuildID); err != nil {
		g.log.Error("Slash commands not registered", "error", err)
		return
	}
	g.log.Info("Slash commands registered", "guild_id", g.config.CommandsGuildID)
}
