package main

import (
	"context"
	stdlog "log"
	"os"
	"os/signal"

	"github.com/cleberrangel/trello-card-cli/internal/client"
	"github.com/cleberrangel/trello-card-cli/internal/config"
	"github.com/cleberrangel/trello-card-cli/internal/logger"
	"github.com/cleberrangel/trello-card-cli/internal/workflow"
)

const Version = "1.0.0"

func main() {
	// Carrega configurações
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("Erro ao carregar configurações: %v", err)
	}

	// Inicializa logger estruturado
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	log := logger.Global()
	log.Info().
		Str("version", Version).
		Str("log_level", cfg.LogLevel).
		Bool("log_json", cfg.LogJSON).
		Msg("Trello card CLI iniciando")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	trelloClient := client.NewClient(cfg.APIKey, cfg.Token)

	// Valida as credenciais antes de abrir o fluxo interativo
	member, err := trelloClient.GetMember(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Credenciais do Trello rejeitadas")
		os.Exit(1)
	}
	log.Info().Str("member", member.Username).Msg("Credenciais validadas")

	wf := workflow.New(trelloClient, workflow.NewPrompter(os.Stdin, os.Stdout))
	if err := wf.Run(ctx); err != nil {
		log.Error().Err(err).Msg("Fluxo encerrado com erro")
		os.Exit(1)
	}
}
