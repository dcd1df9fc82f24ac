package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const (
	RunIDKey  ctxKey = "run_id"
	LoggerKey ctxKey = "logger"
)

var globalLogger zerolog.Logger

// Init inicializa o logger global. A saída vai para stderr para não
// misturar com os prompts interativos em stdout
func Init(level string, jsonFormat bool) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.WarnLevel
	}

	var output io.Writer = os.Stderr
	if !jsonFormat {
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
	}

	globalLogger = zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "trello-card-cli").
		Logger()
}

// Global retorna o logger global
func Global() *zerolog.Logger {
	return &globalLogger
}

// Get retorna logger do contexto ou global
func Get(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return &globalLogger
	}
	if l, ok := ctx.Value(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	return &globalLogger
}

// WithRunID adiciona run_id ao logger e contexto para rastrear uma
// iteração do fluxo interativo
func WithRunID(ctx context.Context, runID string) context.Context {
	l := globalLogger.With().Str("run_id", runID).Logger()
	ctx = context.WithValue(ctx, RunIDKey, runID)
	ctx = context.WithValue(ctx, LoggerKey, &l)
	return ctx
}

// GetRunID extrai run_id do contexto
func GetRunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(RunIDKey).(string); ok {
		return id
	}
	return ""
}
