package services

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"arbapi/internal/config"
	"arbapi/pkg/contracts/domain"
)

// LogsService tails the log file the trading engine writes. The file is
// an external collaborator's artifact: absence is not an error, it just
// means the engine has not produced output yet.
type LogsService struct {
	cfg    config.LogTailConfig
	logger *slog.Logger
}

// NewLogsService creates a logs service for the configured bot log file
func NewLogsService(cfg config.LogTailConfig, logger *slog.Logger) *LogsService {
	return &LogsService{
		cfg:    cfg,
		logger: logger.With(slog.String("component", "logs_service")),
	}
}

// Tail returns the last configured number of lines of the bot log.
func (s *LogsService) Tail(ctx context.Context) (domain.LogTailResponse, error) {
	file, err := os.Open(s.cfg.BotLogPath)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.DebugContext(ctx, "bot log file absent",
				slog.String("path", s.cfg.BotLogPath))
			return domain.LogTailResponse{
				Lines:   []string{},
				Message: "log file not found",
			}, nil
		}
		return domain.LogTailResponse{}, fmt.Errorf("failed to open bot log: %w", err)
	}
	defer file.Close()

	limit := s.cfg.TailLines
	lines := make([]string, 0, limit)

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if len(lines) > limit {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.LogTailResponse{}, fmt.Errorf("failed to read bot log: %w", err)
	}

	return domain.LogTailResponse{
		Lines: lines,
		Count: len(lines),
	}, nil
}
