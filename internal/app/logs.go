package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/five82/listviz/internal/config"
	"github.com/five82/listviz/internal/logging"
)

// ErrLoggingDisabled is returned by PrintLogs when no log file is configured.
var ErrLoggingDisabled = errors.New("logging is disabled; set log_file in the config")

// LogsOptions configure PrintLogs.
type LogsOptions struct {
	Options
	Lines   int
	NoColor bool
}

// PrintLogs writes the last entries of the configured log file.
func PrintLogs(w io.Writer, opts LogsOptions) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.LogFile == "" {
		return ErrLoggingDisabled
	}
	return logging.PrintTail(w, cfg.LogFile, opts.Lines, opts.NoColor)
}
