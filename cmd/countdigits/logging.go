package main

import (
	"os"
	"sync"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// LoggerConfig builds the logger once flags have been parsed.
type LoggerConfig struct {
	level string

	once   sync.Once
	logger log.Logger
}

// Register is used to register the logging flags to the application.
func (c *LoggerConfig) Register(app *kingpin.Application) {
	app.Flag("log.level", "Only log messages with the given severity or above.").
		Default("info").
		EnumVar(&c.level, "debug", "info", "warn", "error")
}

// Logger returns a logfmt logger on stderr filtered by --log.level.
func (c *LoggerConfig) Logger() log.Logger {
	c.once.Do(func() {
		logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
		c.logger = level.NewFilter(logger, level.Allow(level.ParseDefault(c.level, level.InfoValue())))
	})
	return c.logger
}
