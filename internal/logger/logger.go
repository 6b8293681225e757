package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Init configures the global zerolog logger. It is called before config is
// loaded, so it reads LOG_LEVEL and LOG_FILE straight from the environment.
func Init() {
	Configure(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FILE"))
}

// Configure sets the global level and writers. When file is non-empty, JSON
// records are also written to a rotating file.
func Configure(level, file string) {
	zerolog.TimeFieldFormat = time.RFC3339

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	if file != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   file,
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}

	log.Logger = zerolog.New(out).With().Timestamp().Caller().Logger()
}
