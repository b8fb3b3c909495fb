package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type ZerologAdapter struct {
	logger zerolog.Logger
}

func NewZerolog(writer io.Writer, level LogLevel) *ZerologAdapter {
	logger := zerolog.New(writer).
		Level(level.toZerolog()).
		With().
		Timestamp().
		Logger()

	return &ZerologAdapter{logger: logger}
}

func NewConsoleLogger(level LogLevel) *ZerologAdapter {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.TimeOnly}
	return NewZerolog(consoleWriter, level)
}

// NewFileLogger writes JSON lines, for front ends that own stdout
func NewFileLogger(level LogLevel, writer io.Writer) *ZerologAdapter {
	return NewZerolog(writer, level)
}

// With returns a child logger that adds fields to every entry
func (z *ZerologAdapter) With(fields map[string]interface{}) *ZerologAdapter {
	return &ZerologAdapter{logger: z.logger.With().Fields(fields).Logger()}
}

// Component returns a child logger tagged with a component name
func (z *ZerologAdapter) Component(name string) *ZerologAdapter {
	return &ZerologAdapter{logger: z.logger.With().Str("component", name).Logger()}
}

func (z *ZerologAdapter) Debug(msg string, fields map[string]interface{}) {
	z.logger.Debug().Fields(fields).Msg(msg)
}

func (z *ZerologAdapter) Info(msg string, fields map[string]interface{}) {
	z.logger.Info().Fields(fields).Msg(msg)
}

func (z *ZerologAdapter) Warning(msg string, fields map[string]interface{}) {
	z.logger.Warn().Fields(fields).Msg(msg)
}

func (z *ZerologAdapter) Error(msg string, err error, fields map[string]interface{}) {
	z.logger.Error().Err(err).Fields(fields).Msg(msg)
}
