package main

import (
	"fmt"
	"io"
	"time"

	"github.com/BertoldVdb/romfix/romsum"
	"github.com/rs/zerolog"
)

func newLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

/* libraryLogFunc forwards romsum messages up to maxLevel to the logger */
func libraryLogFunc(log zerolog.Logger, maxLevel int) romsum.LogFunc {
	return func(level int, format string, param ...interface{}) {
		if level > maxLevel {
			return
		}

		event := log.Info()
		if level > 1 {
			event = log.Debug()
		}
		event.Int("level", level).Msg(fmt.Sprintf(format, param...))
	}
}
