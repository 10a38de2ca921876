// Package logs builds the slog logger used by the typo commands.
package logs

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"

	"github.com/ezrec/typo/config"
)

// Level returns the slog level for a level name, defaulting to info.
func Level(name string) (level slog.Level, err error) {
	if len(name) == 0 {
		level = slog.LevelInfo
		return
	}

	err = level.UnmarshalText([]byte(name))
	if err != nil {
		err = config.ErrLevel(name)
	}
	return
}

// New returns a logger writing text to w, plus the JSON file and the systemd
// journal when the settings ask for them. The returned close function
// releases the log file.
func New(w io.Writer, cfg config.LogConfig) (logger *slog.Logger, closeLog func() error, err error) {
	level, err := Level(cfg.Level)
	if err != nil {
		return
	}

	closeLog = func() error { return nil }

	terminal := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	handlers := []slog.Handler{terminal}

	if len(cfg.File) != 0 {
		var file *os.File
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return
		}
		closeLog = file.Close
		handlers = append(handlers, slog.NewJSONHandler(file, &slog.HandlerOptions{
			Level: level,
		}))
	}

	if cfg.Journal {
		journal, journalErr := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if journalErr != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "systemd journal unavailable", 0)
			record.Add("error", journalErr)
			_ = terminal.Handle(context.Background(), record)
		} else {
			handlers = append(handlers, journal)
		}
	}

	logger = slog.New(slogmulti.Fanout(handlers...))
	return
}

// Journal field names are upper case letters, digits and underscores.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
