// Package log is the leveled logger of the xgxreport command. Errors attached
// with Err carry their full cause report.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	xgxreport "github.com/xgx-io/xgx-report"
)

type LogFormat string

var (
	Pretty LogFormat = "pretty"
	JSON   LogFormat = "json"
	Text   LogFormat = "text"
)

var (
	stderr = zerolog.New(os.Stderr).With().Timestamp().Logger()

	globalFormat = Pretty

	ErrUnsupportedFormat = fmt.Errorf("unsupported format. supported 'json', 'pretty', 'text'")
)

const (
	FatalLevel = zerolog.FatalLevel
	ErrorLevel = zerolog.ErrorLevel
	WarnLevel  = zerolog.WarnLevel
	InfoLevel  = zerolog.InfoLevel
	DebugLevel = zerolog.DebugLevel
	TraceLevel = zerolog.TraceLevel
)

func init() {
	zerolog.ErrorMarshalFunc = MarshalError
}

// MarshalError renders err as its cause report for the error field of a log
// event.
func MarshalError(err error) interface{} {
	return xgxreport.Sprint(err)
}

func Fatal() *zerolog.Event { return stderr.Fatal() }
func Error() *zerolog.Event { return stderr.Error() }
func Warn() *zerolog.Event  { return stderr.Warn() }
func Info() *zerolog.Event  { return stderr.Info() }
func Debug() *zerolog.Event { return stderr.Debug() }
func Trace() *zerolog.Event { return stderr.Trace() }

// Err starts an error-level event for a non-nil err, info-level otherwise.
func Err(err error) *zerolog.Event { return stderr.Err(err) }

func GetLevel() zerolog.Level { return stderr.GetLevel() }

func SetLevelString(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	stderr = stderr.Level(l)
	return nil
}

func GetLogFormat() LogFormat {
	return globalFormat
}

func SetFormat(format string) error {
	return setFormat(os.Stderr, format)
}

// SetOutput redirects the logger to w, keeping the current format.
func SetOutput(w io.Writer) {
	_ = setFormat(w, string(globalFormat))
}

func setFormat(w io.Writer, format string) error {
	switch format {
	case "json", "":
		stderr = stderr.Output(w)
		globalFormat = JSON
	case "pretty":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: w, NoColor: false, TimeFormat: "3:04PM"})
		globalFormat = Pretty
	case "text":
		stderr = stderr.Output(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "3:04PM"})
		globalFormat = Text
	default:
		return ErrUnsupportedFormat
	}
	return nil
}
