// Package chainspec turns command-line input into an error chain.
//
// A chain is a list of messages: the first is the root error, each following
// message is the cause of the one before it. In a file, messages are
// separated by a line holding only "--" and may span several lines.
package chainspec

import (
	"bufio"
	"errors"
	"io"
	"strings"

	xgxreport "github.com/xgx-io/xgx-report"
)

// Separator is the line that ends one message in a file.
const Separator = "--"

// ErrEmpty is returned when the input holds no message at all.
var ErrEmpty = errors.New("no messages given")

// FromArgs unescapes "\n" and "\t" in every argument.
func FromArgs(args []string) []string {
	r := strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`)
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = r.Replace(a)
	}
	return out
}

// Parse reads messages from r. Trailing carriage returns are dropped from
// every line; a message keeps its interior blank lines.
func Parse(r io.Reader) ([]string, error) {
	var (
		msgs    []string
		current []string
		open    bool
	)
	flush := func() {
		if open {
			msgs = append(msgs, strings.Join(current, "\n"))
		}
		current, open = nil, false
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == Separator {
			flush()
			continue
		}
		current = append(current, line)
		open = true
	}
	if err := sc.Err(); err != nil {
		return nil, xgxreport.Wrap(err, "reading messages")
	}
	flush()
	return msgs, nil
}

// Build returns the chain described by msgs: msgs[0] is the root, msgs[len-1]
// the root cause.
func Build(msgs []string) (*xgxreport.Report, error) {
	if len(msgs) == 0 {
		return nil, ErrEmpty
	}
	report := xgxreport.New(msgs[len(msgs)-1])
	for i := len(msgs) - 2; i >= 0; i-- {
		report = report.Wrap(msgs[i])
	}
	return report, nil
}
