// Package config loads and validates the settings of the xgxreport command.
package config

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Keys shared by flags, the config file and the environment.
const (
	KeyVerbose   = "verbose"
	KeyOutput    = "output"
	KeyMaxDepth  = "max_depth"
	KeyAlternate = "alternate"
)

// EnvPrefix namespaces environment overrides, e.g. XGXREPORT_MAX_DEPTH.
const EnvPrefix = "XGXREPORT"

// Settings is the resolved configuration of one invocation.
type Settings struct {
	Verbose   string // log level: trace, debug, info, warn, error, fatal
	Output    string // log format: json, pretty, text
	MaxDepth  int    // causes listed at most; 0 selects the library default
	Alternate bool   // dump the error structure instead of the report
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyVerbose, "info")
	v.SetDefault(KeyOutput, "pretty")
	v.SetDefault(KeyMaxDepth, 0)
	v.SetDefault(KeyAlternate, false)
}

// Load reads Settings from v and validates them. Every invalid key is
// reported, not just the first.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Verbose:   v.GetString(KeyVerbose),
		Output:    v.GetString(KeyOutput),
		MaxDepth:  v.GetInt(KeyMaxDepth),
		Alternate: v.GetBool(KeyAlternate),
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks every field and aggregates the problems.
func (s *Settings) Validate() error {
	var merr *multierror.Error

	if s.Verbose != "" {
		if _, err := zerolog.ParseLevel(s.Verbose); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: unknown log level %q", KeyVerbose, s.Verbose))
		}
	}
	switch s.Output {
	case "", "json", "pretty", "text":
	default:
		merr = multierror.Append(merr, fmt.Errorf("%s: unsupported log format %q", KeyOutput, s.Output))
	}
	if s.MaxDepth < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%s: must not be negative, got %d", KeyMaxDepth, s.MaxDepth))
	}

	return merr.ErrorOrNil()
}
