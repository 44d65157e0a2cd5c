package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/agnivade/levenshtein"

	quillerr "github.com/mrz1836/quill/pkg/errors"
)

// maxKeyTypoDistance bounds "did you mean" suggestions for config keys.
const maxKeyTypoDistance = 3

type keyAccessor struct {
	get func(c *Config) string
	set func(c *Config, value string) error
}

func oneOf(key string, valid ...string) func(string) error {
	return func(value string) error {
		for _, v := range valid {
			if value == v {
				return nil
			}
		}
		return quillerr.WithDetails(quillerr.ErrConfigInvalid, map[string]string{
			"key":   key,
			"value": value,
			"valid": fmt.Sprint(valid),
		})
	}
}

func boolValue(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, quillerr.WithDetails(quillerr.ErrConfigInvalid, map[string]string{
			"key":   key,
			"value": value,
			"valid": "true or false",
		})
	}
	return b, nil
}

// keys maps dotted config paths to their accessors.
//
//nolint:gochecknoglobals // Lookup table
var keys = map[string]keyAccessor{
	"home": {
		get: func(c *Config) string { return c.Home },
		set: func(c *Config, v string) error { c.Home = v; return nil },
	},
	"signing.strict_fields": {
		get: func(c *Config) string { return strconv.FormatBool(c.Signing.StrictFields) },
		set: func(c *Config, v string) error {
			b, err := boolValue("signing.strict_fields", v)
			if err != nil {
				return err
			}
			c.Signing.StrictFields = b
			return nil
		},
	},
	"signing.output": {
		get: func(c *Config) string { return c.Signing.Output },
		set: func(c *Config, v string) error {
			if err := oneOf("signing.output", SigningOutputHex, SigningOutputFields)(v); err != nil {
				return err
			}
			c.Signing.Output = v
			return nil
		},
	},
	"security.memory_lock": {
		get: func(c *Config) string { return strconv.FormatBool(c.Security.MemoryLock) },
		set: func(c *Config, v string) error {
			b, err := boolValue("security.memory_lock", v)
			if err != nil {
				return err
			}
			c.Security.MemoryLock = b
			return nil
		},
	},
	"output.default_format": {
		get: func(c *Config) string { return c.Output.DefaultFormat },
		set: func(c *Config, v string) error {
			if err := oneOf("output.default_format", "text", "json", "auto")(v); err != nil {
				return err
			}
			c.Output.DefaultFormat = v
			return nil
		},
	},
	"output.color": {
		get: func(c *Config) string { return c.Output.Color },
		set: func(c *Config, v string) error {
			if err := oneOf("output.color", "auto", "always", "never")(v); err != nil {
				return err
			}
			c.Output.Color = v
			return nil
		},
	},
	"output.verbose": {
		get: func(c *Config) string { return strconv.FormatBool(c.Output.Verbose) },
		set: func(c *Config, v string) error {
			b, err := boolValue("output.verbose", v)
			if err != nil {
				return err
			}
			c.Output.Verbose = b
			return nil
		},
	},
	"logging.level": {
		get: func(c *Config) string { return c.Logging.Level },
		set: func(c *Config, v string) error {
			if err := oneOf("logging.level", "off", "error", "debug")(v); err != nil {
				return err
			}
			c.Logging.Level = v
			return nil
		},
	},
	"logging.file": {
		get: func(c *Config) string { return c.Logging.File },
		set: func(c *Config, v string) error { c.Logging.File = v; return nil },
	},
	"logging.json": {
		get: func(c *Config) string { return strconv.FormatBool(c.Logging.JSON) },
		set: func(c *Config, v string) error {
			b, err := boolValue("logging.json", v)
			if err != nil {
				return err
			}
			c.Logging.JSON = b
			return nil
		},
	},
}

// Keys returns every settable config path, sorted.
func Keys() []string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Get returns the value at a dotted config path such as "signing.output".
func (c *Config) Get(path string) (string, error) {
	acc, ok := keys[path]
	if !ok {
		return "", unknownKey(path)
	}
	return acc.get(c), nil
}

// Set parses value and stores it at a dotted config path.
func (c *Config) Set(path, value string) error {
	acc, ok := keys[path]
	if !ok {
		return unknownKey(path)
	}
	return acc.set(c, value)
}

func unknownKey(path string) error {
	err := quillerr.WithDetails(quillerr.ErrUnknownConfigKey, map[string]string{"key": path})
	if suggestion := SuggestKey(path); suggestion != "" {
		err = quillerr.WithSuggestion(err, fmt.Sprintf("did you mean %q?", suggestion))
	}
	return err
}

// SuggestKey returns the config path closest to input, or "" when none is close.
func SuggestKey(input string) string {
	minDist := math.MaxInt
	var suggestion string

	for _, key := range Keys() {
		dist := levenshtein.ComputeDistance(input, key)
		if dist < minDist {
			minDist = dist
			suggestion = key
		}
	}

	if minDist <= maxKeyTypoDistance {
		return suggestion
	}
	return ""
}
