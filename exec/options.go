package exec

import (
	"os"
	"strings"
	"time"
)

// config holds the settings applied to every run of a Command.
type config struct {
	env           map[string]string
	dir           string
	timeout       time.Duration
	inheritEnv    bool
	disableColors bool
	maxOutput     int
}

// newConfig creates a new configuration with default values.
func newConfig() *config {
	return &config{
		env: make(map[string]string),
	}
}

// clone creates a deep copy of the configuration.
func (c *config) clone() *config {
	clone := *c
	clone.env = make(map[string]string, len(c.env))
	for k, v := range c.env {
		clone.env[k] = v
	}
	return &clone
}

// environ builds the child environment.
// Explicit variables override inherited ones, and color suppression overrides both.
// Returns nil when nothing was configured, so the child inherits the parent environment.
func (c *config) environ() []string {
	if !c.inheritEnv && !c.disableColors && len(c.env) == 0 {
		return nil
	}
	env := make(map[string]string)
	if c.inheritEnv {
		for _, kv := range os.Environ() {
			if k, v, ok := strings.Cut(kv, "="); ok {
				env[k] = v
			}
		}
	}
	for k, v := range c.env {
		env[k] = v
	}
	if c.disableColors {
		env["NO_COLOR"] = "1"
		env["TERM"] = "dumb"
		env["CLICOLOR"] = "0"
		env["CLICOLOR_FORCE"] = "0"
		env["FORCE_COLOR"] = "0"
		env["GCC_COLORS"] = ""
	}

	out := make([]string, 0, len(env))
	for k, v := range env {
		out = append(out, k+"="+v)
	}
	return out
}
