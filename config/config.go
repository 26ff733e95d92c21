/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package config loads line-oriented key=value configuration with
// per-field graceful degradation.
//
// The tolerance policy is asymmetric and deliberate:
//
//   - structurally malformed lines are skipped, not errors;
//   - an unparsable debug value silently falls back to false;
//   - an unparsable port aborts the whole load — a malformed port is a
//     caller-facing configuration error, not a tolerable one;
//   - unknown keys are ignored.
//
// The only Storage condition that aborts a load is the file being unreadable.
package config

import (
	"strconv"
	"strings"

	"dirpx.dev/fallible/convert"
	"dirpx.dev/fallible/storage"
)

// Static defaults applied before any line is interpreted.
const (
	DefaultDebug = false
	DefaultPort  = 8080
	DefaultHost  = "localhost"
)

// Config is the fully-populated configuration record. Every field is either
// parsed from input or filled from a static default; a partially-constructed
// Config is never observable outside this package.
type Config struct {
	Debug bool
	Port  uint16
	Host  string
}

// Defaults returns a Config populated entirely from the static defaults.
func Defaults() Config {
	return Config{Debug: DefaultDebug, Port: DefaultPort, Host: DefaultHost}
}

// Load reads the file at path through store and parses it.
//
// An unreadable file fails immediately with the converted io kind; this is
// the sole fatal, whole-load-aborting condition tied to Storage.
func Load(store storage.Store, path string) (Config, error) {
	text, err := store.ReadText(path)
	if err != nil {
		return Config{}, convert.From(err)
	}
	return Parse(text)
}

// Parse interprets newline-separated key=value text.
//
// Each line is split on '='; lines that do not yield exactly two parts are
// skipped silently, so a line with no separator — or more than one — is
// tolerated rather than rejected. Whitespace around key and value is trimmed
// before interpretation. There is no escaping or quoting.
func Parse(text string) (Config, error) {
	cfg := Defaults()

	for _, line := range strings.Split(text, "\n") {
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch key {
		case "debug":
			b, err := strconv.ParseBool(value)
			if err != nil {
				// Soft field: degrade to the default, never abort.
				b = DefaultDebug
			}
			cfg.Debug = b
		case "port":
			p, err := strconv.ParseUint(value, 10, 16)
			if err != nil {
				// Hard field: a malformed port fails the whole load.
				return Config{}, convert.From(err)
			}
			cfg.Port = uint16(p)
		case "host":
			// Any text value is accepted verbatim.
			cfg.Host = value
		}
	}

	return cfg, nil
}

// Render emits the persisted layout for cfg: one key=value pair per line,
// parseable back into an equal Config.
func Render(cfg Config) string {
	var b strings.Builder
	b.WriteString("debug=")
	b.WriteString(strconv.FormatBool(cfg.Debug))
	b.WriteString("\nport=")
	b.WriteString(strconv.FormatUint(uint64(cfg.Port), 10))
	b.WriteString("\nhost=")
	b.WriteString(cfg.Host)
	b.WriteString("\n")
	return b.String()
}
