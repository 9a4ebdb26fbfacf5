/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package config fills command-line flags from the environment and dotenv files.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Prefix of every environment key.
const Prefix = "FONTSHEET_"

// DefaultFile is read when present in the working directory.
const DefaultFile = "fontsheet.env"

// EnvKey returns the environment key of flag name, e.g. FONTSHEET_CELL_WIDTH
// for cell-width.
func EnvKey(name string) string {
	return Prefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Apply sets every flag of flags that was not given on the command line from,
// in order, the process environment and the dotenv file. A missing file is
// an error only when mustExist is set. Flags named in skip are left alone.
func Apply(flags *flag.FlagSet, file string, mustExist bool, skip ...string) error {
	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	for _, name := range skip {
		explicit[name] = true
	}

	values := map[string]string{}
	if file != "" {
		m, err := godotenv.Read(file)
		switch {
		case err == nil:
			values = m
			slog.Debug("config loaded", "file", file, "keys", len(m))
		case errors.Is(err, fs.ErrNotExist) && !mustExist:
		default:
			return fmt.Errorf("config %s: %w", file, err)
		}
	}

	var err error
	flags.VisitAll(func(f *flag.Flag) {
		if err != nil || explicit[f.Name] {
			return
		}
		key := EnvKey(f.Name)
		v, ok := os.LookupEnv(key)
		if !ok {
			v, ok = values[key]
		}
		if !ok {
			return
		}
		if e := flags.Set(f.Name, v); e != nil {
			err = fmt.Errorf("%s=%q: %w", key, v, e)
		}
	})
	return err
}
