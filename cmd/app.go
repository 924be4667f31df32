// Package cmd implements the hc command line application to chart a portfolio snapshot.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/etnz/holdings"
	"github.com/joho/godotenv"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Empty flags fall back to the environment, then to the built-in defaults.

var snapshotFile = flag.String("snapshot", "", "Path to the portfolio snapshot file (JSON). Defaults to $HC_SNAPSHOT or snapshot.json")
var colorsFile = flag.String("colors", "", "Path to the transaction color table (JSON). Defaults to $HC_COLORS or the built-in table")
var privateMode = flag.Bool("private", false, "Hide amounts. Defaults to $HC_PRIVATE")
var positionsPath = flag.String("positions-path", "", "JSONPath of the positions in the snapshot file. Defaults to $HC_POSITIONS_PATH or $.positions")
var accountsPath = flag.String("accounts-path", "", "JSONPath of the accounts in the snapshot file. Defaults to $HC_ACCOUNTS_PATH, which may be set empty to read no accounts, or $.accounts")

// LoadEnv loads the .env file of the current directory, if any, into the environment.
// Variables already set take precedence.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, cannot load .env file:", err)
	}
}

// setting returns the flag value v, or the environment variable key, or def.
func setting(v, key, def string) string {
	if v != "" {
		return v
	}
	if env, ok := os.LookupEnv(key); ok {
		return env
	}
	return def
}

// isPrivate reports whether amounts must be hidden.
func isPrivate() bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "private" {
			set = true
		}
	})
	return privateSetting(set, *privateMode)
}

// privateSetting is the -private flag value when set on the command line,
// or $HC_PRIVATE, or false.
func privateSetting(set, v bool) bool {
	if set {
		return v
	}
	env := os.Getenv("HC_PRIVATE")
	if env == "" {
		return false
	}
	private, err := strconv.ParseBool(env)
	if err != nil {
		log.Printf("warning, invalid HC_PRIVATE value %q, ignored", env)
		return false
	}
	return private
}

// snapshotPaths returns the locations of the arrays in the snapshot file.
func snapshotPaths() holdings.SnapshotPaths {
	return holdings.SnapshotPaths{
		Positions: setting(*positionsPath, "HC_POSITIONS_PATH", holdings.DefaultSnapshotPaths.Positions),
		Accounts:  setting(*accountsPath, "HC_ACCOUNTS_PATH", holdings.DefaultSnapshotPaths.Accounts),
	}
}

func snapshotLocation() string { return setting(*snapshotFile, "HC_SNAPSHOT", "snapshot.json") }

// DecodeSnapshot decodes the snapshot file of the application.
func DecodeSnapshot() (s *holdings.Snapshot, err error) {
	s, err = holdings.LoadSnapshot(snapshotLocation(), snapshotPaths())
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, snapshot does not exist, using an empty portfolio instead")
		s, err = &holdings.Snapshot{}, nil
	}
	return
}

// DecodeColors decodes the color table of the application.
func DecodeColors() (holdings.ColorTable, error) {
	return holdings.LoadColorTable(setting(*colorsFile, "HC_COLORS", ""))
}
