package cddis

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
)

// DefaultMachine is the Earthdata login host the archive authenticates
// against.
const DefaultMachine = "urs.earthdata.nasa.gov"

// ValidateNetrc checks that the user's netrc file holds complete
// credentials for machine. A nil return means the entry is usable; the
// error spells out what is missing otherwise, including a hint at the
// expected file location when no file exists at all.
func ValidateNetrc(machine string) error {
	if machine == "" {
		machine = DefaultMachine
	}
	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	candidates := []string{filepath.Join(home, ".netrc")}
	if runtime.GOOS == "windows" {
		// Windows toolchains read _netrc; some scripts still write .netrc.
		candidates = append(candidates, filepath.Join(home, "_netrc"))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return ValidateNetrcFile(path, machine)
		}
	}
	return fmt.Errorf("netrc file not found at %s", candidates[0])
}

// ValidateNetrcFile checks a specific netrc file for complete machine
// credentials.
func ValidateNetrcFile(path, machine string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	login, password, found := netrcEntry(string(data), machine)
	if !found {
		return fmt.Errorf("no entry for %q in %s", machine, path)
	}
	if login == "" || password == "" {
		return fmt.Errorf("incomplete credentials for %q in %s", machine, path)
	}
	return nil
}

// netrcEntry scans netrc tokens for the given machine and returns its
// login and password. The format is a flat token stream: "machine" or
// "default" starts an entry, "login"/"password" pairs belong to the
// current one. A "default" entry is used as a fallback when no machine
// entry matches; a matching machine entry always wins, even when
// incomplete.
func netrcEntry(content, machine string) (login, password string, found bool) {
	tokens := strings.Fields(content)
	var defLogin, defPassword string
	inEntry := false
	inDefault := false
	hasDefault := false
	for i := 0; i < len(tokens); i++ {
		switch tokens[i] {
		case "machine":
			i++
			if i >= len(tokens) {
				break
			}
			inEntry = tokens[i] == machine
			inDefault = false
			if inEntry {
				found = true
			}
		case "default":
			inEntry = false
			inDefault = true
			hasDefault = true
		case "login":
			if i+1 < len(tokens) {
				if inEntry {
					login = tokens[i+1]
				} else if inDefault {
					defLogin = tokens[i+1]
				}
			}
			i++
		case "password":
			if i+1 < len(tokens) {
				if inEntry {
					password = tokens[i+1]
				} else if inDefault {
					defPassword = tokens[i+1]
				}
			}
			i++
		}
	}
	if !found && hasDefault {
		return defLogin, defPassword, true
	}
	return login, password, found
}
