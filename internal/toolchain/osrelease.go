package toolchain

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Default location of the os-release file on Linux.
const osReleasePath = "/etc/os-release"

// Value used when a distribution field cannot be determined.
const unknown = "Unknown"

// Linux distribution information from os-release.
type Distro struct {
	Name     string // e.g. "Ubuntu"
	Version  string // e.g. "24.04.1 LTS (Noble Numbat)"
	Codename string // e.g. "noble"
}

// Reads distribution information from /etc/os-release.
//
// Fields that cannot be read report "Unknown"; a missing file is not an
// error, since the pipeline only uses this for display.
func ReadDistro() Distro {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return Distro{Name: unknown, Version: unknown, Codename: unknown}
	}
	defer f.Close()

	return parseOSRelease(f)
}

// Parses os-release key=value lines into a [Distro].
func parseOSRelease(r io.Reader) Distro {
	d := Distro{Name: unknown, Version: unknown, Codename: unknown}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}

		value = strings.Trim(strings.TrimSpace(value), `"`)

		switch key {
		case "NAME":
			d.Name = value
		case "VERSION":
			d.Version = value
		case "VERSION_CODENAME":
			d.Codename = value
		}
	}

	return d
}
