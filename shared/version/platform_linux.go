//go:build linux

package version

import (
	"bufio"
	"os"
	"strings"

	"golang.org/x/sys/unix"
)

func getPlatformVersionStrings() []string {
	versions := []string{}

	// Add kernel version
	uname := unix.Utsname{}
	err := unix.Uname(&uname)
	if err != nil {
		return versions
	}

	versions = append(versions, strings.Split(unix.ByteSliceToString(uname.Release[:]), "-")[0])

	// Add distribution info
	osRelease, err := parseOSRelease("/etc/os-release")
	if err == nil {
		for _, key := range []string{"NAME", "VERSION_ID"} {
			value, ok := osRelease[key]
			if ok {
				versions = append(versions, value)
			}
		}
	}

	return versions
}

func parseOSRelease(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer func() { _ = f.Close() }()

	values := map[string]string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		values[key] = strings.Trim(value, `"'`)
	}

	return values, scanner.Err()
}
