package version

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UserAgent contains a string suitable as a user-agent.
var UserAgent = getUserAgent()

func getUserAgent() string {
	tokens := []string{cases.Title(language.English).String(runtime.GOOS), runtime.GOARCH}
	tokens = append(tokens, getPlatformVersionStrings()...)

	return fmt.Sprintf("lxd-driver %s (%s)", Version, strings.Join(tokens, "; "))
}
