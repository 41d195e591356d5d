//go:build !windows

package launch

import "runtime"

// openerCommand returns the platform opener invocation for a path or URL.
func openerCommand(target string) (string, []string) {
	if runtime.GOOS == "darwin" {
		return "open", []string{target}
	}
	return "xdg-open", []string{target}
}
