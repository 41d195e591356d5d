//go:build windows

package launch

// openerCommand returns the platform opener invocation for a path or URL.
func openerCommand(target string) (string, []string) {
	return "rundll32", []string{"url.dll,FileProtocolHandler", target}
}
