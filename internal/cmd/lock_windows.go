//go:build windows

package cmd

// acquireLock is a no-op on Windows; the launcher relies on the terminal
// session for exclusivity there.
func acquireLock(path string) (int, error) {
	return -1, nil
}

func releaseLock(fd int) {}
