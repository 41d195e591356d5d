package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// ImportShellHistory reads the user's shell history file and returns the
// most recent distinct commands, newest first, up to limit. shell may be
// "bash", "zsh", or "auto" to detect from $SHELL. An unknown shell or a
// missing history file yields an empty list, not an error: seeding is
// best-effort.
func ImportShellHistory(shell string, limit int) ([]string, error) {
	if shell == "" || shell == "auto" {
		shell = detectShell()
	}

	var (
		commands []string
		err      error
	)
	switch shell {
	case "bash":
		commands, err = readShellHistory(bashHistoryPath(), parseBashLine)
	case "zsh":
		commands, err = readShellHistory(zshHistoryPath(), newZshParser())
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return dedupeNewestFirst(commands, limit), nil
}

// detectShell maps $SHELL to a supported shell name.
func detectShell() string {
	switch filepath.Base(os.Getenv("SHELL")) {
	case "bash":
		return "bash"
	case "zsh":
		return "zsh"
	}
	return ""
}

// readShellHistory scans path line by line, keeping what parse accepts.
func readShellHistory(path string, parse func(string) (string, bool)) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var commands []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if cmd, ok := parse(scanner.Text()); ok {
			commands = append(commands, cmd)
		}
	}
	return commands, scanner.Err()
}

// parseBashLine accepts plain command lines and skips HISTTIMEFORMAT
// timestamp markers (#<unix_ts>).
func parseBashLine(line string) (string, bool) {
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	return line, true
}

// newZshParser returns a line parser that strips the extended history
// prefix (": <timestamp>:<duration>;<command>") when present. Multiline
// commands are skipped entirely: neither the truncated head nor the
// continuation lines are launchable on their own.
func newZshParser() func(string) (string, bool) {
	inMultiline := false
	return func(line string) (string, bool) {
		if strings.HasPrefix(line, ": ") {
			if idx := strings.Index(line, ";"); idx != -1 {
				line = line[idx+1:]
			}
		}
		if strings.HasSuffix(line, "\\") {
			inMultiline = true
			return "", false
		}
		if inMultiline {
			inMultiline = false
			return "", false
		}
		if line == "" {
			return "", false
		}
		return line, true
	}
}

// dedupeNewestFirst keeps each command's latest occurrence and returns the
// result newest first, capped at limit.
func dedupeNewestFirst(commands []string, limit int) []string {
	seen := make(map[string]bool, len(commands))
	var out []string
	for i := len(commands) - 1; i >= 0; i-- {
		key := strings.ToLower(strings.TrimSpace(commands[i]))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, commands[i])
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// bashHistoryPath returns the path to the bash history file.
func bashHistoryPath() string {
	if histFile := os.Getenv("HISTFILE"); histFile != "" {
		return histFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bash_history")
}

// zshHistoryPath returns the path to the zsh history file.
func zshHistoryPath() string {
	if histFile := os.Getenv("HISTFILE"); histFile != "" {
		return histFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".zsh_history")
}
