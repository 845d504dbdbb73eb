package tui

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener loads an external link outside the application
type Opener func(href string) error

// OpenInBrowser asks the operating system to open href
func OpenInBrowser(href string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", href)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", href)
	default:
		cmd = exec.Command("xdg-open", href)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", href, err)
	}
	// the browser outlives us; reap the launcher in the background
	go func() { _ = cmd.Wait() }()
	return nil
}
