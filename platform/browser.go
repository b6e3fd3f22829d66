package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// browserCommand returns the program that opens rawURL with the desktop's
// default handler on goos.
func browserCommand(goos, rawURL string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	}
	return "xdg-open", []string{rawURL}
}

func launchBrowser(rawURL string) error {
	name, args := browserCommand(runtime.GOOS, rawURL)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", rawURL, err)
	}
	go cmd.Wait()
	return nil
}
