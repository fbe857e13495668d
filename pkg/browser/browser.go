package browser

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/devRabbiz/waveboxapp/internal/logging"
)

var ErrUnsupportedPlatform = errors.New("opening a browser is not supported on this platform")

// SupportsBackground reports whether URLs can be opened without focusing the browser
func SupportsBackground() bool {
	return supportsBackground(runtime.GOOS)
}

func supportsBackground(goos string) bool {
	return goos == "darwin"
}

// Open opens rawURL in the default browser. With background set, and where the
// platform allows it, the browser is not brought to the front.
func Open(rawURL string, background bool) error {
	if _, err := url.Parse(rawURL); err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}

	name, args, err := command(runtime.GOOS, rawURL, background)
	if err != nil {
		return err
	}

	logging.Logger.Debug("Opening url", "url", rawURL, "background", background, "command", name)

	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	return nil
}

func command(goos, rawURL string, background bool) (string, []string, error) {
	switch goos {
	case "darwin":
		if background {
			return "open", []string{"-g", rawURL}, nil
		}
		return "open", []string{rawURL}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{rawURL}, nil
	case "windows":
		// cmd /c start would parse & | ^ in the url as shell syntax
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}
