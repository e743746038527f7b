// Package notify sends desktop notifications through the platform notifier binary.
package notify

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"github.com/farcloser/primordium/fault"

	"github.com/farcloser/lintreport/internal/integration/binary"
)

const timeout = 10 * time.Second

var errUnsupportedPlatform = errors.New("desktop notifications are not supported on this platform")

// command returns the notifier binary and arguments for the current platform.
func command(goos, title, message string) (string, []string, error) {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return "notify-send", []string{"--app-name", "lintreport", title, message}, nil
	case "darwin":
		script := "display notification " + strconv.Quote(message) + " with title " + strconv.Quote(title)

		return "osascript", []string{"-e", script}, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", errUnsupportedPlatform, goos)
	}
}

// Send shows a desktop notification.
func Send(ctx context.Context, title, message string) error {
	name, args, err := command(runtime.GOOS, title, message)
	if err != nil {
		return err
	}

	slog.Debug("notify.Send", "binary", name, "stage", "start")

	binPath, found := binary.Available(name)
	if !found {
		return fmt.Errorf("%w: %s", fault.ErrMissingRequirements, name)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binPath, args...) //nolint:gosec // fixed binary, arguments are quoted

	var stderr bytes.Buffer

	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			slog.Debug("notify.Send", "binary", name, "stage", "timeout")

			return fmt.Errorf("%w: after %v", fault.ErrTimeout, timeout)
		}

		slog.Debug("notify.Send", "binary", name, "stage", "error")

		return fmt.Errorf("%w: %s: %w", fault.ErrCommandFailure, stderr.String(), err)
	}

	return nil
}
