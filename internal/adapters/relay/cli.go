package relay

import (
	"context"
	"os/exec"
	"strings"

	"clawpic/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// CLI delivers messages by invoking the openclaw command-line tool as a
// subprocess.
type CLI struct {
	binary string
}

func NewCLI(binary string) *CLI {
	return &CLI{binary: binary}
}

// Available reports whether the given gateway binary can be found on PATH.
// Transport selection based on it is the caller's concern.
func Available(binary string) bool {
	_, err := exec.LookPath(binary)
	return err == nil
}

func sendArgs(message domain.RelayMessage) []string {
	return []string{
		"message", "send",
		"--action", "send",
		"--channel", message.Channel,
		"--message", message.Caption,
		"--media", message.MediaURL,
	}
}

func (c *CLI) Send(ctx context.Context, message domain.RelayMessage) error {
	args := sendArgs(message)

	log.Debug().Str("binary", c.binary).Strs("args", args).Msg("invoking gateway CLI")

	cmd := exec.CommandContext(ctx, c.binary, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			detail = err.Error()
		}
		return &domain.RelayError{Transport: "cli", Detail: detail}
	}

	log.Debug().Msg("gateway CLI finished")

	return nil
}
