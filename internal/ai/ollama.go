// Package ai integrates local Ollama models for pet chatter. Everything
// here is best-effort: failures collapse to a boolean and never reach the
// game loop as errors.
package ai

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

const (
	listTimeout     = 2 * time.Second
	generateTimeout = 8 * time.Second
)

// ListModels checks whether Ollama is installed and lists available model
// names. On failure ok is false and errMsg says why.
func ListModels() (ok bool, models []string, errMsg string) {
	ctx, cancel := context.WithTimeout(context.Background(), listTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ollama", "list")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return false, nil, "ollama list timed out"
		}
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return false, nil, "ollama command not found"
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if len(msg) > 200 {
			msg = msg[:200]
		}
		if msg == "" {
			msg = "ollama list failed: " + err.Error()
		}
		return false, nil, msg
	}

	lines := strings.Split(stdout.String(), "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if i == 0 || line == "" { // skip the header row
			continue
		}
		fields := strings.Fields(line)
		if len(fields) > 0 {
			models = append(models, fields[0])
		}
	}
	if len(models) == 0 {
		return true, nil, "no models found (run: ollama pull qwen2.5:0.5b)"
	}
	return true, models, ""
}

// Generate runs one prompt through a local model and returns the first
// line of output. All failures (missing binary, timeout, non-zero exit,
// empty output) collapse to ok=false.
func Generate(model, prompt string) (bool, string) {
	if model == "" {
		return false, ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), generateTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "ollama", "run", model, prompt)
	out, err := cmd.Output()
	if err != nil {
		return false, ""
	}

	text := strings.TrimSpace(string(out))
	if text == "" {
		return false, ""
	}
	text = strings.ReplaceAll(text, "\r", "\n")
	line := strings.TrimSpace(strings.SplitN(text, "\n", 2)[0])
	if line == "" {
		return false, ""
	}
	return true, line
}
