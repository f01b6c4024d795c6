package main

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunDispatch - Commands route correctly
// ---------------------------------------------------------------------------

func TestRunDispatch(t *testing.T) {
	t.Parallel()

	t.Run("no args prints usage", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		err := run(context.Background(), nil, env)
		if !errors.Is(err, errUsage) {
			t.Errorf("error = %v, want errUsage", err)
		}
		if !strings.Contains(stderr.String(), "Usage: md2pptx") {
			t.Errorf("usage missing from stderr: %q", stderr.String())
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		err := run(context.Background(), []string{"bogus"}, env)
		if !errors.Is(err, errUsage) {
			t.Errorf("error = %v, want errUsage", err)
		}
		if !strings.Contains(stderr.String(), "Unknown command: bogus") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := run(context.Background(), []string{"version"}, env); err != nil {
			t.Fatalf("version failed: %v", err)
		}
		if !strings.Contains(stdout.String(), "md2pptx") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})

	t.Run("help", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := run(context.Background(), []string{"help", "convert"}, env); err != nil {
			t.Fatalf("help failed: %v", err)
		}
		if !strings.Contains(stdout.String(), "Usage: md2pptx convert") {
			t.Errorf("stdout = %q", stdout.String())
		}
	})
}

// ---------------------------------------------------------------------------
// TestParseConvertFlags - Flags and positional arguments split cleanly
// ---------------------------------------------------------------------------

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseConvertFlags([]string{
		"demo.md", "-o", "out.json", "-f", "fonts.yaml", "--text-size", "20", "-s", "-q",
	})
	if err != nil {
		t.Fatalf("parseConvertFlags failed: %v", err)
	}

	if len(positional) != 1 || positional[0] != "demo.md" {
		t.Errorf("positional = %v, want [demo.md]", positional)
	}
	if flags.output.path != "out.json" {
		t.Errorf("output = %q", flags.output.path)
	}
	if flags.fonts.config != "fonts.yaml" {
		t.Errorf("font config = %q", flags.fonts.config)
	}
	if flags.fonts.textSize != 20 {
		t.Errorf("text size = %d", flags.fonts.textSize)
	}
	if !flags.output.summary || !flags.common.quiet {
		t.Errorf("bool flags = %+v", flags)
	}
}
