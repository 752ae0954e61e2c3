package main

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	oldStdout := os.Stdout
	reader, writer, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe() failed: %v", err)
	}
	os.Stdout = writer
	defer func() {
		os.Stdout = oldStdout
	}()

	fn()

	if err := writer.Close(); err != nil {
		t.Fatalf("writer.Close() failed: %v", err)
	}

	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, reader); err != nil {
		t.Fatalf("io.Copy() failed: %v", err)
	}
	if err := reader.Close(); err != nil {
		t.Fatalf("reader.Close() failed: %v", err)
	}

	return buffer.String()
}

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	originalArgs := os.Args
	t.Cleanup(func() {
		os.Args = originalArgs
	})
	os.Args = append([]string{"boostgraph"}, args...)
}

func TestHandleCLIFlagsVersion(t *testing.T) {
	setArgs(t, "-version")

	var handled bool
	var exitCode int
	output := captureStdout(t, func() {
		_, handled, exitCode = handleCLIFlags()
	})

	if !handled {
		t.Fatal("handleCLIFlags() handled = false, want true for -version")
	}
	if exitCode != 0 {
		t.Fatalf("handleCLIFlags() exitCode = %d, want 0", exitCode)
	}
	if !strings.Contains(output, "version: dev") {
		t.Fatalf("version output missing version line: %s", output)
	}
}

func TestHandleCLIFlagsParseError(t *testing.T) {
	setArgs(t, "-definitely-not-a-flag")

	_, handled, exitCode := handleCLIFlags()

	if !handled {
		t.Fatal("handleCLIFlags() handled = false, want true for a parse error")
	}
	if exitCode != 2 {
		t.Fatalf("handleCLIFlags() exitCode = %d, want 2", exitCode)
	}
}

func TestHandleCLIFlagsRunDefaults(t *testing.T) {
	setArgs(t)

	opts, handled, exitCode := handleCLIFlags()

	if handled {
		t.Fatal("handleCLIFlags() handled = true, want false without mode flags")
	}
	if exitCode != 0 {
		t.Fatalf("handleCLIFlags() exitCode = %d, want 0", exitCode)
	}
	if opts != (cliOptions{}) {
		t.Fatalf("handleCLIFlags() opts = %+v, want zero values", opts)
	}
}

func TestHandleCLIFlagsRunOverrides(t *testing.T) {
	setArgs(t,
		"-dry-run",
		"-workdir", "/opt/kaldi/egs/librispeech/s5/lattice_boosting",
		"-word-discount", "-2.5",
		"-phrases", "my_phrases.txt",
	)

	opts, handled, _ := handleCLIFlags()

	if handled {
		t.Fatal("handleCLIFlags() handled = true, want false for run flags")
	}
	if !opts.dryRun {
		t.Fatal("opts.dryRun = false, want true")
	}
	if opts.workDir != "/opt/kaldi/egs/librispeech/s5/lattice_boosting" {
		t.Fatalf("opts.workDir = %q", opts.workDir)
	}
	if opts.wordDiscount != -2.5 {
		t.Fatalf("opts.wordDiscount = %v, want -2.5", opts.wordDiscount)
	}
	if opts.phrasesFile != "my_phrases.txt" {
		t.Fatalf("opts.phrasesFile = %q, want %q", opts.phrasesFile, "my_phrases.txt")
	}
}

func TestPrintDiagnoseShowsDependencyStatus(t *testing.T) {
	output := captureStdout(t, printDiagnose)

	if !strings.Contains(output, "runtime: ") {
		t.Fatalf("printDiagnose() output missing runtime line: %s", output)
	}
	if !strings.Contains(output, "Dependency status") {
		t.Fatalf("printDiagnose() output missing dependency report: %s", output)
	}
}
