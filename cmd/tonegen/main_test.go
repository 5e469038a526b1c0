// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"TONEGEN_SAMPLE_RATE", "TONEGEN_CHANNELS", "TONEGEN_BITS", "TONEGEN_AMPLITUDE",
		"TONEGEN_FREQUENCY", "TONEGEN_DURATION", "TONEGEN_OUTPUT", "TONEGEN_DEBUG",
	} {
		t.Setenv(k, "")
	}
}

func TestRun_Generates(t *testing.T) {
	clearEnv(t)
	base := filepath.Join(t.TempDir(), "tone")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-rate", "8000", "-channels", "2", "-duration", "1", "-o", base, "-verify"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %s", code, stderr.String())
	}

	if !strings.HasPrefix(stdout.String(), "[DONE] "+base) {
		t.Errorf("stdout = %q, want [DONE] summary", stdout.String())
	}

	st, err := os.Stat(base + ".wav")
	if err != nil {
		t.Fatalf("stat wav: %v", err)
	}
	if st.Size() != 8000*2*2+44 {
		t.Errorf("wav size = %d, want %d", st.Size(), 8000*2*2+44)
	}
}

func TestRun_HeaderOnlyVerify(t *testing.T) {
	clearEnv(t)
	base := filepath.Join(t.TempDir(), "empty")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-o", base, "-verify"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr = %s", code, stderr.String())
	}

	st, err := os.Stat(base + ".pcm")
	if err != nil {
		t.Fatalf("stat pcm: %v", err)
	}
	if st.Size() != 0 {
		t.Errorf("pcm size = %d, want 0", st.Size())
	}
}

func TestRun_Nudges(t *testing.T) {
	clearEnv(t)
	base := filepath.Join(t.TempDir(), "nudged")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-o", base, "-amp-step", "3", "-freq-step", "-2"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr = %s", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), "f:800 | amp: 1300") {
		t.Errorf("stdout = %q, want nudged frequency and amplitude", stdout.String())
	}
}

func TestRun_InvalidBits(t *testing.T) {
	clearEnv(t)
	base := filepath.Join(t.TempDir(), "bad")

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-bits", "24", "-o", base}, &stdout, &stderr); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	if !strings.HasPrefix(stdout.String(), "[FALSE] Generate file "+base) {
		t.Errorf("stdout = %q, want failure text", stdout.String())
	}
	if _, err := os.Stat(base + ".wav"); !os.IsNotExist(err) {
		t.Errorf("wav file created for invalid request: %v", err)
	}
}

func TestRun_BadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("TONEGEN_CHANNELS", "two")

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
	if !strings.Contains(stderr.String(), "TONEGEN_CHANNELS") {
		t.Errorf("stderr = %q, want variable name", stderr.String())
	}
}

func TestRun_BadFlag(t *testing.T) {
	clearEnv(t)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-nope"}, &stdout, &stderr); code != 2 {
		t.Errorf("run() = %d, want 2", code)
	}
}
