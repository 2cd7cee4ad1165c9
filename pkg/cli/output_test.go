package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type stringerValue struct{}

func (stringerValue) String() string { return "rendered" }

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText)

	if err := f.FormatTo(&buf, stringerValue{}); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}
	if got := buf.String(); got != "rendered\n" {
		t.Errorf("FormatTo() = %q, want %q", got, "rendered\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	data := map[string]any{"target": "html", "valid": true}
	if err := f.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["target"] != "html" {
		t.Errorf("target = %v, want html", decoded["target"])
	}
}

func TestNewFormatter_DefaultsToText(t *testing.T) {
	if _, ok := NewFormatter("bogus").(*TextFormatter); !ok {
		t.Error("NewFormatter(unknown) did not fall back to text")
	}
}

func TestSimpleProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressReporter(&buf, "linting")

	p.Start(4)
	p.Update(2)
	p.Finish()

	got := buf.String()
	if !strings.Contains(got, "linting") {
		t.Errorf("output = %q, want the label", got)
	}
	if !strings.Contains(got, "(4/4)") {
		t.Errorf("output = %q, want completion at 4/4", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Errorf("output = %q, want a terminating newline", got)
	}
}
