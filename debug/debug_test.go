package debug

import (
	"bytes"
	"testing"
)

type node string

func (n node) DebugString() string { return "<" + string(n) + ">" }

func TestLogf(t *testing.T) {
	buf := &bytes.Buffer{}
	prev := SetOutput(buf)
	defer SetOutput(prev)

	Logf("%s %s %d\n", node("x"), "y", 3)
	if got := buf.String(); got != "<x> y 3\n" {
		t.Errorf("got %q", got)
	}
}

func TestEnable(t *testing.T) {
	old := Parse()
	defer Enable("PARSE", old)
	Enable("PARSE", true)
	if !Parse() {
		t.Errorf("PARSE not enabled")
	}
}
