package wheel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	NewWheel().SetAdapter(NewNumericAdapter(0, 9))
	if got := buf.String(); !strings.Contains(got, `msg="wheel adapter set" items=10`) {
		t.Errorf("log = %q, want the adapter record", got)
	}

	SetLogger(nil)
	buf.Reset()
	NewWheel().SetAdapter(NewNumericAdapter(0, 9))
	if buf.Len() != 0 {
		t.Errorf("log after SetLogger(nil) = %q, want nothing", buf.String())
	}
}
