package common

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/wagner1975/eezycollectionz/internal/http/handler/api"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer

	table := NewTable(&buf, "ID", "NAME")
	table.Row("1", "First collection")
	table.Row("22", "Second")

	if err := table.Flush(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if e, g := 3, len(lines); e != g {
		t.Fatalf("len(lines): expected %d, got %d", e, g)
	}

	if e, g := "ID  NAME", strings.TrimSpace(lines[0]); e != g {
		t.Errorf("lines[0]: expected '%s', got '%s'", e, g)
	}

	if e, g := "22  Second", strings.TrimSpace(lines[2]); e != g {
		t.Errorf("lines[2]: expected '%s', got '%s'", e, g)
	}
}

func TestRelativeTime(t *testing.T) {
	raw := time.Now().Add(-3 * time.Hour).UTC().Format(api.TimestampFormat)

	if e, g := "3 hours ago", RelativeTime(raw); e != g {
		t.Errorf("RelativeTime(): expected '%s', got '%s'", e, g)
	}

	if e, g := "garbage", RelativeTime("garbage"); e != g {
		t.Errorf("RelativeTime(): expected '%s', got '%s'", e, g)
	}
}

func TestPageFooter(t *testing.T) {
	var buf bytes.Buffer

	PageFooter(&buf, 0, 0, 1234)

	if e, g := "page 1/1, 1,234 record(s)", strings.TrimSpace(buf.String()); e != g {
		t.Errorf("PageFooter(): expected '%s', got '%s'", e, g)
	}
}
