package schema

import (
	"strings"
	"testing"

	"github.com/brindle/wingnrp/internal/protocol"
	"github.com/brindle/wingnrp/internal/testutil/testlog"
)

func TestLoadParsesNamesAndSkipsCommentsAndBlanks(t *testing.T) {
	testlog.Start(t)
	src := strings.Join([]string{
		"# generated table, do not edit",
		"",
		"ch.1.fader.level,100",
		"ch.1.mute,101",
		"",
	}, "\n")

	table, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if table.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", table.Len())
	}

	id, ok := table.NameToID("ch.1.fader.level")
	if !ok || id != protocol.NodeID(100) {
		t.Fatalf("NameToID(fader.level) = %d, %v, want 100, true", id, ok)
	}

	name, ok := table.IDToName(protocol.NodeID(101))
	if !ok || name != "ch.1.mute" {
		t.Fatalf("IDToName(101) = %q, %v, want ch.1.mute, true", name, ok)
	}

	if _, ok := table.NameToID("does.not.exist"); ok {
		t.Error("NameToID for an unknown path should report ok=false")
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	testlog.Start(t)
	_, err := Load(strings.NewReader("ch.1.fader.level\n"))
	if err == nil {
		t.Fatal("Load of a line with no comma should fail")
	}
}

func TestLoadRejectsNonNumericID(t *testing.T) {
	testlog.Start(t)
	_, err := Load(strings.NewReader("ch.1.fader.level,not-a-number\n"))
	if err == nil {
		t.Fatal("Load of a non-numeric id should fail")
	}
}
