package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/loog-project/sidebyside/internal/gesture"
	"github.com/loog-project/sidebyside/internal/ui"
)

func TestRenderRecords(t *testing.T) {
	out := renderRecords([]gesture.Record{
		{Step: 0, Kind: "touch", Primary: 0, Secondary: 0},
		{Step: 1, Kind: "touch", Consumed: true, Primary: 1234, Secondary: 1234},
	})
	for _, want := range []string{"STEP", "SECONDARY", "touch", "1,234", "true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
}

func TestRenderJournal(t *testing.T) {
	journal := ui.NewJournal(ui.DefaultJournalSize)
	lv, err := ui.NewListView(ui.DefaultConfig(), journal)
	if err != nil {
		t.Fatal(err)
	}
	lv.SetSize(81, 21)

	script, err := gesture.Decode(strings.NewReader(`
steps:
  - wheel: {x: 10, y: 10, lines: 3}
  - touch: {pointers: 2, x: 60, y: 5, phase: down}
`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := gesture.Run(lv.Screen(), script, 16*time.Millisecond); err != nil {
		t.Fatal(err)
	}

	out := renderJournal(journal.Entries())
	for _, want := range []string{"DECISION", "mirror", "primary → sibling dx=+0 dy=+3", "multi-touch down at (60,5), 2p"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in\n%s", want, out)
		}
	}
}

func TestScriptCompletion(t *testing.T) {
	exts, _ := scriptCompletion(nil, nil, "")
	if len(exts) != 2 {
		t.Fatalf("expected yaml extensions, got %v", exts)
	}
	if more, _ := scriptCompletion(nil, []string{"a.yaml"}, ""); more != nil {
		t.Fatal("only one script is accepted")
	}
}
