package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/loog-project/sidebyside/internal/scroll"
)

// DefaultJournalSize is the number of entries kept before the oldest ones are dropped.
const DefaultJournalSize = 1000

// EntryKind tells which part of the screen recorded a journal entry.
type EntryKind uint8

const (
	// EntryArbiter is a pointer event the arbiter swallowed.
	EntryArbiter EntryKind = iota
	// EntryMirror is a delta forwarded to the sibling list.
	EntryMirror
	// EntryRelease is the end of a drag, with the velocity it was released at.
	EntryRelease
	// EntryScript is gesture script progress.
	EntryScript

	entryKinds
)

func (k EntryKind) String() string {
	switch k {
	case EntryArbiter:
		return "arbiter"
	case EntryMirror:
		return "mirror"
	case EntryRelease:
		return "release"
	case EntryScript:
		return "script"
	default:
		return fmt.Sprintf("EntryKind(%d)", uint8(k))
	}
}

// ListSnapshot is the state of one list right after an entry was recorded.
type ListSnapshot struct {
	Offset int
	Extent int
	State  scroll.State
}

func snapshot(l *scroll.List) ListSnapshot {
	_, offset := l.Offset()
	_, extent := l.Extent()
	return ListSnapshot{Offset: offset, Extent: extent, State: l.ScrollState()}
}

func (s ListSnapshot) String() string {
	return fmt.Sprintf("%s/%s %s",
		humanize.Comma(int64(s.Offset)), humanize.Comma(int64(s.Extent)), s.State)
}

// Entry is a single decision of the arbiter or the mirror.
type Entry struct {
	Seq  int
	At   time.Duration // screen clock
	Kind EntryKind

	// set for EntryArbiter
	Pointer scroll.PointerEvent
	Verdict scroll.Verdict

	// source list of EntryMirror and EntryRelease
	List   string
	DX, DY int
	VX, VY float64

	// set for EntryScript
	Text   string
	Failed bool

	Primary, Secondary ListSnapshot
}

// Summary describes the entry without the list snapshots.
func (e Entry) Summary() string {
	switch e.Kind {
	case EntryArbiter:
		return fmt.Sprintf("%s %s at (%g,%g), %dp",
			e.Verdict, e.Pointer.Phase, e.Pointer.X, e.Pointer.Y, e.Pointer.Pointers)
	case EntryMirror:
		return fmt.Sprintf("%s → sibling dx=%+d dy=%+d", e.List, e.DX, e.DY)
	case EntryRelease:
		if e.VX == 0 && e.VY == 0 {
			return fmt.Sprintf("%s released at rest", e.List)
		}
		return fmt.Sprintf("%s released at %.0f,%.0f cells/s", e.List, e.VX, e.VY)
	default:
		return e.Text
	}
}

// Journal keeps the most recent arbiter and mirror decisions of a Screen.
// Like the screen it belongs to, it is not safe for concurrent use.
type Journal struct {
	size    int
	entries []Entry
	seq     int
	unread  [entryKinds]int
}

func NewJournal(size int) *Journal {
	return &Journal{size: max(size, 1)}
}

func (j *Journal) add(e Entry) {
	if j == nil {
		return
	}
	j.seq++
	e.Seq = j.seq
	if len(j.entries) >= j.size {
		copy(j.entries, j.entries[1:])
		j.entries[len(j.entries)-1] = e
	} else {
		j.entries = append(j.entries, e)
	}
	j.unread[e.Kind]++
}

// Entries returns a copy of the retained entries, oldest first.
func (j *Journal) Entries() []Entry {
	if j == nil {
		return nil
	}
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Seq is the number of entries ever recorded.
func (j *Journal) Seq() int {
	if j == nil {
		return 0
	}
	return j.seq
}

// Unread returns the number of entries per kind since the last MarkRead.
func (j *Journal) Unread() [entryKinds]int {
	if j == nil {
		return [entryKinds]int{}
	}
	return j.unread
}

func (j *Journal) MarkRead() {
	if j != nil {
		j.unread = [entryKinds]int{}
	}
}

// Clear drops all entries, the sequence keeps counting.
func (j *Journal) Clear() {
	if j != nil {
		j.entries = j.entries[:0]
		j.MarkRead()
	}
}

// unreadSummary renders the unread counters for the status bar, or "" if
// there is nothing new.
func (j *Journal) unreadSummary() string {
	unread := j.Unread()
	var parts []string
	for k, n := range unread {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%s %s", humanize.Comma(int64(n)), EntryKind(k)))
		}
	}
	return strings.Join(parts, " ")
}
