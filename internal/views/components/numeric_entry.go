package components

import (
	"growth-rate-calculator/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// NumericEntry is a single-line entry that only admits text its field spec
// accepts. Keystrokes, pastes and deletions that would produce anything
// else are dropped before they reach the entry.
type NumericEntry struct {
	widget.Entry
	spec models.FieldSpec
}

// NewNumericEntry creates an entry bound to a field specification
func NewNumericEntry(spec models.FieldSpec) *NumericEntry {
	entry := &NumericEntry{spec: spec}
	entry.ExtendBaseWidget(entry)
	entry.Validator = spec.Validate
	entry.PlaceHolder = spec.Tooltip
	return entry
}

// Spec returns the field specification of the entry
func (e *NumericEntry) Spec() models.FieldSpec {
	return e.spec
}

// TypedRune filters a typed character through the field spec
func (e *NumericEntry) TypedRune(r rune) {
	if !e.admits([]rune{r}) {
		return
	}
	e.Entry.TypedRune(r)
}

// TypedKey refuses Backspace and Delete when the remaining text would not
// be accepted, such as removing the point of 100.25 in the years field.
func (e *NumericEntry) TypedKey(key *fyne.KeyEvent) {
	switch key.Name {
	case fyne.KeyBackspace, fyne.KeyDelete:
		if !e.admitsDeletion(key.Name == fyne.KeyDelete, false) {
			return
		}
	}
	e.Entry.TypedKey(key)
}

// TypedShortcut filters paste, cut and word deletion through the field spec
func (e *NumericEntry) TypedShortcut(shortcut fyne.Shortcut) {
	switch s := shortcut.(type) {
	case *fyne.ShortcutPaste:
		if s.Clipboard != nil && !e.admits([]rune(s.Clipboard.Content())) {
			return
		}
	case *fyne.ShortcutCut:
		if !e.admits(nil) {
			return
		}
	case *desktop.CustomShortcut:
		if s.KeyName == fyne.KeyBackspace || s.KeyName == fyne.KeyDelete {
			if !e.admitsDeletion(s.KeyName == fyne.KeyDelete, true) {
				return
			}
		}
	}
	e.Entry.TypedShortcut(shortcut)
}

// admits reports whether writing runes at the cursor, over the selection if
// there is one, leaves text the field accepts.
func (e *NumericEntry) admits(runes []rune) bool {
	selected := []rune(e.SelectedText())
	if len(selected) == 0 {
		_, ok := e.spec.Insert(e.Text, e.CursorColumn, runes)
		return ok
	}

	ranges := e.selectionRanges(selected)
	if len(ranges) == 0 {
		return false
	}
	for _, r := range ranges {
		if _, ok := e.spec.Replace(e.Text, r[0], r[1], runes); !ok {
			return false
		}
	}
	return true
}

// selectionRanges returns the rune ranges the selection can occupy. The
// cursor sits at one end of the selection; when the text on both sides of
// the cursor matches, both ranges are returned.
func (e *NumericEntry) selectionRanges(selected []rune) [][2]int {
	text := []rune(e.Text)
	cursor := e.CursorColumn
	n := len(selected)

	var ranges [][2]int
	if cursor-n >= 0 && cursor <= len(text) && string(text[cursor-n:cursor]) == string(selected) {
		ranges = append(ranges, [2]int{cursor - n, cursor})
	}
	if cursor >= 0 && cursor+n <= len(text) && string(text[cursor:cursor+n]) == string(selected) {
		ranges = append(ranges, [2]int{cursor, cursor + n})
	}
	return ranges
}

// admitsDeletion reports whether deleting backward or forward from the
// cursor leaves text the field accepts. A word deletion may stop at any
// point before the start or end of the text, so every stop is checked.
// Text that is already rejected, for example after SetText, may always be
// shortened.
func (e *NumericEntry) admitsDeletion(forward, word bool) bool {
	if !e.spec.Accepts(e.Text) {
		return true
	}
	if !word && e.SelectedText() != "" {
		return e.admits(nil)
	}

	length := len([]rune(e.Text))
	cursor := e.CursorColumn
	if cursor > length {
		cursor = length
	}

	if forward {
		last := cursor + 1
		if word {
			last = length
		}
		for end := cursor + 1; end <= last && end <= length; end++ {
			if _, ok := e.spec.Replace(e.Text, cursor, end, nil); !ok {
				return false
			}
		}
		return true
	}

	first := cursor - 1
	if word {
		first = 0
	}
	for start := first; start < cursor; start++ {
		if start < 0 {
			continue
		}
		if _, ok := e.spec.Replace(e.Text, start, cursor, nil); !ok {
			return false
		}
	}
	return true
}
