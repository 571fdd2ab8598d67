// Package pofile reads gettext PO catalogs, the on-disk term origin.
// Only the read side of the format is implemented; the report never
// writes catalogs back.
package pofile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/POBrien333/csl-translation-status/term"
)

// Entry is a single translatable message in a PO catalog.
type Entry struct {
	// MsgCtxt is the message context (msgctxt).
	MsgCtxt string
	// MsgID is the untranslated string.
	MsgID string
	// MsgIDPlural is the untranslated plural string.
	MsgIDPlural string
	// MsgStr is the translated string (singular or the only form).
	MsgStr string
	// MsgStrPlural maps plural form index to translated string.
	MsgStrPlural map[int]string
	// Obsolete marks entries prefixed with "#~".
	Obsolete bool
}

// IsTranslated reports whether the entry has a non-empty translation.
// An entry with a plural msgid needs every plural form filled in.
func (e *Entry) IsTranslated() bool {
	if e.MsgID == "" {
		return false // header entry
	}
	if e.MsgIDPlural != "" {
		for _, v := range e.MsgStrPlural {
			if v == "" {
				return false
			}
		}
		return len(e.MsgStrPlural) > 0
	}
	return e.MsgStr != ""
}

// File is a parsed PO catalog.
type File struct {
	// Header is the metadata entry (msgid "").
	Header *Entry
	// Entries are the translatable message entries in file order.
	Entries []*Entry
}

// HeaderField returns a header field value by name, e.g. "Language".
func (f *File) HeaderField(name string) string {
	if f.Header == nil {
		return ""
	}
	for _, line := range strings.Split(f.Header.MsgStr, "\n") {
		if idx := strings.Index(line, ":"); idx > 0 {
			key := strings.TrimSpace(line[:idx])
			if strings.EqualFold(key, name) {
				return strings.TrimSpace(line[idx+1:])
			}
		}
	}
	return ""
}

// entryKey builds the term key for an entry. PO catalogs have no
// grammatical forms, so Form is always empty; a msgctxt is folded into
// the name the way gettext disambiguates duplicate msgids.
func entryKey(e *Entry) term.Key {
	name := e.MsgID
	if e.MsgCtxt != "" {
		name = e.MsgCtxt + "\x04" + e.MsgID
	}
	return term.Key{Name: name}
}

func entryValue(e *Entry) term.Value {
	if e.MsgIDPlural != "" {
		single, multiple := e.MsgStr, e.MsgIDPlural
		if s, ok := e.MsgStrPlural[0]; ok {
			single = s
		}
		if m, ok := e.MsgStrPlural[1]; ok {
			multiple = m
		}
		return term.Pair(single, multiple)
	}
	return term.Plain(e.MsgStr)
}

// Reference returns the English defaults of the catalog: every msgid
// mapped to itself (and msgid_plural for plural entries), in file order.
func (f *File) Reference() *term.Set {
	set := term.NewSet()
	for _, e := range f.Entries {
		if e.MsgID == "" || e.Obsolete {
			continue
		}
		if e.MsgIDPlural != "" {
			set.Put(entryKey(e), term.Pair(e.MsgID, e.MsgIDPlural))
		} else {
			set.Put(entryKey(e), term.Plain(e.MsgID))
		}
	}
	return set
}

// Translated returns the catalog's translations as a term set. Entries
// with an empty msgstr (or an incomplete plural set) are omitted, so a
// missing key downstream means untranslated.
func (f *File) Translated() *term.Set {
	set := term.NewSet()
	for _, e := range f.Entries {
		if e.MsgID == "" || e.Obsolete || !e.IsTranslated() {
			continue
		}
		set.Put(entryKey(e), entryValue(e))
	}
	return set
}

// Parse reads a PO catalog from a reader.
func Parse(r io.Reader) (*File, error) {
	f := &File{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	var current *Entry
	var lastField string // tracks the last msgid/msgstr/etc. field for multiline strings
	lineNum := 0

	flush := func() {
		if current == nil {
			return
		}
		if current.MsgID == "" && !current.Obsolete {
			f.Header = current
		} else {
			f.Entries = append(f.Entries, current)
		}
		current = nil
		lastField = ""
	}

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		// Empty line separates entries
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current == nil {
			current = &Entry{
				MsgStrPlural: make(map[int]string),
			}
		}

		// Obsolete entries keep their fields behind the "#~ " prefix
		if strings.HasPrefix(line, "#~ ") {
			current.Obsolete = true
			line = line[3:]
		}

		// Remaining comment lines (translator comments, references, flags)
		// carry nothing the report needs.
		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "msgctxt ") {
			current.MsgCtxt = unquote(strings.TrimPrefix(line, "msgctxt "))
			lastField = "msgctxt"
			continue
		}

		if strings.HasPrefix(line, "msgid_plural ") {
			current.MsgIDPlural = unquote(strings.TrimPrefix(line, "msgid_plural "))
			lastField = "msgid_plural"
			continue
		}

		if strings.HasPrefix(line, "msgid ") {
			current.MsgID = unquote(strings.TrimPrefix(line, "msgid "))
			lastField = "msgid"
			continue
		}

		if strings.HasPrefix(line, "msgstr[") {
			var idx int
			n, err := fmt.Sscanf(line, "msgstr[%d]", &idx)
			if err != nil || n != 1 {
				return nil, fmt.Errorf("line %d: invalid msgstr index: %s", lineNum, line)
			}
			bracketEnd := strings.Index(line, "] ")
			if bracketEnd < 0 {
				return nil, fmt.Errorf("line %d: invalid msgstr format: %s", lineNum, line)
			}
			current.MsgStrPlural[idx] = unquote(line[bracketEnd+2:])
			lastField = fmt.Sprintf("msgstr[%d]", idx)
			continue
		}

		if strings.HasPrefix(line, "msgstr ") {
			current.MsgStr = unquote(strings.TrimPrefix(line, "msgstr "))
			lastField = "msgstr"
			continue
		}

		// Continuation line (starts with ")
		if strings.HasPrefix(line, "\"") {
			val := unquote(line)
			switch {
			case lastField == "msgctxt":
				current.MsgCtxt += val
			case lastField == "msgid":
				current.MsgID += val
			case lastField == "msgid_plural":
				current.MsgIDPlural += val
			case lastField == "msgstr":
				current.MsgStr += val
			case strings.HasPrefix(lastField, "msgstr["):
				var idx int
				fmt.Sscanf(lastField, "msgstr[%d]", &idx)
				current.MsgStrPlural[idx] += val
			}
			continue
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading PO file: %w", err)
	}

	return f, nil
}

// ParseFile reads a PO catalog from disk.
func ParseFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// unquote removes PO-style quoting from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return s
	}
	s = s[1 : len(s)-1]

	var result strings.Builder
	result.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				result.WriteByte('\n')
				i++
			case 't':
				result.WriteByte('\t')
				i++
			case '\\':
				result.WriteByte('\\')
				i++
			case '"':
				result.WriteByte('"')
				i++
			default:
				result.WriteByte(s[i])
			}
		} else {
			result.WriteByte(s[i])
		}
	}
	return result.String()
}
