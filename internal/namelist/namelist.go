// Package namelist reads and writes Fortran 90 namelist documents, the
// configuration format the FESOM partitioner consumes. The model keeps
// section and field order, interprets scalar values, and passes anything
// else through verbatim.
package namelist

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSection is returned when a setter references a section the
	// template does not carry. Sections are never auto-created: a missing
	// one is almost always a typo or a truncated template.
	ErrNoSection = errors.New("no such section")

	// ErrBadKeyPath is returned for key paths not of the form
	// "section.field".
	ErrBadKeyPath = errors.New("bad key path")
)

// Entry is one key = value field inside a section.
type Entry struct {
	Key   string
	Value Value
}

// Section is one &name ... / group. Field order is preserved.
type Section struct {
	Name    string
	Entries []Entry
}

// Get looks a field up by key, case-insensitively (Fortran keys are).
func (s *Section) Get(key string) (Value, bool) {
	for _, e := range s.Entries {
		if strings.EqualFold(e.Key, key) {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Set replaces the value of an existing field (keeping the template's key
// casing) or appends a new field to the section.
func (s *Section) Set(key string, v Value) {
	for i, e := range s.Entries {
		if strings.EqualFold(e.Key, key) {
			s.Entries[i].Value = v
			return
		}
	}
	s.Entries = append(s.Entries, Entry{Key: key, Value: v})
}

// Document is an ordered collection of namelist sections.
type Document struct {
	Sections []*Section
}

// Section finds a group by name, case-insensitively.
func (d *Document) Section(name string) (*Section, bool) {
	for _, s := range d.Sections {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return nil, false
}

// Get reads one field; ok is false when either section or field is absent.
func (d *Document) Get(section, key string) (Value, bool) {
	s, ok := d.Section(section)
	if !ok {
		return Value{}, false
	}
	return s.Get(key)
}

// Set writes one field. The section must already exist in the document;
// the field is created when absent.
func (d *Document) Set(section, key string, v Value) error {
	s, ok := d.Section(section)
	if !ok {
		return fmt.Errorf("section %q: %w", section, ErrNoSection)
	}
	s.Set(key, v)
	return nil
}

// SetPath is a "section.field" convenience over Set, handy for table-driven
// callers.
func (d *Document) SetPath(path string, v Value) error {
	section, key, ok := strings.Cut(path, ".")
	if !ok || section == "" || key == "" {
		return fmt.Errorf("%q: %w", path, ErrBadKeyPath)
	}
	return d.Set(section, key, v)
}
