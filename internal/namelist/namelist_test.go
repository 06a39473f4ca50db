package namelist

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSetReplacesKeepingTemplateCasing(t *testing.T) {
	doc, err := Parse(strings.NewReader("&paths\nMeshPath='/old/'\n/\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := doc.Set("paths", "meshpath", String("/new/")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s, _ := doc.Section("paths")
	if len(s.Entries) != 1 {
		t.Fatalf("expected replacement, not append")
	}
	if s.Entries[0].Key != "MeshPath" {
		t.Fatalf("expected original casing kept, got %q", s.Entries[0].Key)
	}
	if v, _ := doc.Get("paths", "MeshPath"); v.Str != "/new/" {
		t.Fatalf("expected updated value, got %+v", v)
	}
}

func TestSetAppendsMissingField(t *testing.T) {
	doc, _ := Parse(strings.NewReader("&machine\nn_part=12\n/\n"))
	if err := doc.Set("machine", "n_levels", Int(1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, ok := doc.Get("machine", "n_levels"); !ok || v.Int != 1 {
		t.Fatalf("expected appended field, got %+v ok=%v", v, ok)
	}
}

func TestSetMissingSectionFails(t *testing.T) {
	doc, _ := Parse(strings.NewReader("&machine\nn_part=12\n/\n"))
	err := doc.Set("paths", "MeshPath", String("/x/"))
	if !errors.Is(err, ErrNoSection) {
		t.Fatalf("expected ErrNoSection, got %v", err)
	}
}

func TestSetPath(t *testing.T) {
	doc, _ := Parse(strings.NewReader("&machine\nn_part=12\n/\n"))
	if err := doc.SetPath("machine.n_part", Int(288)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v, _ := doc.Get("machine", "n_part"); v.Int != 288 {
		t.Fatalf("expected 288, got %+v", v)
	}

	for _, bad := range []string{"machine", ".n_part", "machine.", ""} {
		if err := doc.SetPath(bad, Int(1)); !errors.Is(err, ErrBadKeyPath) {
			t.Fatalf("expected ErrBadKeyPath for %q, got %v", bad, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := doc.Set("paths", "MeshPath", String("/data/mesh1")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := doc.Set("machine", "n_part", Int(288)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := doc.Set("run_config", "use_cavity", Bool(true)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := doc.Encode(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	back, err := Parse(&buf)
	if err != nil {
		t.Fatalf("re-parse failed: %v", err)
	}

	if v, _ := back.Get("paths", "MeshPath"); v.Str != "/data/mesh1" {
		t.Fatalf("meshpath did not round-trip: %+v", v)
	}
	if v, _ := back.Get("machine", "n_part"); v.Int != 288 {
		t.Fatalf("n_part did not round-trip: %+v", v)
	}
	if v, _ := back.Get("run_config", "use_cavity"); !v.Bool {
		t.Fatalf("use_cavity did not round-trip: %+v", v)
	}
	// Untouched content survives too.
	if v, _ := back.Get("run_config", "layers"); v.Kind != KindRaw || v.Str != "1, 2, 3" {
		t.Fatalf("raw array did not round-trip: %+v", v)
	}
	if v, _ := back.Get("run_config", "timestep"); v.Float != 0.5 {
		t.Fatalf("timestep did not round-trip: %+v", v)
	}
}

func TestValueText(t *testing.T) {
	cases := []struct {
		in   Value
		want string
	}{
		{String("/data/mesh1"), "'/data/mesh1'"},
		{String("it's"), "'it''s'"},
		{Int(288), "288"},
		{Float(0.5), "0.5"},
		{Bool(true), ".true."},
		{Bool(false), ".false."},
		{Raw("1, 2, 3"), "1, 2, 3"},
	}
	for _, c := range cases {
		if got := c.in.Text(); got != c.want {
			t.Fatalf("Text() = %q, want %q", got, c.want)
		}
	}
}
