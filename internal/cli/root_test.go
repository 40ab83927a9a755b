package cli

import (
	"testing"
)

func TestRootCommandTree(t *testing.T) {
	root := newRootCmd()
	if root.Use != "nightingale" {
		t.Errorf("Use = %q", root.Use)
	}

	want := map[string]bool{
		"view":       false,
		"render":     false,
		"serve":      false,
		"cache":      false,
		"completion": false,
	}
	for _, c := range root.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRootFlags(t *testing.T) {
	root := newRootCmd()
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing --verbose flag")
	}
	if root.PersistentFlags().Lookup("config") == nil {
		t.Error("missing --config flag")
	}
}

func TestCacheSubcommands(t *testing.T) {
	cmd := newCacheCmd()
	names := make(map[string]bool)
	for _, c := range cmd.Commands() {
		names[c.Name()] = true
	}
	if !names["clear"] || !names["path"] {
		t.Errorf("cache subcommands = %v, want clear and path", names)
	}
}
