package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newParamsCmd() (*cobra.Command, *paramFlags) {
	flags := &paramFlags{}
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	flags.register(cmd)
	return cmd, flags
}

func TestResolveFlagsOnly(t *testing.T) {
	cmd, flags := newParamsCmd()
	if err := cmd.Flags().Set("length", "90"); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Flags().Set("width", "45"); err != nil {
		t.Fatal(err)
	}

	p, err := flags.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if p.ProductLength != 90 || p.ProductWidth != 45 {
		t.Errorf("dimensions = %v x %v, want 90 x 45", p.ProductLength, p.ProductWidth)
	}
	if p.CleatMemberWidth != 3.5 {
		t.Errorf("cleat member width default = %v, want 3.5", p.CleatMemberWidth)
	}
	if len(p.LumberWidths) != 7 {
		t.Errorf("lumber catalog = %d entries, want 7", len(p.LumberWidths))
	}
}

func TestResolveParamsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crate.toml")
	content := `
product_length = 120.0
product_width = 60.0
product_height = 48.0
product_weight = 8000.0
cleat_member_width = 5.5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, flags := newParamsCmd()
	if err := cmd.Flags().Set("params", path); err != nil {
		t.Fatal(err)
	}

	p, err := flags.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if p.ProductLength != 120 || p.ProductWeight != 8000 {
		t.Errorf("file values not applied: %+v", p)
	}
	if p.CleatMemberWidth != 5.5 {
		t.Errorf("cleat member width = %v, want 5.5 from file", p.CleatMemberWidth)
	}
	// Field absent from the file keeps its default.
	if p.SheathingThickness != 0.25 {
		t.Errorf("sheathing = %v, want default 0.25", p.SheathingThickness)
	}
}

func TestResolveFlagOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crate.toml")
	content := `
product_length = 120.0
product_width = 60.0
product_height = 48.0
product_weight = 8000.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd, flags := newParamsCmd()
	for name, value := range map[string]string{
		"params": path,
		"weight": "2500",
	} {
		if err := cmd.Flags().Set(name, value); err != nil {
			t.Fatal(err)
		}
	}

	p, err := flags.resolve(cmd)
	if err != nil {
		t.Fatalf("resolve() error = %v", err)
	}
	if p.ProductWeight != 2500 {
		t.Errorf("weight = %v, want flag override 2500", p.ProductWeight)
	}
	if p.ProductLength != 120 {
		t.Errorf("length = %v, want file value 120", p.ProductLength)
	}
}

func TestResolveMissingFile(t *testing.T) {
	cmd, flags := newParamsCmd()
	if err := cmd.Flags().Set("params", "/nonexistent/crate.toml"); err != nil {
		t.Fatal(err)
	}
	if _, err := flags.resolve(cmd); err == nil {
		t.Error("expected error for missing params file")
	}
}
