package usecase

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/astra/internal/domain"
	"github.com/aalvaropc/astra/internal/infra/inputfs"
)

func TestRegistry_DaysAreOrderedAndUnique(t *testing.T) {
	reg := Registry()
	if len(reg) == 0 {
		t.Fatalf("registry is empty")
	}

	prev := 0
	for _, p := range reg {
		if p.Ref.Day <= prev {
			t.Fatalf("registry not strictly ordered at day %d", p.Ref.Day)
		}
		if p.Ref.Title == "" || p.Run == nil {
			t.Fatalf("day %d: incomplete entry", p.Ref.Day)
		}
		prev = p.Ref.Day
	}
}

func TestLookup(t *testing.T) {
	p, err := Lookup(1)
	if err != nil {
		t.Fatalf("Lookup(1) error: %v", err)
	}
	if p.Ref.InputFile != "input_01.txt" {
		t.Fatalf("expected input_01.txt, got %s", p.Ref.InputFile)
	}

	if _, err := Lookup(3); !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound for unimplemented day, got: %v", err)
	}
}

func TestRegistry_Day1RunMatchesFuelReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input_01.txt")
	if err := os.WriteFile(path, []byte("1969\n"), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	p, err := Lookup(1)
	if err != nil {
		t.Fatalf("Lookup error: %v", err)
	}

	var out strings.Builder
	if err := p.Run(context.Background(), inputfs.NewLoader(), domain.DefaultConfig(), path, &out); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "\n966\n") {
		t.Fatalf("expected sum 966, got: %q", out.String())
	}
}
