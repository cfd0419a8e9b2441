package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/astra/internal/domain"
)

// chdir changes the working directory for the test and restores it on
// cleanup, like testing.T.Chdir (which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// --- bare invocation (the launch fuel report) ---

func TestRoot_PrintsFuelReportForFixedInput(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "input_01.txt"), []byte("1969\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}

	want := "1969 --(//3)-> 656 --(-2)-> 654 [get_fuel: 966]\n966\n"
	if out != want {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", out, want)
	}
}

func TestRoot_SumsAllModules(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "input_01.txt"), []byte("12\n14\n1969\n100756\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	out, err := execute(t)
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.HasSuffix(out, "\n51316\n") {
		t.Fatalf("expected total 51316, got: %q", out)
	}
}

func TestRoot_MissingInputFails(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t)
	if err == nil {
		t.Fatalf("expected error for missing input_01.txt")
	}
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestRoot_ParseErrorPrintsNoSum(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "input_01.txt"), []byte("12\noops\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(nil)

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected parse error")
	}
	if stdout.String() != "" {
		t.Fatalf("expected no stdout on parse error, got: %q", stdout.String())
	}
}

// --- fuel subcommand ---

func TestFuel_SumOnlyWithExplicitInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "masses.txt")
	if err := os.WriteFile(path, []byte("12\n14\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, t.TempDir())

	out, err := execute(t, "fuel", "--input", path, "--sum-only")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if out != "4\n" {
		t.Fatalf("expected %q, got %q", "4\n", out)
	}
}

// --- workspace integration ---

func TestInitThenFuel_SavesRunArtifact(t *testing.T) {
	ws := t.TempDir()
	chdir(t, ws)

	if _, err := execute(t, "init"); err != nil {
		t.Fatalf("init error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(ws, "astra.yaml")); err != nil {
		t.Fatalf("expected astra.yaml: %v", err)
	}

	// The scaffold seeds inputs/input_01.txt, so fuel runs without flags.
	out, err := execute(t, "fuel")
	if err != nil {
		t.Fatalf("fuel error: %v", err)
	}
	if !strings.HasSuffix(out, "\n51316\n") {
		t.Fatalf("expected seeded total 51316, got: %q", out)
	}

	entries, err := os.ReadDir(filepath.Join(ws, "runs"))
	if err != nil {
		t.Fatalf("read runs dir: %v", err)
	}
	found := false
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), "_day-01.json") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a day-01 run artifact, got: %v", entries)
	}
}

func TestFuel_NoSaveSkipsArtifact(t *testing.T) {
	ws := t.TempDir()
	chdir(t, ws)

	if _, err := execute(t, "init"); err != nil {
		t.Fatalf("init error: %v", err)
	}
	if _, err := execute(t, "fuel", "--no-save"); err != nil {
		t.Fatalf("fuel error: %v", err)
	}

	entries, _ := os.ReadDir(filepath.Join(ws, "runs"))
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".json") {
			t.Fatalf("expected no artifacts, found %s", e.Name())
		}
	}
}

// --- other subcommands ---

func TestDays_ListsRegistry(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "days")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	for _, want := range []string{"Day 01", "Day 02", "Day 08", "input_06.txt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in listing:\n%s", want, out)
		}
	}
}

func TestPassword_ExplicitRange(t *testing.T) {
	chdir(t, t.TempDir())

	out, err := execute(t, "password", "--min", "112230", "--max", "112240")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out, "Number of possible passwords: 7") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestGravity_ExplicitNounVerb(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "program.txt")
	if err := os.WriteFile(path, []byte("1,0,0,3,2,3,11,0,99,30,40,50\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	out, err := execute(t, "gravity", "--input", path, "--noun", "9", "--verb", "10")
	if err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out, "Left in position 0: 3500") {
		t.Fatalf("unexpected output: %q", out)
	}
}

// --- helpers ---

func TestResolveInputPath(t *testing.T) {
	ws := &workspaceCtx{root: "/ws", cfg: domain.DefaultConfig()}

	if got := resolveInputPath(nil, "input_01.txt", ""); got != "input_01.txt" {
		t.Errorf("no workspace: expected input_01.txt, got %s", got)
	}
	if got := resolveInputPath(ws, "input_01.txt", "/explicit/file.txt"); got != "/explicit/file.txt" {
		t.Errorf("explicit flag: expected /explicit/file.txt, got %s", got)
	}
	// Workspace input missing on disk: falls back to the bare name.
	if got := resolveInputPath(ws, "input_01.txt", ""); got != "input_01.txt" {
		t.Errorf("missing workspace input: expected input_01.txt, got %s", got)
	}
}

func TestReportLines(t *testing.T) {
	if got := reportLines(""); len(got) != 0 {
		t.Errorf("empty report: expected no lines, got %v", got)
	}
	got := reportLines("a\nb\n")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
}
