package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestCLI() *CLI {
	return New(io.Discard, LogInfo)
}

func TestRootCommand(t *testing.T) {
	root := newTestCLI().RootCommand()

	if root.Use != "popper" {
		t.Errorf("Use = %q, want %q", root.Use, "popper")
	}

	want := map[string]bool{"resolve": false, "playground": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := newTestCLI()
	c.SetLogLevel(LogDebug)
	if got := c.Logger.GetLevel(); got != log.DebugLevel {
		t.Errorf("level = %v, want %v", got, log.DebugLevel)
	}
}

func TestResolveCommand(t *testing.T) {
	root := newTestCLI().RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"resolve",
		"--ref-left", "450", "--ref-top", "450", "--ref-width", "100", "--ref-height", "100",
		"--popper-width", "50", "--popper-height", "50",
		"--viewport-width", "1000", "--viewport-height", "1000",
		"--placement", "bottom-start",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "bottom-start") {
		t.Errorf("output missing placement token:\n%s", got)
	}
	if !strings.Contains(got, "x=450") || !strings.Contains(got, "y=550") {
		t.Errorf("output missing coordinates:\n%s", got)
	}
}

func TestResolveCommandAllPlacements(t *testing.T) {
	root := newTestCLI().RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"resolve"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := strings.Count(out.String(), "\n"); got != 12 {
		t.Errorf("output lines = %d, want 12:\n%s", got, out.String())
	}
}

func TestResolveCommandRejectsBadPlacement(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"resolve", "--placement", "top-center"})

	if err := root.Execute(); err == nil {
		t.Error("Execute() should fail on an invalid placement token")
	}
}

func TestResolveCommandScenarioFile(t *testing.T) {
	path := writeScenario(t, `
placements = ["top"]
offset = 10

[viewport]
width = 1000
height = 1000

[reference]
left = 450
top = 450
width = 100
height = 100

[popper]
width = 50
height = 50
`)

	root := newTestCLI().RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"resolve", "--scenario", path})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := out.String(); !strings.Contains(got, "x=475") || !strings.Contains(got, "y=390") {
		t.Errorf("output = %q, want x=475 y=390", got)
	}
}
