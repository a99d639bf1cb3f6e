package cmd

import (
	"flag"
	"io"
	"strings"
	"testing"

	"github.com/etnz/tvm/docs"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestDocumentedCommands checks that every 'ia' command line quoted in a bash
// block of the documentation names a subcommand and parses with its flags.
func TestDocumentedCommands(t *testing.T) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() unexpected error: %v", err)
	}
	commands := make(map[string]subcommands.Command)
	for _, c := range Commands {
		commands[c.Name()] = c
	}

	var checked int
	for _, topic := range append(topics, "readme") {
		content, err := docs.GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q) unexpected error: %v", topic, err)
		}
		for _, line := range bashLines(t, []byte(content)) {
			args := splitArgs(line)
			if len(args) < 2 || args[0] != "ia" {
				continue
			}
			checked++
			c, ok := commands[args[1]]
			if !ok {
				t.Errorf("%s: %q uses unknown subcommand %q", topic, line, args[1])
				continue
			}
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			f.SetOutput(io.Discard)
			c.SetFlags(f)
			if err := f.Parse(args[2:]); err != nil {
				t.Errorf("%s: %q has invalid flags: %v", topic, line, err)
			}
		}
	}
	if checked == 0 {
		t.Error("no documented command found")
	}
}

// bashLines returns the lines of the bash fenced code blocks in source.
func bashLines(t *testing.T, source []byte) []string {
	t.Helper()
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var lines []string
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !entering || !ok {
			return ast.WalkContinue, nil
		}
		if string(fcb.Language(source)) != "bash" {
			return ast.WalkContinue, nil
		}
		for i := 0; i < fcb.Lines().Len(); i++ {
			line := fcb.Lines().At(i)
			lines = append(lines, strings.TrimSpace(string(line.Value(source))))
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("failed to walk markdown: %v", err)
	}
	return lines
}

// splitArgs splits a command line on spaces, honoring single quotes.
func splitArgs(line string) []string {
	var (
		args   []string
		cur    strings.Builder
		quoted bool
		inArg  bool
	)
	for _, r := range line {
		switch {
		case r == '\'':
			quoted = !quoted
			inArg = true
		case r == ' ' && !quoted:
			if inArg {
				args = append(args, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, cur.String())
	}
	return args
}

func TestSplitArgs(t *testing.T) {
	got := splitArgs(`ia irr -f export.json -path '$.flows[*]'  10800`)
	want := []string{"ia", "irr", "-f", "export.json", "-path", "$.flows[*]", "10800"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitArgs() = %q, want %q", got, want)
	}
}
