package main

import (
	"fmt"
	"strings"

	"github.com/pwielgus/voxdoc"
)

// Run executes the chat command, an interactive question answering loop.
func (c *ChatCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Ask questions about your documents. Commands: /notes, /qa, /save [title], /quit")

	mode := voxdoc.ModeQA
	var lastNotes string

	lines := newLineReader(deps.Stdin)

	for {
		fmt.Fprintf(deps.Stdout, "[%s] > ", mode)
		line, ok := lines.Line()
		if !ok {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, err := c.handleCommand(deps, line, &mode, &lastNotes)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
			}
			if quit {
				break
			}
			continue
		}

		answer, err := deps.Answerer.Answer(deps.Ctx, line, mode)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
			continue
		}

		fmt.Fprintln(deps.Stdout, answer.Text)
		if len(answer.Sources) > 0 {
			fmt.Fprintf(deps.Stdout, "(sources: %s)\n", strings.Join(answer.Sources, ", "))
		}

		if mode == voxdoc.ModeNotes && answer.Found {
			lastNotes = answer.Text
			fmt.Fprintln(deps.Stdout, "Use /save [title] to keep these notes.")
		}

		if c.Speak && answer.Found {
			if err := speak(deps, lines, answer.Text); err != nil {
				fmt.Fprintf(deps.Stderr, "error speaking answer: %s\n", voxdoc.ErrorMessage(err))
			}
		}
	}

	return lines.Err()
}

// handleCommand processes a slash command. It returns true when the
// session should end.
func (c *ChatCmd) handleCommand(deps *Dependencies, line string, mode *voxdoc.Mode, lastNotes *string) (bool, error) {
	cmd, rest, _ := strings.Cut(line, " ")

	switch cmd {
	case "/quit", "/exit":
		return true, nil
	case "/notes":
		*mode = voxdoc.ModeNotes
		fmt.Fprintln(deps.Stdout, "Notes mode: responses become structured markdown notes.")
	case "/qa":
		*mode = voxdoc.ModeQA
		fmt.Fprintln(deps.Stdout, "QA mode: responses answer questions directly.")
	case "/save":
		if *lastNotes == "" {
			return false, voxdoc.Errorf(voxdoc.EINVALID, "nothing to save; generate notes first with /notes")
		}
		note, err := deps.Notes.SaveNote(deps.Ctx, *lastNotes, strings.TrimSpace(rest))
		if err != nil {
			return false, err
		}
		fmt.Fprintf(deps.Stdout, "Saved note %q to %s\n", note.Name, note.Path)
	default:
		return false, voxdoc.Errorf(voxdoc.EINVALID, "unknown command %q", cmd)
	}

	return false, nil
}
