package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/pwielgus/voxdoc"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	mode := voxdoc.ModeQA
	if c.Notes {
		mode = voxdoc.ModeNotes
	}

	answer, err := deps.Answerer.Answer(deps.Ctx, c.Question, mode)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, answer.Text)
	if len(answer.Sources) > 0 {
		fmt.Fprintf(deps.Stdout, "\nSources: %s\n", strings.Join(answer.Sources, ", "))
	}

	if c.Save && mode == voxdoc.ModeNotes && answer.Found {
		note, err := deps.Notes.SaveNote(deps.Ctx, answer.Text, c.Title)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error saving note: %s\n", voxdoc.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved note %q to %s\n", note.Name, note.Path)
	}

	if c.Speak && answer.Found {
		var lines *lineReader
		if deps.Stdin != nil {
			lines = newLineReader(deps.Stdin)
		}
		if err := speak(deps, lines, answer.Text); err != nil {
			fmt.Fprintf(deps.Stderr, "error speaking answer: %s\n", voxdoc.ErrorMessage(err))
			return err
		}
	}

	return nil
}

// speak synthesizes text and plays it on the default output device.
// Pressing Enter during playback skips the rest of the answer.
func speak(deps *Dependencies, lines *lineReader, text string) error {
	speech, err := deps.Synthesizer.Synthesize(deps.Ctx, text)
	if err != nil {
		return err
	}

	if lines == nil {
		return deps.Player.Play(deps.Ctx, speech)
	}

	ctx, cancel := context.WithCancel(deps.Ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- deps.Player.Play(ctx, speech) }()

	fmt.Fprintln(deps.Stdout, "(press Enter to skip)")
	for {
		select {
		case err := <-done:
			return err
		case _, ok := <-lines.ch:
			cancel()
			if !ok {
				return <-done
			}
		}
	}
}
