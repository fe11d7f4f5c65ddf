package main

import (
	"fmt"
	"strings"

	"github.com/pwielgus/voxdoc"
)

// Run executes the listen command, a push-to-talk voice loop: Enter
// starts recording, Enter again stops and transcribes, the transcription
// is answered like a typed question.
func (c *ListenCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stdout, "Voice mode. Press Enter to record, Enter again to stop, type 'q' to quit.")

	lines := newLineReader(deps.Stdin)
	sampleRate := deps.Config.Speech.SampleRate

	for {
		fmt.Fprint(deps.Stdout, "Press Enter to record: ")
		line, ok := lines.Line()
		if !ok {
			break
		}
		if isQuit(line) {
			break
		}

		if err := deps.Recorder.Start(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
			return err
		}

		fmt.Fprint(deps.Stdout, "Recording... press Enter to stop: ")
		if _, ok := lines.Line(); !ok {
			_, _ = deps.Recorder.Stop()
			break
		}

		samples, err := deps.Recorder.Stop()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
			continue
		}
		if len(samples) == 0 {
			fmt.Fprintln(deps.Stdout, "No audio captured.")
			continue
		}

		question, err := deps.Transcriber.Transcribe(deps.Ctx, samples, sampleRate)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
			continue
		}
		if question == "" {
			fmt.Fprintln(deps.Stdout, "No speech detected.")
			continue
		}

		fmt.Fprintf(deps.Stdout, "You asked: %s\n", question)

		answer, err := deps.Answerer.Answer(deps.Ctx, question, voxdoc.ModeQA)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", voxdoc.ErrorMessage(err))
			continue
		}

		fmt.Fprintln(deps.Stdout, answer.Text)
		if len(answer.Sources) > 0 {
			fmt.Fprintf(deps.Stdout, "(sources: %s)\n", strings.Join(answer.Sources, ", "))
		}

		if c.Speak && answer.Found {
			if err := speak(deps, lines, answer.Text); err != nil {
				fmt.Fprintf(deps.Stderr, "error speaking answer: %s\n", voxdoc.ErrorMessage(err))
			}
		}
	}

	return lines.Err()
}

func isQuit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "q", "quit", "exit":
		return true
	}
	return false
}
