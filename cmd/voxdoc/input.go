package main

import (
	"bufio"
	"io"
)

// lineReader owns an input stream and delivers its lines over a channel.
// Playback can watch the channel for a skip keypress without stealing
// the line the next prompt is waiting for.
type lineReader struct {
	ch  chan string
	err error
}

func newLineReader(r io.Reader) *lineReader {
	lr := &lineReader{ch: make(chan string)}
	go func() {
		defer close(lr.ch)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			lr.ch <- scanner.Text()
		}
		lr.err = scanner.Err()
	}()
	return lr
}

// Line blocks until the next input line. ok is false once input is
// exhausted.
func (lr *lineReader) Line() (line string, ok bool) {
	line, ok = <-lr.ch
	return line, ok
}

// Err reports a read failure. Valid once Line has returned ok=false.
func (lr *lineReader) Err() error {
	return lr.err
}
