package game

import (
	"context"
	"io"
)

// scriptedInput replays chunks in order, then returns end
type scriptedInput struct {
	chunks [][]byte
	end    error
	reads  int
}

func newScriptedInput(chunks ...string) *scriptedInput {
	in := &scriptedInput{end: io.EOF}
	for _, c := range chunks {
		in.chunks = append(in.chunks, []byte(c))
	}
	return in
}

func (s *scriptedInput) ReadInput(ctx context.Context, maxBytes int) ([]byte, error) {
	s.reads++
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(s.chunks) == 0 {
		return nil, s.end
	}
	chunk := s.chunks[0]
	s.chunks = s.chunks[1:]
	if len(chunk) > maxBytes {
		chunk = chunk[:maxBytes]
	}
	return chunk, nil
}

// recordingCanvas keeps the last frame and counts calls
type recordingCanvas struct {
	clears  int
	flushes int
	frame   []Pixel
	drawErr error
}

func (c *recordingCanvas) Clear() error {
	c.clears++
	c.frame = c.frame[:0]
	return nil
}

func (c *recordingCanvas) DrawPixel(p Pixel) error {
	if c.drawErr != nil {
		return c.drawErr
	}
	c.frame = append(c.frame, p)
	return nil
}

func (c *recordingCanvas) Flush() error {
	c.flushes++
	return nil
}

type countingSounds struct {
	eats, crashes int
}

func (s *countingSounds) PlayEat()   { s.eats++ }
func (s *countingSounds) PlayCrash() { s.crashes++ }
