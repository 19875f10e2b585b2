package main

import (
	"errors"
	"io"
	"time"

	"github.com/cespare/advent/blink"
	"github.com/dustin/go-humanize"
)

func init() {
	register("2024-11", plutonianPebbles)
}

func plutonianPebbles(s *session) error {
	blinks, err := s.confInts("blinks", []int{25, 75})
	if err != nil {
		return err
	}
	workers, err := s.confInt("workers", 1)
	if err != nil {
		return err
	}
	r, err := s.input()
	if err != nil {
		return err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	stones, err := blink.ParseStones(string(b))
	if err != nil {
		return err
	}
	s.dump(stones)

	var c blink.Counter
	for _, n := range blinks {
		if n < 0 {
			return errors.New("blink count must not be negative")
		}
		start := time.Now()
		var total uint64
		if workers > 1 {
			total, err = blink.CountParallel(stones, n, workers)
		} else {
			total, err = c.CountAll(stones, n)
		}
		if err != nil {
			return err
		}
		s.logf("%d blinks: %s stones in %s", n, humanize.Comma(int64(total)), time.Since(start).Round(time.Microsecond))
		if workers <= 1 {
			s.logf("%s cached counts", humanize.Comma(int64(c.Len())))
		}
		s.answer(total)
	}
	return nil
}
