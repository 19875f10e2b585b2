package main

import (
	"bytes"
	"errors"
	"io"

	"github.com/cespare/advent/interval"
	"github.com/dustin/go-humanize"
)

func init() {
	register("2023-05", seedAlmanac)
}

var errNoSeeds = errors.New("almanac has no seeds")

func seedAlmanac(s *session) error {
	r, err := s.input()
	if err != nil {
		return err
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	target := s.confString("target", "location")
	for _, mode := range []interval.SeedMode{interval.SeedSingletons, interval.SeedPairs} {
		a, err := interval.ParseAlmanac(bytes.NewReader(b), mode)
		if err != nil {
			return err
		}
		if mode == interval.SeedSingletons {
			s.dump(a)
		}
		rs, err := a.Convert(target)
		if err != nil {
			return err
		}
		lowest, ok := interval.Min(rs)
		if !ok {
			return errNoSeeds
		}
		s.logf("%s: %s seeds in %d ranges became %d %s ranges",
			mode, humanize.Comma(int64(interval.Measure(a.Seeds))), len(a.Seeds), len(rs), target)
		s.answer(lowest)
	}
	return nil
}
