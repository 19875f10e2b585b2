package main

import "github.com/cespare/advent/packet"

func init() {
	register("2022-13", distressSignal)
}

func distressSignal(s *session) error {
	r, err := s.input()
	if err != nil {
		return err
	}
	pairs, err := packet.ParsePairs(r)
	if err != nil {
		return err
	}
	s.dump(pairs)
	var sum, ordered int
	for i, p := range pairs {
		if p.InOrder() {
			sum += i + 1
			ordered++
		}
	}
	s.logf("%d of %d pairs in order", ordered, len(pairs))
	s.answer(sum)
	s.answer(packet.DecoderKey(packet.Flatten(pairs)))
	return nil
}
