package main

import "github.com/cespare/advent/region"

func init() {
	register("2024-12", gardenGroups)
}

func gardenGroups(s *session) error {
	r, err := s.input()
	if err != nil {
		return err
	}
	g, err := region.ParseGrid(r)
	if err != nil {
		return err
	}
	regions := region.Segment(g)
	if s.debug {
		for _, rg := range regions {
			s.dump(struct {
				Label                 string
				Area, Perimeter, Sides int
			}{string(rg.Label), rg.Area(), rg.Perimeter(), rg.Sides()})
		}
	}
	s.logf("%dx%d grid has %d regions", g.Width(), g.Height(), len(regions))
	s.answer(region.Cost(regions))
	s.answer(region.BulkCost(regions))
	return nil
}
