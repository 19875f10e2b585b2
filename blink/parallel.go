package blink

import (
	"fmt"
	"math/bits"

	"github.com/cespare/wait"
)

// CountParallel is like Count but spreads the starting stones over
// workers goroutines, each with its own Counter.
func CountParallel(stones []uint64, n, workers int) (uint64, error) {
	if workers < 1 {
		workers = 1
	}
	workers = min(workers, len(stones))
	if workers <= 1 {
		return Count(stones, n)
	}
	var wg wait.Group
	totals := make([]uint64, workers)
	for w := 0; w < workers; w++ {
		wg.Go(func(quit <-chan struct{}) error {
			var c Counter
			for i := w; i < len(stones); i += workers {
				select {
				case <-quit:
					return nil
				default:
				}
				m, err := c.Count(stones[i], n)
				if err != nil {
					return err
				}
				var carry uint64
				totals[w], carry = bits.Add64(totals[w], m, 0)
				if carry != 0 {
					return fmt.Errorf("%w: total after %d blinks", ErrOverflow, n)
				}
			}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return 0, err
	}
	var total uint64
	for _, m := range totals {
		var carry uint64
		total, carry = bits.Add64(total, m, 0)
		if carry != 0 {
			return 0, fmt.Errorf("%w: total after %d blinks", ErrOverflow, n)
		}
	}
	return total, nil
}
