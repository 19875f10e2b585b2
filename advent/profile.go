package main

import (
	"fmt"
	"os"

	"github.com/felixge/fgprof"
	"github.com/pkg/profile"
)

// startProfiling starts the profilers selected on the command line.
// The returned function stops them and flushes their output.
func startProfiling(fgprofFile, mode string) (stop func() error, err error) {
	var opt func(*profile.Profile)
	switch mode {
	case "":
	case "cpu":
		opt = profile.CPUProfile
	case "mem":
		opt = profile.MemProfile
	case "block":
		opt = profile.BlockProfile
	case "trace":
		opt = profile.TraceProfile
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
	var stops []func() error
	if fgprofFile != "" {
		f, err := os.Create(fgprofFile)
		if err != nil {
			return nil, err
		}
		stopFG := fgprof.Start(f, fgprof.FormatPprof)
		stops = append(stops, func() error {
			if err := stopFG(); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		})
	}
	if opt != nil {
		p := profile.Start(opt, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet)
		stops = append(stops, func() error {
			p.Stop()
			return nil
		})
	}
	return func() error {
		var first error
		for i := len(stops) - 1; i >= 0; i-- {
			if err := stops[i](); err != nil && first == nil {
				first = err
			}
		}
		return first
	}, nil
}
