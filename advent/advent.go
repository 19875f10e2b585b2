package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"
)

func main() {
	log.SetFlags(0)
	var (
		configFile = flag.String("config", "", "INI `file` with per-solution settings")
		verbose    = flag.Bool("v", false, "print timing and statistics to stderr")
		debug      = flag.Bool("debug", false, "dump the parsed input to stderr")
		fgprofFile = flag.String("fgprof", "", "write a wall-clock profile to `file`")
		profMode   = flag.String("profile", "", "profile with pkg/profile: cpu, mem, block, or trace")
	)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	fn, ok := solutions[name]
	if !ok {
		log.Fatalf("unknown solution %q", name)
	}
	config, err := loadConfig(*configFile)
	if err != nil {
		log.Fatal(err)
	}
	stop, err := startProfiling(*fgprofFile, *profMode)
	if err != nil {
		log.Fatal(err)
	}

	s := &session{
		name:    name,
		args:    flag.Args()[1:],
		conf:    config.Section(name),
		stdin:   os.Stdin,
		out:     os.Stdout,
		log:     log.New(os.Stderr, "", 0),
		verbose: *verbose,
		debug:   *debug,
	}
	err = s.run(fn)
	if stopErr := stop(); stopErr != nil {
		log.Printf("stopping profile: %s", stopErr)
	}
	if err != nil {
		log.Fatalf("%s: %s", name, err)
	}
}

func usage() {
	var names []string
	for name := range solutions {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	fmt.Fprintf(os.Stderr, "usage: %s [flags] [solution] [input]\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "where solution is one of:")
	for _, name := range names {
		fmt.Fprintln(os.Stderr, name)
	}
	fmt.Fprintln(os.Stderr, "flags:")
	flag.PrintDefaults()
}

var solutions = make(map[string]func(*session) error)

func register(name string, fn func(*session) error) {
	if _, ok := solutions[name]; ok {
		panic(fmt.Sprintf("duplicate solutions registered for %q", name))
	}
	solutions[name] = fn
}

// nameLess orders puzzle solutions (year-day) by year and day and
// puts any other tools after them.
func nameLess(name0, name1 string) bool {
	y0, d0, ok0 := splitName(name0)
	y1, d1, ok1 := splitName(name1)
	switch {
	case ok0 != ok1:
		return ok0
	case !ok0:
		return name0 < name1
	case y0 != y1:
		return y0 < y1
	case d0 != d1:
		return d0 < d1
	}
	return name0 < name1
}

func splitName(name string) (year, day int, ok bool) {
	ys, ds, found := strings.Cut(name, "-")
	if !found {
		return 0, 0, false
	}
	year, err := strconv.Atoi(ys)
	if err != nil {
		return 0, 0, false
	}
	day, err = strconv.Atoi(ds)
	if err != nil {
		return 0, 0, false
	}
	return year, day, true
}
