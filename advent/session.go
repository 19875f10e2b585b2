package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/kr/pretty"
	"github.com/vaughan0/go-ini"
)

// A session is one run of a solution.
type session struct {
	name  string
	args  []string
	conf  ini.Section
	stdin io.Reader
	out   io.Writer
	log   *log.Logger

	verbose bool
	debug   bool

	closers []io.Closer
}

func (s *session) run(fn func(*session) error) error {
	defer s.close()
	start := time.Now()
	err := fn(s)
	s.logf("%s took %s", s.name, time.Since(start).Round(time.Microsecond))
	return err
}

// input returns the puzzle input: the file named on the command line,
// else the file named by the config's input key, else stdin.
func (s *session) input() (io.Reader, error) {
	name := s.conf["input"]
	if len(s.args) > 0 {
		name = s.args[0]
	}
	if name == "" || name == "-" {
		return s.stdin, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, f)
	if s.verbose {
		if fi, err := f.Stat(); err == nil {
			s.logf("reading %s (%s)", name, humanize.Bytes(uint64(fi.Size())))
		}
	}
	return f, nil
}

func (s *session) close() {
	for _, c := range s.closers {
		c.Close()
	}
	s.closers = nil
}

func (s *session) answer(v any) {
	fmt.Fprintln(s.out, v)
}

func (s *session) logf(format string, args ...any) {
	if s.verbose {
		s.log.Printf(format, args...)
	}
}

func (s *session) dump(v any) {
	if s.debug {
		s.log.Print(pretty.Sprint(v))
	}
}

func (s *session) confInt(key string, def int) (int, error) {
	v, ok := s.conf[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config [%s] %s: %s", s.name, key, err)
	}
	return n, nil
}

func (s *session) confInts(key string, def []int) ([]int, error) {
	v, ok := s.conf[key]
	if !ok {
		return def, nil
	}
	var ns []int
	for _, field := range strings.Fields(strings.ReplaceAll(v, ",", " ")) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("config [%s] %s: %s", s.name, key, err)
		}
		ns = append(ns, n)
	}
	if len(ns) == 0 {
		return nil, fmt.Errorf("config [%s] %s: no values", s.name, key)
	}
	return ns, nil
}

func (s *session) confString(key, def string) string {
	if v, ok := s.conf[key]; ok {
		return strings.TrimSpace(v)
	}
	return def
}

func loadConfig(name string) (ini.File, error) {
	if name == "" {
		return make(ini.File), nil
	}
	config, err := ini.LoadFile(name)
	if err != nil {
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	return config, nil
}
