package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cespare/advent/packet"
	"github.com/chzyer/readline"
)

func init() {
	register("packets", comparePacketsREPL)
}

// comparePacketsREPL reads two whitespace-separated packets per line and
// prints how they order.
func comparePacketsREPL(s *session) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:      "packets> ",
		HistoryFile: s.confString("history", ""),
	})
	if err != nil {
		return err
	}
	defer l.Close()

	for {
		line, err := l.Readline()
		switch err {
		case nil:
		case readline.ErrInterrupt:
			continue
		case io.EOF:
			return nil
		default:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result, err := comparePackets(line)
		if err != nil {
			fmt.Fprintf(s.out, "error: %s\n", err)
			continue
		}
		fmt.Fprintln(s.out, result)
	}
}

func comparePackets(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", errors.New("need two packets")
	}
	a, err := packet.Parse(fields[0])
	if err != nil {
		return "", err
	}
	b, err := packet.Parse(fields[1])
	if err != nil {
		return "", err
	}
	switch packet.Compare(a, b) {
	case -1:
		return "<", nil
	case 1:
		return ">", nil
	}
	return "=", nil
}
