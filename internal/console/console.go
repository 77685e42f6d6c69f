// Package console runs a line oriented command session over an int heap.
package console

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-containers/Heaps"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/g-m-twostay/go-containers/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type cmdHandler func(s *Session, args []string) error

type command struct {
	handler     cmdHandler
	args        int
	description string
	usage       string
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"insert":   {handleInsert, 1, "inserts values", "insert [value...]"},
		"extract":  {handleExtract, 0, "removes and prints the root", "extract"},
		"peek":     {handlePeek, 0, "prints the root", "peek"},
		"remove":   {handleRemove, 1, "removes one copy of a value", "remove [value]"},
		"contains": {handleContains, 1, "tells whether a value is in the heap", "contains [value]"},
		"size":     {handleSize, 0, "prints the number of values", "size"},
		"empty":    {handleEmpty, 0, "tells whether the heap is empty", "empty"},
		"height":   {handleHeight, 0, "prints the height of the tree", "height"},
		"clear":    {handleClear, 0, "removes every value", "clear"},
		"print":    {handlePrint, 0, "prints the values in a traversal order", "print [pre|in|post|level]"},
		"check":    {handleCheck, 0, "verifies the heap invariants", "check"},
		"help":     {handleHelp, 0, "shows usage information", "help [command]"},
	}
}

// errQuit ends Run without an error.
var errQuit = errors.New("quit")

// Session reads commands from an input and applies them to a heap, writing the
// results to out. Errors caused by the user's input, such as extracting from an
// empty heap, are reported on out and logged; they don't end the session.
type Session struct {
	heap   *Heaps.Heap[int]
	out    io.Writer
	log    logrus.FieldLogger
	prompt string
	order  Trees.Order
	echo   bool
}

// NewSession over h configured by conf. log may be nil to discard logs.
func NewSession(h *Heaps.Heap[int], conf *config.Console, out io.Writer, log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Session{
		heap:   h,
		out:    out,
		log:    log.WithField("kind", h.Kind()),
		prompt: conf.Prompt,
		order:  conf.Order(),
		echo:   conf.Echo,
	}
}

// Run commands read from in until it's exhausted or a quit command.
func (s *Session) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !sc.Scan() {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if s.echo {
			fmt.Fprintln(s.out, strings.Join(fields, " "))
		}
		if err := s.Exec(fields[0], fields[1:]); err == errQuit {
			return nil
		}
	}
	return errors.Wrap(sc.Err(), "console: reading commands")
}

// Exec runs a single command. The returned error has already been reported.
func (s *Session) Exec(name string, args []string) error {
	if name == "quit" || name == "exit" {
		return errQuit
	}
	cmd, ok := commands[name]
	if !ok {
		s.log.WithField("op", name).Warn("unknown command")
		fmt.Fprintf(s.out, "unknown command %q, try help\n", name)
		return errors.Errorf("unknown command %q", name)
	}
	if len(args) < cmd.args {
		fmt.Fprintf(s.out, "usage: %s\n", cmd.usage)
		return errors.Errorf("%s: not enough arguments", name)
	}
	err := cmd.handler(s, args)
	entry := s.log.WithFields(logrus.Fields{"op": name, "size": s.heap.Size()})
	if err != nil {
		entry.WithError(err).Warn("command failed")
		fmt.Fprintf(s.out, "error: %v\n", err)
		return err
	}
	entry.Debug("command done")
	return nil
}

func parseValues(args []string) ([]int, error) {
	vs := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "bad value %q", a)
		}
		vs[i] = v
	}
	return vs, nil
}

func handleInsert(s *Session, args []string) error {
	vs, err := parseValues(args)
	if err != nil {
		return err
	}
	for _, v := range vs {
		s.heap.Insert(v)
	}
	fmt.Fprintf(s.out, "inserted %d, size %d\n", len(vs), s.heap.Size())
	return nil
}

func handleExtract(s *Session, _ []string) error {
	v, err := s.heap.ExtractRoot()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func handlePeek(s *Session, _ []string) error {
	v, err := s.heap.PeekRoot()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, v)
	return nil
}

func handleRemove(s *Session, args []string) error {
	vs, err := parseValues(args[:1])
	if err != nil {
		return err
	}
	if err = s.heap.Remove(vs[0]); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "removed %d\n", vs[0])
	return nil
}

func handleContains(s *Session, args []string) error {
	vs, err := parseValues(args[:1])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.heap.Contains(vs[0]))
	return nil
}

func handleSize(s *Session, _ []string) error {
	fmt.Fprintln(s.out, s.heap.Size())
	return nil
}

func handleEmpty(s *Session, _ []string) error {
	fmt.Fprintln(s.out, s.heap.Empty())
	return nil
}

func handleHeight(s *Session, _ []string) error {
	fmt.Fprintln(s.out, s.heap.Height())
	return nil
}

func handleClear(s *Session, _ []string) error {
	s.heap.Clear()
	fmt.Fprintln(s.out, "cleared")
	return nil
}

func handlePrint(s *Session, args []string) error {
	o := s.order
	if len(args) > 0 {
		var ok bool
		if o, ok = Trees.ParseOrder(args[0]); !ok {
			return errors.Errorf("unknown order %q", args[0])
		}
	}
	vs := s.heap.Values(o)
	if len(vs) == 0 {
		fmt.Fprintln(s.out, "(empty)")
		return nil
	}
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(s.out, strings.Join(strs, " "))
	return nil
}

func handleCheck(s *Session, _ []string) error {
	if s.heap.Corrupt() {
		s.log.Error("heap invariants broken")
		fmt.Fprintln(s.out, "corrupt")
		return nil
	}
	fmt.Fprintln(s.out, "ok")
	return nil
}

func handleHelp(s *Session, args []string) error {
	if len(args) > 0 {
		cmd, ok := commands[args[0]]
		if !ok {
			return errors.Errorf("help: command %q does not exist", args[0])
		}
		fmt.Fprintf(s.out, "%s: %s.\n    %s\n", args[0], cmd.description, cmd.usage)
		return nil
	}
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	fmt.Fprintln(s.out, "Available commands:")
	for _, name := range names {
		fmt.Fprintf(s.out, "    %-9s%s.\n", name, commands[name].description)
	}
	fmt.Fprintln(s.out, "    quit     ends the session.")
	return nil
}
