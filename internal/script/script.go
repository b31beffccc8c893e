// Package script parses and runs line-oriented deque operation scripts.
//
// Each non-blank line that does not start with '#' holds one command
// followed by space-separated integer arguments:
//
//	push_back 1 2 3
//	push_front 0
//	pop_back
//	print
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/lucasgdosr/intdeque"
)

var log = logging.MustGetLogger("script")

type Op uint8

const (
	PUSH_BACK Op = iota
	PUSH_FRONT
	POP_BACK
	POP_FRONT
	AT
	SET
	CLEAR
	REVERSE
	APPEND
	SIZE
	CAPACITY
	EMPTY
	PRINT
)

type opInfo struct {
	name    string
	minArgs int
	maxArgs int // -1 for any
}

var ops = [...]opInfo{
	PUSH_BACK:  {"push_back", 1, -1},
	PUSH_FRONT: {"push_front", 1, -1},
	POP_BACK:   {"pop_back", 0, 0},
	POP_FRONT:  {"pop_front", 0, 0},
	AT:         {"at", 1, 1},
	SET:        {"set", 2, 2},
	CLEAR:      {"clear", 0, 0},
	REVERSE:    {"reverse", 0, 0},
	APPEND:     {"append", 1, -1},
	SIZE:       {"size", 0, 0},
	CAPACITY:   {"capacity", 0, 0},
	EMPTY:      {"empty", 0, 0},
	PRINT:      {"print", 0, 0},
}

var opByName = func() map[string]Op {
	m := make(map[string]Op, len(ops))
	for op, info := range ops {
		m[info.name] = Op(op)
	}
	return m
}()

func (o Op) String() string {
	if int(o) < len(ops) {
		return ops[o].name
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

var (
	ErrSyntax         = errors.New("syntax error")
	ErrUnknownCommand = errors.New("unknown command")
)

type Command struct {
	Line int
	Op   Op
	Args []int
}

func (c Command) String() string {
	var sb strings.Builder
	sb.WriteString(c.Op.String())
	for _, a := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(a))
	}
	return sb.String()
}

// Parse reads a whole script. Errors name the offending line.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := parseLine(line, text)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}

func parseLine(line int, text string) (Command, error) {
	fields := strings.Fields(text)
	op, ok := opByName[strings.ToLower(fields[0])]
	if !ok {
		return Command{}, fmt.Errorf("line %d: %w %q", line, ErrUnknownCommand, fields[0])
	}
	info := ops[op]
	n := len(fields) - 1
	if n < info.minArgs || (info.maxArgs >= 0 && n > info.maxArgs) {
		return Command{}, fmt.Errorf("line %d: %w: %s takes %s, got %d", line, ErrSyntax, info.name, arity(info), n)
	}
	cmd := Command{Line: line, Op: op}
	if n > 0 {
		cmd.Args = make([]int, n)
	}
	for i, f := range fields[1:] {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Command{}, fmt.Errorf("line %d: %w: argument %q is not an integer", line, ErrSyntax, f)
		}
		cmd.Args[i] = v
	}
	return cmd, nil
}

func arity(info opInfo) string {
	switch {
	case info.maxArgs < 0:
		return fmt.Sprintf("at least %d argument(s)", info.minArgs)
	case info.minArgs == info.maxArgs:
		return fmt.Sprintf("%d argument(s)", info.minArgs)
	default:
		return fmt.Sprintf("%d to %d arguments", info.minArgs, info.maxArgs)
	}
}

// Runner applies commands to a Deque and writes what they produce to Out,
// one line per producing command.
type Runner struct {
	Deque *deque.Deque
	Out   io.Writer

	// KeepGoing logs out-of-range errors from at/set instead of stopping.
	KeepGoing bool
	// Trace logs the deque after every command at DEBUG.
	Trace bool
}

func NewRunner(d *deque.Deque, out io.Writer) *Runner {
	return &Runner{Deque: d, Out: out}
}

// Run executes cmds in order. It stops at the first error unless the error
// is an out-of-range access and KeepGoing is set.
func (r *Runner) Run(cmds []Command) error {
	for _, cmd := range cmds {
		if err := r.exec(cmd); err != nil {
			if r.KeepGoing && errors.Is(err, deque.ErrOutOfRange) {
				log.Warningf("line %d: %s: %v", cmd.Line, cmd, err)
				continue
			}
			return fmt.Errorf("line %d: %s: %w", cmd.Line, cmd, err)
		}
		if r.Trace {
			log.Debugf("line %d: %-16s len=%d cap=%d [%s]", cmd.Line, cmd, r.Deque.Len(), r.Deque.Cap(), r.Deque)
		}
	}
	return nil
}

func (r *Runner) exec(cmd Command) error {
	d := r.Deque
	switch cmd.Op {
	case PUSH_BACK:
		for _, v := range cmd.Args {
			d.PushBack(v)
		}
	case PUSH_FRONT:
		for _, v := range cmd.Args {
			d.PushFront(v)
		}
	case POP_BACK:
		return r.println(d.PopBack())
	case POP_FRONT:
		return r.println(d.PopFront())
	case AT:
		v, err := d.At(cmd.Args[0])
		if err != nil {
			return err
		}
		return r.println(v)
	case SET:
		return d.Set(cmd.Args[0], cmd.Args[1])
	case CLEAR:
		d.Clear()
	case REVERSE:
		d.Reverse()
	case APPEND:
		d.Append(deque.CopySliceToDeque(cmd.Args))
	case SIZE:
		return r.println(d.Len())
	case CAPACITY:
		return r.println(d.Cap())
	case EMPTY:
		return r.println(d.Empty())
	case PRINT:
		if _, err := d.WriteTo(r.Out); err != nil {
			return err
		}
		_, err := io.WriteString(r.Out, "\n")
		return err
	default:
		return fmt.Errorf("%w %s", ErrUnknownCommand, cmd.Op)
	}
	return nil
}

func (r *Runner) println(v any) error {
	_, err := fmt.Fprintln(r.Out, v)
	return err
}
