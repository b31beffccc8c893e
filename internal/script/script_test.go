package script

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lucasgdosr/intdeque"
)

func TestParse(t *testing.T) {
	src := `
# comment
push_back 1 2 3
  PUSH_FRONT -1

set 0 7
print
`
	cmds, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []Command{
		{Line: 3, Op: PUSH_BACK, Args: []int{1, 2, 3}},
		{Line: 4, Op: PUSH_FRONT, Args: []int{-1}},
		{Line: 6, Op: SET, Args: []int{0, 7}},
		{Line: 7, Op: PRINT},
	}, cmds)
	require.Equal(t, "push_back 1 2 3", cmds[0].String())
}

func TestParseErrors(t *testing.T) {
	for _, tc := range []struct {
		src  string
		err  error
		line string
	}{
		{"shuffle", ErrUnknownCommand, "line 1"},
		{"print\npush_back", ErrSyntax, "line 2"},
		{"pop_back 1", ErrSyntax, "line 1"},
		{"set 1", ErrSyntax, "line 1"},
		{"\n\nat x", ErrSyntax, "line 3"},
	} {
		_, err := Parse(strings.NewReader(tc.src))
		require.ErrorIs(t, err, tc.err, tc.src)
		require.Contains(t, err.Error(), tc.line, tc.src)
	}
}

func run(t *testing.T, src string) (string, *deque.Deque, error) {
	t.Helper()
	cmds, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	var out bytes.Buffer
	d := deque.MakeDeque()
	err = NewRunner(d, &out).Run(cmds)
	return out.String(), d, err
}

func TestRun(t *testing.T) {
	out, d, err := run(t, `
push_back 1 2 3
push_front 0
print
size
capacity
reverse
print
pop_back
pop_front
at 1
set 0 9
append 4 5
print
empty
clear
empty
pop_back
capacity
`)
	require.NoError(t, err)
	require.Equal(t, strings.Join([]string{
		"0 1 2 3 ",
		"4",
		"4",
		"3 2 1 0 ",
		"0",
		"3",
		"1",
		"9 1 4 5 ",
		"false",
		"true",
		"0",
		"4",
		"",
	}, "\n"), out)
	require.True(t, d.Empty())
}

func TestRunStopsOnOutOfRange(t *testing.T) {
	out, _, err := run(t, "push_back 1\nat 1\nprint")
	require.ErrorIs(t, err, deque.ErrOutOfRange)
	require.Contains(t, err.Error(), "line 2: at 1")
	require.Empty(t, out)
}

func TestRunKeepGoing(t *testing.T) {
	cmds, err := Parse(strings.NewReader("push_back 1\nset 5 1\nat 3\nprint"))
	require.NoError(t, err)
	var out bytes.Buffer
	r := NewRunner(deque.MakeDeque(), &out)
	r.KeepGoing = true
	r.Trace = true
	require.NoError(t, r.Run(cmds))
	require.Equal(t, "1 \n", out.String())
}
