package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-containers/Heaps"
	"github.com/g-m-twostay/go-containers/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, kind Heaps.Kind, script string) (string, *test.Hook) {
	t.Helper()
	conf := config.Default()
	conf.Prompt = ""
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	var out bytes.Buffer
	s := NewSession(Heaps.New[int](kind), conf, &out, logger)
	require.NoError(t, s.Run(strings.NewReader(script)))
	return out.String(), hook
}

func TestSession_MinHeap(t *testing.T) {
	out, hook := run(t, Heaps.Min, `
insert 10 5 15 3 8
peek
size
extract
peek
remove 5
contains 5
size
print level
check
extract
extract
extract
empty
extract
insert 20 30
clear
size
`)
	want := `inserted 5, size 5
3
5
3
5
removed 5
false
3
8 10 15
ok
8
10
15
true
error: heap is empty: cannot ExtractRoot
inserted 2, size 2
cleared
0
`
	assert.Equal(t, want, out)
	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["op"] == "extract" {
			warned = true
		}
	}
	assert.True(t, warned, "empty extract should be logged")
}

func TestSession_MaxHeap(t *testing.T) {
	out, _ := run(t, Heaps.Max, "insert 1 2 3 4 5 6 7\nprint pre\nprint post\nheight\nquit\nsize\n")
	assert.Equal(t, "inserted 7, size 7\n7 4 1 3 6 2 5\n1 3 4 2 5 6 7\n3\n", out)
}

func TestSession_BadInput(t *testing.T) {
	out, hook := run(t, Heaps.Min, "frobnicate\ninsert x\nremove\nremove 9\nprint sideways\nhelp nope\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, `unknown command "frobnicate", try help`, lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `error: bad value "x"`))
	assert.Equal(t, "usage: remove [value]", lines[2])
	assert.Equal(t, "error: heap has no element 9", lines[3])
	assert.Equal(t, `error: unknown order "sideways"`, lines[4])
	assert.Equal(t, `error: help: command "nope" does not exist`, lines[5])
	assert.NotEmpty(t, hook.AllEntries())
}

func TestSession_Help(t *testing.T) {
	out, _ := run(t, Heaps.Min, "help\nhelp peek\n")
	assert.Contains(t, out, "Available commands:")
	for name := range commands {
		assert.Contains(t, out, "    "+name)
	}
	assert.Contains(t, out, "peek: prints the root.\n    peek\n")
}

func TestSession_EchoAndPrompt(t *testing.T) {
	conf := config.Default()
	conf.Echo = true
	var out bytes.Buffer
	s := NewSession(Heaps.NewMin[int](), conf, &out, nil)
	require.NoError(t, s.Run(strings.NewReader("insert 1\n")))
	assert.Equal(t, "> insert 1\ninserted 1, size 1\n> ", out.String())
}
