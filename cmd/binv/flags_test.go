package main

import (
	"strings"
	"testing"

	"github.com/CodisLabs/codis/pkg/utils/assert"
	"github.com/CodisLabs/codis/pkg/utils/errors"
)

func parseFlagsFromString(line string) (*Flags, error) {
	var array = []string{}
	for _, s := range strings.Split(line, " ") {
		if t := strings.TrimSpace(s); t != "" {
			array = append(array, t)
		}
	}
	return parseFlagsFromArgs(usage, array)
}

func mustParseFlags(line string) *Flags {
	flags, err := parseFlagsFromString(line)
	assert.MustNoError(err)
	return flags
}

func mustUsageError(line string) {
	_, err := parseFlagsFromString(line)
	assert.Must(err != nil)
	_, ok := errors.Cause(err).(*UsageError)
	assert.Must(ok)
}

func TestParseFlagsInputOutput(t *testing.T) {
	var testcase = func(line string, input, output string) {
		var flags = mustParseFlags(line)
		assert.Must(flags.Action == ActionInvert)
		assert.Must(flags.Input == input)
		assert.Must(flags.Output == output)
	}
	testcase("", "", "")
	testcase("-i abc", "abc", "")
	testcase("--input abc", "abc", "")
	testcase("--input=abc", "abc", "")
	testcase("-i /a/b/c", "/a/b/c", "")
	testcase("-i -", "", "")

	testcase("-o abc", "", "abc")
	testcase("--output abc", "", "abc")
	testcase("-o -", "", "")

	testcase("-i abc -o xyz", "abc", "xyz")
	testcase("-o xyz -i abc", "abc", "xyz")
}

func TestParseFlagsBufferSize(t *testing.T) {
	var testcase = func(line string, size int) {
		var flags = mustParseFlags(line)
		assert.Must(flags.BufferSize == size)
	}
	testcase("", DefaultBufferSize)
	testcase("-b 1", 1)
	testcase("--buffer 8192", 8192)
	testcase("--buffer=0x10", 16)
	testcase("-b 010", 8)
	testcase("-b 0o20", 16)
	testcase("-b 64kb", 64*1024)
	testcase("-b 1mb", 1024*1024)
	testcase("-i abc -b 2 -o xyz", 2)
}

func TestParseFlagsVerbose(t *testing.T) {
	assert.Must(!mustParseFlags("").Verbose)
	assert.Must(mustParseFlags("-v").Verbose)
	assert.Must(mustParseFlags("--verbose -i abc").Verbose)
}

func TestParseFlagsActions(t *testing.T) {
	assert.Must(mustParseFlags("-h").Action == ActionHelp)
	assert.Must(mustParseFlags("--help").Action == ActionHelp)
	assert.Must(mustParseFlags("--version").Action == ActionVersion)
	assert.Must(mustParseFlags("--license").Action == ActionLicense)
}

func TestParseFlagsUsageError(t *testing.T) {
	mustUsageError("--buffer abc")
	mustUsageError("-b 0")
	mustUsageError("-b -1")
	mustUsageError("-b 0x40000001")
	mustUsageError("--unknown")
	mustUsageError("abc")
	mustUsageError("-i")
	mustUsageError("-i abc -o")
	mustUsageError("-b")

	_, err := parseFlagsFromString("-i abc --nope")
	assert.Must(errors.Cause(err).Error() == "unknown argument in '-i abc --nope'")
}
