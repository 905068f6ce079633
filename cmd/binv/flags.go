package main

import (
	"math"
	"strconv"
	"strings"

	"github.com/CodisLabs/codis/pkg/utils/bytesize"
	"github.com/CodisLabs/codis/pkg/utils/errors"

	docopt "github.com/docopt/docopt-go"
)

const (
	DefaultBufferSize = 1024 * 4
	MaxBufferSize     = 1024 * 1024 * 1024
)

type Action int

const (
	ActionInvert Action = iota
	ActionHelp
	ActionVersion
	ActionLicense
)

type Flags struct {
	Action Action

	Input, Output string
	BufferSize    int

	Verbose bool
}

// UsageError is returned for arguments that cannot be parsed.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

func parseFlagsFromArgs(usage string, args []string) (*Flags, error) {
	if args == nil {
		args = []string{}
	}
	var parser = &docopt.Parser{
		HelpHandler:   docopt.NoHelpHandler,
		SkipHelpFlags: true,
	}
	d, err := parser.ParseArgs(usage, args, "")
	if err != nil {
		if msg := err.Error(); msg != "" {
			return nil, errors.Trace(&UsageError{msg})
		}
		return nil, errors.Trace(&UsageError{"unknown argument in '" + strings.Join(args, " ") + "'"})
	}

	var flags = &Flags{BufferSize: DefaultBufferSize}
	switch {
	case d["--help"] == true:
		flags.Action = ActionHelp
		return flags, nil
	case d["--version"] == true:
		flags.Action = ActionVersion
		return flags, nil
	case d["--license"] == true:
		flags.Action = ActionLicense
		return flags, nil
	}

	if s, ok := d["--input"].(string); ok && s != "-" {
		flags.Input = s
	}
	if s, ok := d["--output"].(string); ok && s != "-" {
		flags.Output = s
	}
	if s, ok := d["--buffer"].(string); ok {
		n, err := parseBufferSize(s)
		if err != nil {
			return nil, err
		}
		flags.BufferSize = n
	}
	flags.Verbose = d["--verbose"] == true
	return flags, nil
}

// parseBufferSize accepts an unsigned integer in decimal, hex (0x) or
// octal (0, 0o) form, or a human size like "64kb".
func parseBufferSize(s string) (int, error) {
	var size int64
	if n, err := strconv.ParseUint(s, 0, 64); err == nil {
		if n > math.MaxInt64 {
			n = math.MaxInt64
		}
		size = int64(n)
	} else {
		n, err := bytesize.Parse(s)
		if err != nil {
			return 0, errors.Trace(&UsageError{"failed to parse '" + s + "' as buffer size"})
		}
		size = n
	}
	if size <= 0 || size > MaxBufferSize {
		return 0, errors.Trace(&UsageError{"invalid buffer size '" + s + "', must be in [1," +
			strconv.FormatInt(MaxBufferSize, 10) + "]"})
	}
	return int(size), nil
}
