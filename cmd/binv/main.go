// Copyright 2022 Nikolas Koesling. All Rights Reserved.
// Licensed under the MIT (LICENSE) license.

package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/CodisLabs/codis/pkg/utils/bytesize"
	"github.com/CodisLabs/codis/pkg/utils/errors"
	"github.com/CodisLabs/codis/pkg/utils/log"
	"github.com/CodisLabs/codis/pkg/utils/sync2/atomic2"

	"github.com/NikolasK-source/bitwise-invert/pkg/invert"
)

const usage = `
Usage:
	binv [--verbose] [--input=INPUT] [--output=OUTPUT] [--buffer=SIZE]
	binv  --help
	binv  --version
	binv  --license

Options:
	-i INPUT, --input=INPUT           Set input file, default is stdin ('-').
	-o OUTPUT, --output=OUTPUT        Set output file, default is stdout ('-').
	-b SIZE, --buffer=SIZE            Set buffer size in bytes, default is 4096.
	-v, --verbose                     Log configuration and byte counts to stderr.
	-h, --help                        Print usage.
	--version                         Print version.
	--license                         Print license.

Examples:
	$ binv -i data.bin -o data.inv
	$ binv -b 0x10000 < data.bin > data.inv
	$ cat data.inv | binv --buffer=64kb | cmp - data.bin
`

const license = `MIT License

Copyright (c) 2022 Nikolas Koesling

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.`

// Exit codes from sysexits.h.
const (
	ExitOK     = 0
	ExitUsage  = 64
	ExitOSFile = 72
	ExitIOErr  = 74
)

func main() {
	os.Exit(runMain(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runMain(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := parseFlagsFromArgs(usage, args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: use --help for more details\n", errors.Cause(err))
		return ExitUsage
	}

	switch flags.Action {
	case ActionHelp:
		fmt.Fprintln(stdout, strings.TrimSpace(usage))
		return ExitOK
	case ActionVersion:
		fmt.Fprintln(stdout, "version:", Version)
		fmt.Fprintln(stdout, "compile:", Compile)
		fmt.Fprintf(stdout, "runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return ExitOK
	case ActionLicense:
		fmt.Fprintln(stdout, license)
		return ExitOK
	}

	log.StdLog = log.New(stderr, "")
	if flags.Verbose {
		log.SetLevel(log.LevelInfo)
	} else {
		log.SetLevel(log.LevelWarn)
	}

	if err := run(flags, stdin, stdout); err != nil {
		switch errors.Cause(err).(type) {
		case *OpenError:
			log.ErrorErrorf(err, "binv: open file failed")
			return ExitOSFile
		default:
			log.ErrorErrorf(err, "binv: invert failed")
			return ExitIOErr
		}
	}
	return ExitOK
}

func run(flags *Flags, stdin io.Reader, stdout io.Writer) (err error) {
	var input struct {
		Path string
		io.Reader
	}
	if len(flags.Input) != 0 {
		input.Path = flags.Input
	} else {
		input.Path = "/dev/stdin"
	}

	var output struct {
		Path string
		io.Writer
	}
	if len(flags.Output) != 0 {
		output.Path = flags.Output
	} else {
		output.Path = "/dev/stdout"
	}
	log.Infof("binv: input = %q, output = %q, buffer = %d\n", input.Path, output.Path, flags.BufferSize)

	if len(flags.Input) != 0 {
		file, err := openReadFile(flags.Input)
		if err != nil {
			return err
		}
		defer file.Close()
		input.Reader = file
	} else {
		input.Reader = stdin
	}

	if len(flags.Output) != 0 {
		file, ferr := openWriteFile(flags.Output)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := closeFile(file); cerr != nil && err == nil {
				err = &invert.OpError{Op: "close", Err: cerr}
			}
		}()
		output.Writer = file
	} else {
		output.Writer = stdout
	}

	var rbytes, wbytes atomic2.Int64

	var reader = rBuilder(input.Reader).Count(&rbytes).Reader
	var writer = wBuilder(output.Writer).Count(&wbytes).Writer

	var buf = make([]byte, flags.BufferSize)
	if _, err := invert.Copy(writer, reader, buf); err != nil {
		log.Warnf("binv: stopped after (r,w) = (%d,%d)", rbytes.Int64(), wbytes.Int64())
		return err
	}

	log.Infof("binv: done (r,w) = (%d,%d)  -  (%s,%s)", rbytes.Int64(), wbytes.Int64(),
		bytesize.Int64(rbytes.Int64()).HumanString(),
		bytesize.Int64(wbytes.Int64()).HumanString())
	return nil
}
