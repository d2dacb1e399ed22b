// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/kevad/storage"
	"github.com/bitmark-inc/logger"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	endColour  = "\033[0m"
)

type colours struct {
	k1, k2 string
	v1, v2 string
	end    string
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "list", HasArg: getoptions.NO_ARGUMENT, Short: 'l'},
		{Long: "early", HasArg: getoptions.NO_ARGUMENT, Short: 'e'},
		{Long: "colour", HasArg: getoptions.NO_ARGUMENT, Short: 'g'},
		{Long: "ascii", HasArg: getoptions.NO_ARGUMENT, Short: 'a'},
		{Long: "decode", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'f'},
		{Long: "count", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["list"]) > 0 {
		fmt.Printf(" tags:\n")
		for _, t := range poolTags() {
			fmt.Printf("       %s → %s\n", t.tag, t.name)
		}
		return
	}

	if len(options["help"]) > 0 || 0 == len(arguments) || 1 != len(options["file"]) {
		exitwithstatus.Message("usage: %s [--help] [--verbose] [--decode] [--count=N] --file=FILE tag [--list] [key-prefix]", program)
	}

	verbose := len(options["verbose"]) > 0

	count := 10
	if len(options["count"]) > 0 {
		count, err = strconv.Atoi(options["count"][0])
		if nil != err {
			exitwithstatus.Message("%s: convert count error: %s", program, err)
		}
		if count < 1 {
			exitwithstatus.Message("%s: invalid count: %d", program, count)
		}
	}

	filename := options["file"][0]
	tag := arguments[0]
	if verbose {
		fmt.Printf("read tag: %s from file: %q\n", tag, filename)
	}

	prefix := []byte(nil)
	if len(arguments) > 1 {
		prefix, err = hex.DecodeString(arguments[1])
		if nil != err {
			exitwithstatus.Message("%s: convert prefix error: %s", program, err)
		}
	}

	logging := logger.Configuration{
		Directory: ".",
		File:      "keva-dumpdb.log",
		Size:      1048576,
		Count:     10,
		Console:   true,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// start of main processing
	db, err := storage.Open(filename, storage.ReadOnly)
	if nil != err {
		exitwithstatus.Message("%s: storage setup failed with error: %s", program, err)
	}
	defer db.Close()

	p := poolByTag(&db.Pool, tag)
	if nil == p {
		exitwithstatus.Message("%s: no pool corresponding to: %q", program, tag)
	}

	data, err := p.NewPrefixCursor(prefix).Fetch(count)
	if nil != err {
		exitwithstatus.Message("%s: error on Fetch: %s", program, err)
	}

	c := colours{}
	if len(options["colour"]) > 0 {
		c = colours{
			k1:  keyColour1,
			k2:  keyColour2,
			v1:  valColour1,
			v2:  valColour2,
			end: endColour,
		}
	}

	dump(os.Stdout, tag, data, prefix, c, len(options["early"]) > 0, len(options["ascii"]) > 0, len(options["decode"]) > 0)
}

type poolTag struct {
	tag  string
	name string
}

// prefix tags of all pools in declaration order
func poolTags() []poolTag {
	poolType := reflect.TypeOf(storage.Pools{})
	tags := make([]poolTag, 0, poolType.NumField())
	for i := 0; i < poolType.NumField(); i += 1 {
		fieldInfo := poolType.Field(i)
		tags = append(tags, poolTag{
			tag:  fieldInfo.Tag.Get("prefix"),
			name: fieldInfo.Name,
		})
	}
	return tags
}

// the pool with a prefix tag, nil if none matches
func poolByTag(pools *storage.Pools, tag string) *storage.PoolHandle {
	poolType := reflect.TypeOf(*pools)
	poolValue := reflect.ValueOf(*pools)
	for i := 0; i < poolType.NumField(); i += 1 {
		if tag == poolType.Field(i).Tag.Get("prefix") {
			p, _ := poolValue.Field(i).Interface().(*storage.PoolHandle)
			return p
		}
	}
	return nil
}

func dump(w io.Writer, tag string, data []storage.Element, prefix []byte, c colours, earlyStop bool, ascii bool, decode bool) {
	l := len(prefix)

print_loop:
	for i, e := range data {
		if earlyStop && len(e.Key) >= l && !bytes.Equal(prefix, e.Key[:l]) {
			fmt.Fprintf(w, "*** early stop\n")
			break print_loop
		}

		if decode {
			if text, ok := decodeElement(tag, e); ok {
				fmt.Fprintf(w, "%d: %s%s%s\n", i, c.k1, text, c.end)
				continue print_loop
			}
		}

		fmt.Fprintf(w, "%d: %sKey: %s%x%s\n", i, c.k1, c.k2, e.Key, c.end)
		if ascii {
			hexDump(w, fmt.Sprintf("%d: %sVal: %s", i, c.v1, c.v2), c.end, e.Value)
		} else {
			fmt.Fprintf(w, "%d: %sVal: %s%x%s\n", i, c.v1, c.v2, e.Value, c.end)
		}
	}
}

// dump hex data
func hexDump(w io.Writer, prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(w, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(w, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(w, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(w, "   ")
			}
		}
		fmt.Fprintf(w, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j < len(data) {
				c := data[i+j]
				if c < 32 || c >= 127 {
					c = '.'
				}
				fmt.Fprintf(w, "%c", c)

			} else {
				break ascii_loop
			}
		}
		fmt.Fprintf(w, "|%s\n", suffix)
	}
}
