// Copyright 2017-25 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/opl"
	"m4o.io/opl/cmd/opl/cli"
	"m4o.io/opl/internal/oplio"
)

var reportFile *os.File

func init() {
	rootCmd.AddCommand(validateCmd)

	flags := validateCmd.Flags()
	flags.Uint16P("cpu", "c", uint16(runtime.GOMAXPROCS(-1)), "number of goroutines to use for decoding")
	flags.StringP("mask", "m", "nwrc", "entity kinds to validate: any of n, w, r, c")
	flags.Var(cli.NewWriterValue(os.Stderr, &reportFile, "file"), "report", "write malformed-line reports to this file instead of stderr")
}

var validateCmd = &cobra.Command{
	Use:   "validate [<OPL file>]",
	Short: "Check an OPL file for malformed lines",
	Long:  "Decode every line of an OPL file, reporting each malformed line's position and exiting non-zero if any were found.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name, f, err := openArg(args)
		if err != nil {
			log.Fatal(err)
		}

		raw, err := cli.WrapInputFile(f)
		if err != nil {
			log.Fatal(err)
		}

		in, err := oplio.Decompress(name, raw)
		if err != nil {
			log.Fatal(err)
		}

		flags := cmd.Flags()

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			log.Fatal(err)
		}

		maskStr, err := flags.GetString("mask")
		if err != nil {
			log.Fatal(err)
		}

		mask, err := parseMask(maskStr)
		if err != nil {
			log.Fatal(err)
		}

		committed, malformed := runValidate(in, int(ncpu), mask, reportFile)

		if err := raw.Close(); err != nil {
			log.Fatal(err)
		}

		fmt.Fprintf(os.Stderr, "%s lines committed, %s malformed\n", humanize.Comma(committed), humanize.Comma(malformed))

		if malformed > 0 {
			os.Exit(1)
		}
	},
}

// runValidate decodes every line of in, writing one report line per
// malformed line to report, and returns the number of committed entities
// or changesets and the number of malformed lines.
func runValidate(in io.Reader, ncpu int, mask opl.EntityBits, report io.Writer) (committed, malformed int64) {
	d := opl.NewDecoder(in, mask)
	d.Start(ncpu)

	for {
		entity, changeset, err := d.Decode()
		if err == io.EOF {
			break
		}

		var oplErr *opl.Error

		switch {
		case errors.As(err, &oplErr):
			malformed++

			fmt.Fprintf(report, "%d:%d: %s\n", oplErr.Line, oplErr.Column, oplErr.Msg)
		case err != nil:
			log.Fatal(err)
		case entity != nil, changeset != nil:
			committed++
		}
	}

	d.Stop()

	return committed, malformed
}
