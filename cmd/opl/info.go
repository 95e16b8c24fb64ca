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
	"encoding/json"
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
	"m4o.io/opl/model"
)

var out io.Writer = os.Stdout

// summary is what info reports: a count per entity kind plus the
// bounding box spanned by every node with a valid location.
type summary struct {
	NodeCount      int64             `json:"nodeCount"`
	WayCount       int64             `json:"wayCount"`
	RelationCount  int64             `json:"relationCount"`
	ChangesetCount int64             `json:"changesetCount"`
	BoundingBox    *model.BoundingBox `json:"boundingBox,omitempty"`
}

func init() {
	rootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format the summary as JSON")
	flags.Uint16P("cpu", "c", uint16(runtime.GOMAXPROCS(-1)), "number of goroutines to use for decoding")
	flags.StringP("mask", "m", "nwrc", "entity kinds to include: any of n, w, r, c")
}

var infoCmd = &cobra.Command{
	Use:   "info [<OPL file>]",
	Short: "Summarize an OPL file",
	Long:  "Summarize an OPL file: counts per entity kind and the bounding box of every located node.",
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

		s := runInfo(in, int(ncpu), mask)

		if err := raw.Close(); err != nil {
			log.Fatal(err)
		}

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			log.Fatal(err)
		}

		if jsonfmt {
			renderJSON(s)
		} else {
			renderTxt(s)
		}
	},
}

func runInfo(in io.Reader, ncpu int, mask opl.EntityBits) *summary {
	d := opl.NewDecoder(in, mask)
	d.Start(ncpu)

	s := &summary{}

	var bbox *model.BoundingBox

	for {
		entity, changeset, err := d.Decode()
		if err == io.EOF {
			break
		}

		var oplErr *opl.Error
		if err != nil {
			if errors.As(err, &oplErr) {
				log.Printf("line %d: %s", oplErr.Line, oplErr.Msg)

				continue
			}

			log.Fatal(err)
		}

		switch e := entity.(type) {
		case model.Node:
			s.NodeCount++

			if e.Location.Valid() {
				if bbox == nil {
					bbox = model.InitialBoundingBox()
				}

				bbox.ExpandWithLatLng(e.Location.Lat.Degrees(), e.Location.Lon.Degrees())
			}
		case model.Way:
			s.WayCount++
		case model.Relation:
			s.RelationCount++
		}

		if changeset != nil {
			s.ChangesetCount++
		}
	}

	d.Stop()

	s.BoundingBox = bbox

	return s
}

func renderJSON(s *summary) {
	b, err := json.Marshal(s)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Fprint(out, string(b))
}

func renderTxt(s *summary) {
	fmt.Fprintf(out, "NodeCount: %s\n", humanize.Comma(s.NodeCount))
	fmt.Fprintf(out, "WayCount: %s\n", humanize.Comma(s.WayCount))
	fmt.Fprintf(out, "RelationCount: %s\n", humanize.Comma(s.RelationCount))
	fmt.Fprintf(out, "ChangesetCount: %s\n", humanize.Comma(s.ChangesetCount))

	if s.BoundingBox != nil {
		fmt.Fprintf(out, "BoundingBox: %s\n", s.BoundingBox)
	}
}

// openArg opens args[0] raw (no decompression yet, so the progress bar
// tracks the file's on-disk size), or returns stdin unwrapped if args is
// empty. The returned name is "" for stdin, which oplio.Decompress treats
// as an unrecognized extension and leaves alone.
func openArg(args []string) (name string, f *os.File, err error) {
	if len(args) == 1 {
		name = args[0]

		f, err = os.Open(name) //nolint:gosec // name is an operator-supplied path, not untrusted input

		return name, f, err
	}

	return "", os.Stdin, nil
}

// parseMask turns a string of entity letters (n, w, r, c) into an
// opl.EntityBits mask.
func parseMask(s string) (opl.EntityBits, error) {
	var mask opl.EntityBits

	for _, r := range s {
		switch r {
		case 'n':
			mask |= opl.NodeBit
		case 'w':
			mask |= opl.WayBit
		case 'r':
			mask |= opl.RelationBit
		case 'c':
			mask |= opl.ChangesetBit
		default:
			return 0, fmt.Errorf("unknown entity kind %q", r)
		}
	}

	return mask, nil
}
