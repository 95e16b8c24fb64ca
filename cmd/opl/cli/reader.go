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

package cli

import (
	"os"

	"github.com/spf13/pflag"
)

// writerValue is a pflag.Value for a flag that names a file to create and
// write to, such as validate's --report.
type writerValue struct {
	value    **os.File
	typename string
}

// NewWriterValue creates a pflag.Value for an *os.File output flag,
// defaulting *p to def until Set is called.
func NewWriterValue(def *os.File, p **os.File, typename string) pflag.Value {
	wv := &writerValue{value: p, typename: typename}
	*wv.value = def

	return wv
}

func (w *writerValue) Set(val string) error {
	f, err := os.Create(val) //nolint:gosec // val is an operator-supplied path, not untrusted input
	if err != nil {
		return err
	}

	*w.value = f

	return nil
}

func (w *writerValue) Type() string {
	return w.typename
}

func (w *writerValue) String() string {
	if *w.value == nil {
		return ""
	}

	return (*w.value).Name()
}
