/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/qerror/message"
)

var errNoDiagnostic = errors.New("no Code(N) diagnostic found")

func newDecodeCmd(*app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [diagnostic...]",
		Short: "`decode` expands Code(N) diagnostics into their full text",
		Long: "`decode` expands Code(N) diagnostics into their full text. " +
			"Without arguments it reads log lines from stdin and expands every line carrying a diagnostic.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				c, ok := message.Decode(strings.Join(args, " "))
				if !ok {
					return errNoDiagnostic
				}
				_, err := fmt.Fprintln(out, message.Resolve(message.Verbose, c))
				return err
			}
			return decodeStream(cmd.InOrStdin(), out)
		},
	}
}

func decodeStream(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		c, ok := message.Decode(sc.Text())
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(out, message.Resolve(message.Verbose, c)); err != nil {
			return err
		}
	}
	return sc.Err()
}
