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
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"dirpx.dev/qerror"
	"dirpx.dev/qerror/adapter"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/message"
)

func newExplainCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "explain <code|name>",
		Short: "`explain` shows the text and transport mapping of a code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				e := &qerror.Error{Code: c, Message: message.Resolve(a.cfg.Mode, c)}
				b, err := protojson.MarshalOptions{Multiline: true}.Marshal(adapter.ToStatus(e, a.mapper.Status(c)))
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}
			_, err = fmt.Fprintf(out, "%s\n%s\n", message.Resolve(message.Verbose, c), a.mapper.Explain(c))
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the google.rpc.Status a server would send")
	return cmd
}
