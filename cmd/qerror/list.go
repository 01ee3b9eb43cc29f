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
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/qerror/adapter"
	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/code"
	"dirpx.dev/qerror/message"
)

func newListCmd(a *app) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "`list` prints every registered code with its name and text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				all := make([]apis.ErrorDescriptor, 0, code.Count)
				for _, c := range code.All() {
					all = append(all, adapter.ToDescriptor(c, a.mapper))
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(all)
			}
			for _, c := range code.All() {
				text := strings.ReplaceAll(message.Lookup(c), "\n", " ")
				if _, err := fmt.Fprintf(out, "%2d  %-40s %s\n", int(c), c.Name(), text); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print descriptors as JSON")
	return cmd
}
