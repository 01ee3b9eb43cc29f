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

	"dirpx.dev/qerror/code"
)

func newRaiseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "raise <code|name> [part...]",
		Short: "`raise` reports a code through the configured log backend",
		Long: "`raise` reports a code through the configured log backend, " +
			"which is handy for checking that a log pipeline picks diagnostics up.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := code.Parse(args[0])
			if err != nil {
				return err
			}
			if a.cfg.Log.Console == nil {
				a.cfg.Log.Console = cmd.ErrOrStderr()
			}
			r, l, err := a.cfg.Raiser()
			if err != nil {
				return err
			}
			// nolint:errcheck
			defer l.Close()

			parts := make([]any, 0, len(args)-1)
			for _, p := range args[1:] {
				parts = append(parts, p)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), r.Raise(c, parts...).Message)
			return err
		},
	}
}
