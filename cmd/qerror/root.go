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
	"github.com/spf13/cobra"

	"dirpx.dev/qerror/apis"
	"dirpx.dev/qerror/config"
	"dirpx.dev/qerror/message"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	configPath string
	mode       string

	cfg    config.Config
	mapper apis.Mapper
}

func (a *app) load(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.mode != "" {
		m, err := message.ParseMode(a.mode)
		if err != nil {
			return err
		}
		cfg.Mode = m
	}
	m, err := cfg.Mapper()
	if err != nil {
		return err
	}
	a.cfg, a.mapper = cfg, m
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:               "qerror",
		Short:             "`qerror` inspects the diagnostic code registry",
		Long:              "`qerror` lists registry codes, explains their transport mapping and decodes Code(N) diagnostics",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		Run: func(cmd *cobra.Command, args []string) {
			// nolint:errcheck
			cmd.Usage()
		},
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "configuration file (yaml, json or toml)")
	root.PersistentFlags().StringVarP(&a.mode, "mode", "m", "", "diagnostic mode, overrides the configuration (verbose or terse)")

	root.AddCommand(
		newListCmd(a),
		newExplainCmd(a),
		newDecodeCmd(a),
		newRaiseCmd(a),
	)
	return root
}
