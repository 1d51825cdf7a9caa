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
	"errors"
	"fmt"

	"dirpx.dev/cerrors"
	"dirpx.dev/cerrors/config"
	"dirpx.dev/cerrors/restyx"
	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get URL",
		Short: "GET a URL and print how the response is classified",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := cfg.LoggerTo(cmd.ErrOrStderr())
			client := restyx.Attach(resty.New().SetTimeout(cfg.Timeout),
				restyx.WithLogger(logger),
				restyx.WithMaxBodyBytes(int(cfg.MaxBodyBytes)),
				restyx.WithExceptions(cerrors.NewExceptionsMap(cerrors.WithLogger(logger))),
			)

			resp, err := restyx.Execute(client.R().SetContext(cmd.Context()), resty.MethodGet, args[0])
			out := cmd.OutOrStdout()
			var ce cerrors.Error
			switch {
			case err == nil:
				_, _ = fmt.Fprintf(out, "%s\n", resp.Status())
				return nil
			case errors.As(err, &ce):
				printClassification(out, ce)
				return err
			default:
				logger.Error().Err(err).Str("url", args[0]).Msg("request failed")
				return err
			}
		},
	}
}
