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
	"io"
	"strings"
	"text/tabwriter"

	"dirpx.dev/cerrors"
	"dirpx.dev/cerrors/adapter"
	"dirpx.dev/cerrors/config"
	"dirpx.dev/cerrors/mapper"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
)

func newKindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List known statuses with their kind, default message and gRPC code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := mapper.New()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "CODE\tKIND\tMESSAGE\tGRPC")
			for _, k := range cerrors.Kinds() {
				msg := k.New(&cerrors.Response{Code: k.Code()}).Message()
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", k.Code(), k.Name(), msg, m.GRPCStatus(k.Code()))
			}
			_, _ = fmt.Fprintf(tw, "*\t%s\t%s\t%s\n", cerrors.RequestFailed.Name(), "HTTP status code {code}", "-")
			return tw.Flush()
		},
	}
}

func newClassifyCmd() *cobra.Command {
	var (
		code    int
		body    string
		headers []string
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a synthetic response",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := parseHeaders(headers)
			if err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			m, err := mapper.New()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			e := cerrors.Dispatch(&cerrors.Response{Code: code, Headers: h, Body: []byte(body)})
			printClassification(out, e)
			_, _ = fmt.Fprintln(out, m.Explain(code))

			info, err := protojson.Marshal(adapter.ToErrorInfo(e, cfg.Domain))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(out, "errorinfo: %s\n", info)
			return nil
		},
	}
	cmd.Flags().IntVarP(&code, "code", "c", 0, "HTTP status code (required)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Response body")
	cmd.Flags().StringArrayVarP(&headers, "header", "H", nil, "Response header as key=value (repeatable)")
	_ = cmd.MarkFlagRequired("code")
	return cmd
}

func parseHeaders(kvs []string) (map[string]string, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	h := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("invalid --header %q, want key=value", kv)
		}
		h[k] = v
	}
	return h, nil
}

func printClassification(w io.Writer, e cerrors.Error) {
	name := "?"
	if k, ok := cerrors.KindOf(e); ok {
		name = k.String()
	}
	_, _ = fmt.Fprintf(w, "kind:     %s\n", name)
	_, _ = fmt.Fprintf(w, "message:  %s\n", e.Message())
	_, _ = fmt.Fprintf(w, "describe: %s\n", e.Describe())
	if errors.Is(e, cerrors.RequestFailed) {
		if c, ok := e.HTTPCode(); ok {
			_, _ = fmt.Fprintf(w, "status:   %d\n", c)
		}
	}
}
