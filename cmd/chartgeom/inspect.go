// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"cogentcore.org/chartgeom/config"
	"cogentcore.org/chartgeom/scale"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

func newTicksCmd() *cobra.Command {
	var (
		typ      string
		min, max float64
		count    int
	)
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the ticks and labels of an axis range",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ax := scale.Axis{Min: min, Max: max}
			if err := ax.Type.SetString(typ); err != nil {
				return err
			}
			for _, v := range ax.Ticks(count) {
				fmt.Fprintf(cmd.OutOrStdout(), "%g\t%s\n", v, ax.Type.FormatTick(v))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typ, "scale", "s", "Linear", "scale type: Linear, Log, SymLog or Time")
	cmd.Flags().Float64Var(&min, "min", 0, "range minimum")
	cmd.Flags().Float64Var(&max, "max", 1, "range maximum")
	cmd.Flags().IntVarP(&count, "count", "n", 5, "target tick count")
	return cmd
}

func newColormapsCmd() *cobra.Command {
	var (
		cfgFile string
		samples int
	)
	cmd := &cobra.Command{
		Use:   "colormaps",
		Short: "List the colormap names, optionally with sampled colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := openOptions(cfgFile)
			if err != nil {
				return err
			}
			rg := opts.Registry()
			for _, name := range rg.Names() {
				if samples < 2 {
					fmt.Fprintln(cmd.OutOrStdout(), name)
					continue
				}
				cm := rg.Get(name)
				hex := make([]string, samples)
				for i := range hex {
					c := config.Color{RGBA: cm.Sample(float64(i) / float64(samples-1))}
					b, _ := c.MarshalText()
					hex[i] = string(b)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, strings.Join(hex, " "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&cfgFile, "config", "c", "", "options file with extra colormaps")
	cmd.Flags().IntVar(&samples, "samples", 0, "number of evenly spaced colors to print per map")
	return cmd
}

// openOptions reads the options file, or returns nil options for
// an empty name.
func openOptions(filename string) (*config.Options, error) {
	if filename == "" {
		return nil, nil
	}
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	opts := &config.Options{}
	if err := config.Open(opts, filename); err != nil {
		return nil, err
	}
	return opts, nil
}
