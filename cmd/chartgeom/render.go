// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"

	"cogentcore.org/chartgeom/chart"
	"cogentcore.org/chartgeom/config"
	"cogentcore.org/chartgeom/export/rasterexport"
	"cogentcore.org/chartgeom/export/svgexport"
	"cogentcore.org/chartgeom/geom"
	"cogentcore.org/core/math32"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	output        string
	config        string
	width, height int
	watch         bool
}

func newRenderCmd() *cobra.Command {
	fl := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render document...",
		Short: "Render chart documents to SVG or raster images",
		Long: `Render lays out each chart document (TOML, YAML or JSON) and writes it
in the format of the output extension: .svg, or a raster format such as .png.
With several documents, the output is a directory receiving one file per
document, named after it. Without an output, a single document is written
to stdout as SVG. With --watch, the documents are rendered again whenever
they or the options file change, until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runRender(cmd, fl, args)
			if !fl.watch {
				return err
			}
			if err != nil {
				slog.Error(err.Error())
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			files, err := watchFiles(fl.config, args)
			if err != nil {
				return err
			}
			return watch(ctx, files, func() {
				if err := runRender(cmd, fl, args); err != nil {
					slog.Error(err.Error())
				}
			})
		},
	}
	cmd.Flags().StringVarP(&fl.output, "output", "o", "", "output file, or directory for several documents")
	cmd.Flags().StringVarP(&fl.config, "config", "c", "", "options file applied before each document's options")
	cmd.Flags().IntVar(&fl.width, "width", 800, "image width in pixels")
	cmd.Flags().IntVar(&fl.height, "height", 600, "image height in pixels")
	cmd.Flags().BoolVarP(&fl.watch, "watch", "w", false, "render again when the inputs change")
	return cmd
}

// watchFiles returns the documents and the options file, if any,
// with a leading ~ expanded.
func watchFiles(options string, docs []string) ([]string, error) {
	files := slices.Clone(docs)
	if options != "" {
		files = append(files, options)
	}
	for i, fn := range files {
		ex, err := homedir.Expand(fn)
		if err != nil {
			return nil, err
		}
		files[i] = ex
	}
	return files, nil
}

func runRender(cmd *cobra.Command, fl *renderFlags, docs []string) error {
	if fl.width <= 0 || fl.height <= 0 {
		return fmt.Errorf("invalid size %dx%d", fl.width, fl.height)
	}
	defaults, err := openOptions(fl.config)
	if err != nil {
		return err
	}
	charts := make([]chart.Chart, len(docs))
	output, err := homedir.Expand(fl.output)
	if err != nil {
		return err
	}
	for i, fn := range docs {
		if fn, err = homedir.Expand(fn); err != nil {
			return err
		}
		doc, err := config.OpenDocument(fn)
		if err != nil {
			return err
		}
		ch, err := doc.BuildWith(defaults)
		if ch == nil {
			return fmt.Errorf("%s: %w", fn, err)
		}
		if err != nil {
			slog.Warn("dropped invalid records", "document", fn, "err", err)
		}
		charts[i] = ch
	}
	rect := math32.B2(0, 0, float32(fl.width), float32(fl.height))
	drawings, err := chart.LayoutAll(cmd.Context(), rect, charts...)
	if err != nil {
		return err
	}

	if output == "" {
		if len(docs) > 1 {
			return fmt.Errorf("an output directory is needed for %d documents", len(docs))
		}
		return svgexport.Write(cmd.OutOrStdout(), drawings[0], fl.width, fl.height)
	}
	if len(docs) == 1 {
		return writeDrawing(drawings[0], fl, output)
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return err
	}
	for i, fn := range docs {
		base := strings.TrimSuffix(filepath.Base(fn), filepath.Ext(fn))
		if err := writeDrawing(drawings[i], fl, filepath.Join(output, base+".svg")); err != nil {
			return err
		}
	}
	return nil
}

// writeDrawing writes d to the file in the format of its extension.
func writeDrawing(d *geom.Drawing, fl *renderFlags, filename string) error {
	slog.Info("writing", "file", filename, "items", d.Len())
	if strings.EqualFold(filepath.Ext(filename), ".svg") {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := svgexport.Write(f, d, fl.width, fl.height); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return rasterexport.Save(d, fl.width, fl.height, filename)
}
