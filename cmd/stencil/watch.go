// seehuhn.de/go/stencil - turn photos into cuttable stencil outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"seehuhn.de/go/stencil"
	"seehuhn.de/go/stencil/internal/config"
)

var watchOut string

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Convert images as they appear in a directory",
	Long: `Watch converts every image which is created or changed in the given
directory, writing the stencils to the output directory.  It runs until
interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchOut, "out", "", "directory for the converted stencils")
	_ = watchCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(watchOut, 0o755); err != nil {
		return err
	}
	return watch(cmd.Context(), cfg, args[0], watchOut, func(in, out string) {
		cmd.Printf("%s -> %s\n", in, out)
	})
}

// watch converts images written to dir until the context is cancelled.
// The callback is called after every successful conversion.
func watch(ctx context.Context, c *config.Config, dir, outDir string, done func(in, out string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return err
	}

	log := stencil.Logger().With("dir", dir)
	log.Debug("watching")
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !isImage(ev.Name) {
				continue
			}

			// Files may be seen before they are completely written.  A
			// failed conversion is retried on the next write event.
			doc, err := convertFile(ctx, c, ev.Name)
			if err != nil {
				log.Warn("conversion failed", "file", ev.Name, "error", err)
				continue
			}
			out := outputName(ev.Name, outDir)
			if err := writeSVG(out, doc); err != nil {
				log.Warn("cannot write stencil", "file", out, "error", err)
				continue
			}
			done(ev.Name, out)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		}
	}
}

func isImage(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp":
		return true
	}
	return false
}
