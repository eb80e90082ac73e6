// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/spf13/afero"

	"github.com/wc-toolkit/cem-sorter/pkg/config"
	"github.com/wc-toolkit/cem-sorter/pkg/manifest"
)

func main() {
	var (
		app            = kingpin.New(filepath.Base(os.Args[0]), "Sorts a Custom Elements Manifest into canonical order so that regenerated manifests diff cleanly.").DefaultEnvars()
		input          = app.Arg("manifest", "Manifest file to sort, in JSON or YAML. Reads from stdin if omitted or -.").String()
		configFile     = app.Flag("config", "YAML or JSON file with the sort options. Command line flags take precedence.").Short('c').String()
		outDir         = app.Flag("out-dir", "Directory the sorted manifest is written to. Defaults to "+config.DefaultOutDir+".").Short('o').String()
		fileName       = app.Flag("file-name", "Name of the file the sorted manifest is written to. Defaults to "+config.DefaultFileName+".").Short('f').String()
		deprecatedLast = app.Flag("deprecated-last", "Place deprecated entities after all others in their collection.").Bool()
		customFields   = app.Flag("custom-field", "Additional array field of declarations to sort by name. Repeatable.").Strings()
		skip           = app.Flag("skip", "Copy the manifest without sorting it.").Bool()
		debug          = app.Flag("debug", "Output debug messages").Short('d').Bool()
		format         = app.Flag("format", "Output format.").Default(string(manifest.FormatJSON)).Enum(manifest.Formats...)
		toStdout       = app.Flag("stdout", "Write the sorted manifest to stdout instead of a file.").Bool()
		check          = app.Flag("check", "Do not write anything and fail if the manifest is not in canonical order.").Bool()
		printMetrics   = app.Flag("metrics", "Print sort statistics in the Prometheus text format to stderr.").Bool()
	)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	c := &command{
		fs:         afero.NewOsFs(),
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		input:      *input,
		configFile: *configFile,
		opts: config.Options{
			FileName:       *fileName,
			OutDir:         *outDir,
			DeprecatedLast: *deprecatedLast,
			CustomFields:   *customFields,
			Skip:           *skip,
			Debug:          *debug,
		},
		format:   manifest.Format(*format),
		toStdout: *toStdout,
		check:    *check,
		metrics:  *printMetrics,
	}
	kingpin.FatalIfError(c.run(), "Failed to sort the custom elements manifest")
}
