// SPDX-FileCopyrightText: 2026 The Crossplane Authors <https://crossplane.io>
//
// SPDX-License-Identifier: Apache-2.0

package sorter

import (
	"path/filepath"
	"testing"

	"github.com/crossplane/crossplane-runtime/v2/pkg/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"

	"github.com/wc-toolkit/cem-sorter/pkg/config"
	xperrors "github.com/wc-toolkit/cem-sorter/pkg/errors"
	"github.com/wc-toolkit/cem-sorter/pkg/manifest"
)

func TestRunPersists(t *testing.T) {
	doc := map[string]any{
		"modules": []any{
			map[string]any{"path": "z.js"},
			map[string]any{"path": "a.js"},
		},
	}
	sortedJSON := `{
  "modules": [
    {
      "path": "a.js"
    },
    {
      "path": "z.js"
    }
  ]
}`
	type args struct {
		opts   config.Options
		format manifest.Format
		fs     func() afero.Fs
	}
	type want struct {
		path     string
		contents string
		ioErr    bool
	}
	cases := map[string]struct {
		reason string
		args
		want
	}{
		"NestedOutDir": {
			reason: "The output directory should be created and the manifest written as indented JSON.",
			args: args{
				opts: config.Options{FileName: "custom-elements.json", OutDir: "dist/meta"},
				fs:   afero.NewMemMapFs,
			},
			want: want{
				path:     filepath.Join("dist", "meta", "custom-elements.json"),
				contents: sortedJSON,
			},
		},
		"CurrentDir": {
			reason: "The current directory is used as is.",
			args: args{
				opts: config.Options{FileName: "sorted.json", OutDir: config.DefaultOutDir},
				fs:   afero.NewMemMapFs,
			},
			want: want{
				path:     "sorted.json",
				contents: sortedJSON,
			},
		},
		"YAML": {
			reason: "The configured format should be used for the file.",
			args: args{
				opts:   config.Options{FileName: "custom-elements.yaml", OutDir: "out"},
				format: manifest.FormatYAML,
				fs:     afero.NewMemMapFs,
			},
			want: want{
				path:     filepath.Join("out", "custom-elements.yaml"),
				contents: "modules:\n- path: a.js\n- path: z.js\n",
			},
		},
		"NoFileName": {
			reason: "Nothing is written unless both a file name and an output directory are set.",
			args: args{
				opts: config.Options{OutDir: "out"},
				fs:   afero.NewMemMapFs,
			},
		},
		"ReadOnly": {
			reason: "A failing write should surface as an IO error along with the sorted manifest.",
			args: args{
				opts: config.Options{FileName: "custom-elements.json", OutDir: "out"},
				fs: func() afero.Fs {
					return afero.NewReadOnlyFs(afero.NewMemMapFs())
				},
			},
			want: want{ioErr: true},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			fs := tc.args.fs()
			opts := []Option{WithLogger(logging.NewNopLogger()), WithFs(fs)}
			if tc.args.format != "" {
				opts = append(opts, WithFormat(tc.args.format))
			}
			r, err := New(opts...).Run(doc, tc.args.opts)
			if diff := cmp.Diff(tc.want.ioErr, xperrors.IsIO(err)); diff != "" {
				t.Fatalf("\n%s\nRun(...): -wantIOErr, +gotIOErr:\n%s\nerr: %v", tc.reason, diff, err)
			}
			if !tc.want.ioErr && err != nil {
				t.Fatalf("\n%s\nRun(...): unexpected error: %v", tc.reason, err)
			}
			if diff := cmp.Diff([]string{"a.js", "z.js"}, names(t, r.Manifest, "modules", FieldPath)); diff != "" {
				t.Errorf("\n%s\nRun(...): the sorted manifest should be returned: -want, +got:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.want.path, r.Path); diff != "" {
				t.Errorf("\n%s\nRun(...): -wantPath, +gotPath:\n%s", tc.reason, diff)
			}
			if tc.want.path == "" {
				return
			}
			b, err := afero.ReadFile(fs, tc.want.path)
			if err != nil {
				t.Fatalf("\n%s\ncannot read the written manifest: %v", tc.reason, err)
			}
			if diff := cmp.Diff(tc.want.contents, string(b)); diff != "" {
				t.Errorf("\n%s\nRun(...): -wantContents, +gotContents:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestRunSkipDoesNotPersist(t *testing.T) {
	fs := afero.NewMemMapFs()
	doc := map[string]any{"modules": []any{map[string]any{"path": "z.js"}, map[string]any{"path": "a.js"}}}
	r, err := New(WithLogger(logging.NewNopLogger()), WithFs(fs)).Run(doc, config.Options{Skip: true, FileName: "out.json", OutDir: "dist"})
	if err != nil {
		t.Fatalf("Run(...): unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"z.js", "a.js"}, names(t, r.Manifest, "modules", FieldPath)); diff != "" {
		t.Errorf("Run(...) with skip should return the unsorted copy: -want, +got:\n%s", diff)
	}
	if diff := cmp.Diff("", r.Path); diff != "" {
		t.Errorf("Run(...) with skip should not persist: -want, +got:\n%s", diff)
	}
	for _, p := range []string{filepath.Join("dist", "out.json"), "dist"} {
		if ok, _ := afero.Exists(fs, p); ok {
			t.Errorf("Run(...) with skip should not create %s", p)
		}
	}
}
