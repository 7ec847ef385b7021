package markdown

import "testing"

func TestDeriveName(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{path: "notes.md", want: "notes.html"},
		{path: "notes.v2.md", want: "notes.html"},
		{path: "README", want: "README.html"},
		{path: "docs/help/repl.md", want: "repl.html"},
		{path: "/abs/path/to/config-options.markdown", want: "config-options.html"},
		{path: "docs/help/", want: "help.html"},
		{path: "README.", want: "README.html"},
		{path: ".hidden.md", want: ".html"},
		{path: "", want: ""},
	}

	for _, tc := range cases {
		if got := DeriveName(tc.path); got != tc.want {
			t.Fatalf("DeriveName(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestNewJob(t *testing.T) {
	job := NewJob("docs/notes.v2.md", "out/helper")

	if job.SourcePath != "docs/notes.v2.md" {
		t.Fatalf("unexpected source path %q", job.SourcePath)
	}
	if job.OutputDir != "out/helper" {
		t.Fatalf("unexpected output dir %q", job.OutputDir)
	}
	if job.DerivedName != "notes.html" {
		t.Fatalf("unexpected derived name %q", job.DerivedName)
	}
}
