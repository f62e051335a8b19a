package templates

import (
	"strings"
	"testing"
)

func TestTree(t *testing.T) {
	got := Tree([]string{
		"app/components",
		"app/components/ui",
		"app/components/forms",
		"app/lib",
		"public/assets/images",
		"docs",
	})
	want := []string{
		"app/",
		"├── components/",
		"│   ├── ui/",
		"│   └── forms/",
		"└── lib/",
		"public/",
		"└── assets/",
		"    └── images/",
		"docs/",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Errorf("Tree() =\n%s\nwant\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestTreeDeduplicates(t *testing.T) {
	got := Tree([]string{"a", "a/b", "a", "a/b"})
	want := []string{"a/", "└── b/"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Tree() = %v, want %v", got, want)
	}
}

func TestTreeEmpty(t *testing.T) {
	if got := Tree(nil); len(got) != 0 {
		t.Errorf("Tree(nil) = %v, want empty", got)
	}
}

func TestReadme(t *testing.T) {
	out, err := Readme(ReadmeData{Name: "my-app", Folders: []string{"app/lib", "docs"}})
	if err != nil {
		t.Fatalf("Readme() error: %v", err)
	}

	for _, want := range []string{
		"# 🚀 my-app\n",
		"## 📁 Project Structure",
		"app/\n└── lib/\ndocs/\n```",
		"npm run dev",
		"This project is licensed under the MIT License.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("README does not contain %q\n--- content ---\n%s", want, out)
		}
	}
}

func TestReadmeDefaultName(t *testing.T) {
	for _, name := range []string{"", "  ", ".", "/"} {
		out, err := Readme(ReadmeData{Name: name})
		if err != nil {
			t.Fatalf("Readme(%q) error: %v", name, err)
		}
		if !strings.HasPrefix(out, "# 🚀 "+DefaultProjectName+"\n") {
			t.Errorf("Readme(%q) title = %q", name, strings.SplitN(out, "\n", 2)[0])
		}
	}
}

func TestReadmeWithoutFolders(t *testing.T) {
	out, err := Readme(ReadmeData{Name: "bare"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Project Structure") {
		t.Error("structure section should be omitted when there are no folders")
	}
}
