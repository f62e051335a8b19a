package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/scaffold-next/scaffold-next/internal/oplog"
	"github.com/scaffold-next/scaffold-next/internal/templates"
)

// ReadmeFile is the name of the README written at the target root.
const ReadmeFile = "README.md"

// Permission constants.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
)

// ErrConflict is wrapped by folder errors when a segment of the path
// already exists as something other than a directory.
var ErrConflict = errors.New("path exists and is not a directory")

// Logger records operation messages. Implementations must not fail or block
// the run; errors are theirs to handle.
type Logger interface {
	Log(message string)
}

// Kind identifies what an Outcome refers to.
type Kind string

const (
	KindFolder Kind = "folder"
	KindFile   Kind = "file"
)

// Options controls a single run. The zero value does not write a README;
// use DefaultOptions for the command-line defaults.
type Options struct {
	Preview bool // Report the plan without touching the filesystem
	Readme  bool // Write README.md at the target root
}

// DefaultOptions returns {Preview: false, Readme: true}.
func DefaultOptions() Options {
	return Options{Readme: true}
}

// Stats counts what a run did.
type Stats struct {
	FoldersCreated int
	FilesCreated   int
	Errors         int
}

// Outcome is the result of one attempted folder or file.
type Outcome struct {
	Kind Kind
	Path string // Relative to Result.Root
	Err  error
}

// OK reports whether the item was created.
func (o Outcome) OK() bool { return o.Err == nil }

// Conflict reports whether the item failed because of an existing non-directory.
func (o Outcome) Conflict() bool { return errors.Is(o.Err, ErrConflict) }

// Result holds the outcome of a scaffold run.
type Result struct {
	Root     string   // Resolved absolute target directory
	Preview  bool     // True when nothing was written
	Readme   bool     // Whether README.md was (or would be) written
	Planned  []string // Folder list in creation order
	Stats    Stats
	Outcomes []Outcome // Attempt order; empty in preview
}

// Config wires the executor's collaborators. Nil fields get defaults.
type Config struct {
	// Logger receives one message per folder/file operation. Default: discard.
	Logger Logger
	// Readme renders README text. Default: templates.Readme.
	Readme func(templates.ReadmeData) (string, error)
	// FS returns a filesystem rooted at the resolved target. Default: osfs.
	FS func(root string) billy.Filesystem
	// Resolve turns the target argument into an absolute path. Default: filepath.Abs.
	Resolve func(target string) (string, error)
	// Progress is called after every attempted item, in order.
	Progress func(Outcome)
}

// Executor creates a folder structure under a target directory.
type Executor struct {
	cfg Config
}

// New returns an Executor with defaults filled in for nil collaborators.
func New(cfg Config) *Executor {
	if cfg.Logger == nil {
		cfg.Logger = oplog.Nop{}
	}
	if cfg.Readme == nil {
		cfg.Readme = templates.Readme
	}
	if cfg.FS == nil {
		cfg.FS = func(root string) billy.Filesystem { return osfs.New(root) }
	}
	if cfg.Resolve == nil {
		cfg.Resolve = filepath.Abs
	}
	return &Executor{cfg: cfg}
}

// Execute creates every entry of folders under targetPath, in order, then
// writes README.md when opts.Readme is set. Per-item failures are counted in
// Stats and recorded in Outcomes without stopping the run; only a failure to
// resolve targetPath is returned as an error. In preview mode nothing is
// written and Stats stay zero.
func (e *Executor) Execute(targetPath string, opts Options, folders []string) (*Result, error) {
	result, err := e.Plan(targetPath, opts, folders)
	if err != nil {
		return nil, err
	}
	if opts.Preview {
		return result, nil
	}
	root := result.Root
	result.Preview = false

	fsys := e.cfg.FS(root)

	for _, folder := range folders {
		err := createFolder(fsys, folder)
		if err != nil {
			result.Stats.Errors++
			e.cfg.Logger.Log(fmt.Sprintf("ERROR: could not create %s - %v", folder, err))
		} else {
			result.Stats.FoldersCreated++
			e.cfg.Logger.Log("Created folder: " + folder)
		}
		e.record(result, Outcome{Kind: KindFolder, Path: folder, Err: err})
	}

	if opts.Readme {
		err := e.writeReadme(fsys, root, folders)
		if err != nil {
			result.Stats.Errors++
			e.cfg.Logger.Log(fmt.Sprintf("ERROR: could not create %s - %v", ReadmeFile, err))
		} else {
			result.Stats.FilesCreated++
			e.cfg.Logger.Log("Created " + ReadmeFile)
		}
		e.record(result, Outcome{Kind: KindFile, Path: ReadmeFile, Err: err})
	}

	return result, nil
}

// Plan resolves targetPath and returns what Execute would do, without
// touching the filesystem. The returned Result has Preview set and zero Stats.
func (e *Executor) Plan(targetPath string, opts Options, folders []string) (*Result, error) {
	root, err := e.cfg.Resolve(targetPath)
	if err != nil {
		return nil, fmt.Errorf("resolving target path %q: %w", targetPath, err)
	}
	return &Result{
		Root:    root,
		Preview: true,
		Readme:  opts.Readme,
		Planned: append([]string(nil), folders...),
	}, nil
}

func (e *Executor) record(result *Result, o Outcome) {
	result.Outcomes = append(result.Outcomes, o)
	if e.cfg.Progress != nil {
		e.cfg.Progress(o)
	}
}

func (e *Executor) writeReadme(fsys billy.Filesystem, root string, folders []string) error {
	content, err := e.cfg.Readme(templates.ReadmeData{
		Name:    filepath.Base(root),
		Folders: folders,
	})
	if err != nil {
		return err
	}
	return util.WriteFile(fsys, ReadmeFile, []byte(content), FilePerm)
}

// createFolder is an idempotent recursive mkdir. Existing directories are
// not an error.
func createFolder(fsys billy.Filesystem, folder string) error {
	err := fsys.MkdirAll(folder, DirPerm)
	if err == nil {
		return nil
	}
	if p, ok := conflictAt(fsys, folder); ok {
		return fmt.Errorf("%w: %s: %v", ErrConflict, p, err)
	}
	return err
}

// conflictAt returns the first prefix of folder that exists as a non-directory.
func conflictAt(fsys billy.Filesystem, folder string) (string, bool) {
	segs := strings.Split(path.Clean(folder), "/")
	for i := range segs {
		p := path.Join(segs[:i+1]...)
		info, err := fsys.Stat(p)
		if err != nil {
			return "", false
		}
		if !info.IsDir() {
			return p, true
		}
	}
	return "", false
}
