package patcher

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"

	"github.com/docsdk/go-dictsync/pkg/filesys"
)

const (
	// SpellJSPath is the one fixed candidate, relative to the SDK root.
	SpellJSPath = "common/spell/spell.js"

	bundleMinName = "sdk-all-min.js"
	bundleName    = "sdk-all.js"

	backupSuffix = ".bak"
)

type Outcome int

const (
	// OutcomeMissing means the candidate does not exist on disk.
	OutcomeMissing Outcome = iota
	// OutcomeNoMarker means the file exists but has no splice point.
	OutcomeNoMarker
	// OutcomeUnchanged means the splice produced identical content,
	// typically on a re-run with the same catalog.
	OutcomeUnchanged
	// OutcomePatched means the file was rewritten.
	OutcomePatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMissing:
		return "missing"
	case OutcomeNoMarker:
		return "no-marker"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomePatched:
		return "patched"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result records what happened to one candidate file. Checksum is the
// xxh3 digest of the file content after the run, empty for candidates
// that were never read.
type Result struct {
	Path     string
	Outcome  Outcome
	Checksum string
}

// Patcher splices the serialized catalog into every candidate bundle
// under the SDK root. Patching is best-effort across the candidate
// set: unmatched or absent candidates are skipped, never failed.
type Patcher struct {
	sdkDir  string
	payload string
	backup  bool
}

type Option func(*Patcher)

// WithBackup copies each file to `<file>.bak` before rewriting it.
func WithBackup() Option {
	return func(p *Patcher) {
		p.backup = true
	}
}

func New(sdkDir string, catalogJSON []byte, options ...Option) *Patcher {
	p := &Patcher{
		sdkDir:  sdkDir,
		payload: string(catalogJSON),
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Candidates enumerates the bundle files eligible for patching:
// the fixed spell.js, then both all-in-one bundle variants of every
// editor subdirectory that actually has them. Editor directories are
// visited in sorted name order.
func (p *Patcher) Candidates() []string {
	files := []string{filepath.Join(p.sdkDir, filepath.FromSlash(SpellJSPath))}

	entries, err := os.ReadDir(p.sdkDir)
	if err != nil {
		return files
	}
	for _, e := range entries {
		editorDir := filepath.Join(p.sdkDir, e.Name())
		if !filesys.IsDir(editorDir) {
			continue
		}
		for _, base := range []string{bundleMinName, bundleName} {
			if candidate := filepath.Join(editorDir, base); filesys.IsFile(candidate) {
				files = append(files, candidate)
			}
		}
	}
	return files
}

// Run patches every candidate and returns the per-file results. An
// error is returned only for I/O failures on files that exist; a
// candidate without a splice point is reported, not failed.
func (p *Patcher) Run() ([]Result, error) {
	var results []Result
	for _, path := range p.Candidates() {
		res, err := p.patchFile(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("Patch candidate processed",
			slog.String("path", res.Path),
			slog.String("outcome", res.Outcome.String()))
		results = append(results, res)
	}
	return results, nil
}

func (p *Patcher) patchFile(path string) (Result, error) {
	res := Result{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return res, nil
		}
		return res, fmt.Errorf("stat bundle %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return res, fmt.Errorf("read bundle %s: %w", path, err)
	}

	patched, ok := Splice(string(data), p.payload)
	if !ok {
		res.Outcome = OutcomeNoMarker
		res.Checksum = filesys.ChecksumBytes(data)
		return res, nil
	}
	res.Checksum = filesys.ChecksumBytes([]byte(patched))
	if res.Checksum == filesys.ChecksumBytes(data) {
		res.Outcome = OutcomeUnchanged
		return res, nil
	}

	if p.backup {
		if err := copy.Copy(path, path+backupSuffix); err != nil {
			return res, fmt.Errorf("back up bundle %s: %w", path, err)
		}
	}
	if err := os.WriteFile(path, []byte(patched), info.Mode().Perm()); err != nil {
		return res, fmt.Errorf("write bundle %s: %w", path, err)
	}
	res.Outcome = OutcomePatched
	return res, nil
}

// Summarize tallies results by outcome for log reporting.
func Summarize(results []Result) map[Outcome]int {
	counts := make(map[Outcome]int)
	for _, r := range results {
		counts[r.Outcome]++
	}
	return counts
}
