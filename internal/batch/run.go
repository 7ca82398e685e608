package batch

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/deepharbor/substrip/internal/graph"
	"github.com/deepharbor/substrip/internal/messages"
	"github.com/deepharbor/substrip/internal/strip"
	"github.com/deepharbor/substrip/internal/subfile"
)

// Options configures one batch run.
type Options struct {
	// InputDir is scanned (non-recursively) for .sub files.
	InputDir string
	// OutputDir receives the stripped copies under their original names.
	OutputDir string
	// Strip selects the per-document passes.
	Strip strip.Options
	// DryRun renders diffs instead of writing output files.
	DryRun bool
	// DiffMaxLines caps the per-file diff in dry-run mode; zero means default.
	DiffMaxLines int
}

// FileResult is the outcome for a single input file.
type FileResult struct {
	Name  string
	Err   error
	Strip *strip.Result
	Diff  *DiffPreview
}

// Result is the outcome of the whole batch.
type Result struct {
	Files     []FileResult
	Processed int
	Failed    int
}

// Run processes every .sub file in the input directory. Per-file failures
// are reported on out and recorded, but only an unusable input directory or
// a fully failed batch yields an error.
func Run(sys System, out io.Writer, opts Options) (*Result, error) {
	if sys == nil {
		return nil, errors.New(messages.BatchSystemRequired)
	}

	names, err := listSubFiles(sys, opts.InputDir)
	if err != nil {
		return nil, err
	}

	if !opts.DryRun {
		if err := sys.MkdirAll(opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf(messages.BatchCreateOutputFmt, opts.OutputDir, err)
		}
	}

	result := &Result{}
	for _, name := range names {
		_, _ = fmt.Fprintf(out, messages.BatchProcessingFmt, name)
		fileResult := processFile(sys, out, opts, name)
		result.Files = append(result.Files, fileResult)
		if fileResult.Err != nil {
			result.Failed++
			_, _ = fmt.Fprintf(out, messages.BatchFileFailedFmt, name, color.RedString("%v", fileResult.Err))
			continue
		}
		result.Processed++
	}

	_, _ = fmt.Fprintf(out, messages.BatchSummaryFmt, result.Processed, result.Failed)
	if result.Processed == 0 && result.Failed > 0 {
		return result, errors.New(messages.BatchAllFailed)
	}
	return result, nil
}

// listSubFiles returns the sorted .sub file names in dir.
func listSubFiles(sys System, dir string) ([]string, error) {
	info, err := sys.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf(messages.BatchInputDirFmt, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf(messages.BatchInputDirFmt, dir, errors.New("not a directory"))
	}
	entries, err := sys.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf(messages.BatchInputDirFmt, dir, err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".sub") {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf(messages.BatchNoFilesFmt, dir)
	}
	return names, nil
}

// processFile runs the parse -> reset -> strip -> serialize pipeline for one
// file and either writes the output or renders a diff preview.
func processFile(sys System, out io.Writer, opts Options, name string) FileResult {
	fileResult := FileResult{Name: name}

	data, err := sys.ReadFile(filepath.Join(opts.InputDir, name))
	if err != nil {
		fileResult.Err = err
		return fileResult
	}
	doc, err := subfile.Decode(name, data)
	if err != nil {
		fileResult.Err = err
		return fileResult
	}

	var before []byte
	if opts.DryRun {
		// Serialize the untouched tree first so the diff reflects only what
		// stripping changed, not serializer formatting.
		if before, err = subfile.EncodeXML(doc); err != nil {
			fileResult.Err = err
			return fileResult
		}
	}

	sub, err := graph.Parse(doc)
	if err != nil {
		fileResult.Err = err
		return fileResult
	}

	stripResult := strip.Run(sub, opts.Strip)
	fileResult.Strip = stripResult
	report(out, opts, stripResult)

	if opts.DryRun {
		after, err := subfile.EncodeXML(sub.Document())
		if err != nil {
			fileResult.Err = err
			return fileResult
		}
		preview := buildDiffPreview(name, before, after, opts.DiffMaxLines)
		fileResult.Diff = &preview
		renderDiff(out, preview, normalizeDiffMaxLines(opts.DiffMaxLines))
		return fileResult
	}

	encoded, err := subfile.Encode(sub.Document())
	if err != nil {
		fileResult.Err = err
		return fileResult
	}
	outPath := filepath.Join(opts.OutputDir, name)
	if err := sys.WriteFileAtomic(outPath, encoded, 0o644); err != nil {
		fileResult.Err = fmt.Errorf(messages.SubfileWriteFailedFmt, outPath, err)
		return fileResult
	}
	_, _ = fmt.Fprintf(out, messages.BatchWroteFmt, outPath)
	return fileResult
}

// report prints the per-file pass counters and warnings.
func report(out io.Writer, opts Options, result *strip.Result) {
	if opts.Strip.StripUpgrades {
		_, _ = fmt.Fprintf(out, messages.BatchRevertedFmt, result.AttributesReverted, result.UpgradeRecordsRemoved)
		_, _ = fmt.Fprintf(out, messages.BatchStackStatsFmt, result.StackStatsRemoved)
	}
	if opts.Strip.StripItems {
		_, _ = fmt.Fprintf(out, messages.BatchItemsRemovedFmt, result.ItemsRemoved, result.ItemsKept)
	}
	for _, w := range result.Warnings {
		_, _ = fmt.Fprintln(out, color.YellowString("%s", w.String()))
	}
}

func renderDiff(out io.Writer, preview DiffPreview, maxLines int) {
	_, _ = fmt.Fprintf(out, messages.BatchDryRunHeaderFmt, preview.Path)
	if preview.Empty() {
		_, _ = fmt.Fprint(out, messages.BatchNoChangesFmt)
		return
	}
	_, _ = fmt.Fprint(out, preview.UnifiedDiff)
	if preview.Truncated {
		_, _ = fmt.Fprintf(out, messages.BatchDiffTruncatedFmt, maxLines)
	}
}
