// SPDX-License-Identifier: MPL-2.0

package uibuild

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"time"

	"aab-cli/internal/config"
	"aab-cli/internal/shell"
	"aab-cli/pkg/fspath"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

const (
	// DefaultRoot is the distribution directory the build operates in,
	// relative to the project root.
	DefaultRoot = "dist"

	// compiledExt is the extension of compiled output modules.
	compiledExt = ".py"
)

type (
	// Builder drives the UI compilation pass for one add-on. Construct it
	// once with New; the resolved paths and format context never change
	// afterwards. Builds are strictly sequential: one category at a time,
	// one compiler invocation at a time, in discovery order.
	Builder struct {
		root     string
		addon    *config.Addon
		logger   *log.Logger
		runner   shell.Runner
		format   map[string]string
		lookPath func(string) (string, error)
	}

	// Options configures a Builder. Zero-value fields fall back to
	// production defaults.
	Options struct {
		// Root is the distribution directory. Defaults to DefaultRoot.
		Root string
		// Addon supplies the build metadata. Required.
		Addon *config.Addon
		// Program identifies the generator in file headers.
		Program ProgramInfo
		// Logger receives build progress. Defaults to a stderr logger
		// with the "ui" prefix.
		Logger *log.Logger
		// Runner executes compiler command lines. Defaults to the
		// embedded shell interpreter.
		Runner shell.Runner
		// Now supplies the clock for copyright year stamping. Defaults
		// to time.Now.
		Now func() time.Time
	}

	// categoryPaths pairs the resolved input and output directories for
	// one category.
	categoryPaths struct {
		in  string
		out string
	}
)

// New creates a Builder for the add-on described by opts.Addon.
func New(opts Options) *Builder {
	root := opts.Root
	if root == "" {
		root = DefaultRoot
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "ui"})
	}
	runner := opts.Runner
	if runner == nil {
		runner = shell.NewInterpRunner()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Builder{
		root:     root,
		addon:    opts.Addon,
		logger:   logger,
		runner:   runner,
		format:   formatContext(opts.Addon, opts.Program, now()),
		lookPath: exec.LookPath,
	}
}

// paths resolves the input and output directory pair for a category. Output
// directories live under the add-on's gui package so the compiled modules
// are importable as <module_name>.gui.<category>.<target>.
func (b *Builder) paths(cat Category) categoryPaths {
	guiPath := filepath.Join(b.root, "src", b.addon.ModuleName, "gui")
	switch cat.Name {
	case "resources":
		return categoryPaths{
			in:  filepath.Join(b.root, "resources"),
			out: filepath.Join(guiPath, "resources"),
		}
	default:
		return categoryPaths{
			in:  filepath.Join(b.root, "designer"),
			out: filepath.Join(guiPath, "forms"),
		}
	}
}

// Build runs one full UI build pass for target, compiling forms first and
// resources second. Categories with missing inputs or a missing compiler
// tool are skipped with a warning; previously built output for a skipped
// category is deliberately left in place. Compiler failures and filesystem
// errors abort the pass.
func (b *Builder) Build(ctx context.Context, target Target) error {
	version, err := target.ToolVersion()
	if err != nil {
		return err
	}

	b.logger.Info("Starting UI build tasks", "target", target)

	for _, cat := range Categories() {
		paths := b.paths(cat)
		out := filepath.Join(paths.out, string(target))

		if _, err := os.Stat(paths.in); os.IsNotExist(err) {
			b.logger.Warn("No Qt input folder found. Skipping build.",
				"category", cat.Name, "path", fspath.Rel(paths.in))
			continue
		}

		if err := b.buildCategory(ctx, cat, paths.in, out, version); err != nil {
			return err
		}
	}

	b.logger.Info("Done with all UI build tasks.")

	return nil
}

// buildCategory compiles every matching input file of one category and
// regenerates the aggregator. A missing tool or empty input set skips the
// category without error.
func (b *Builder) buildCategory(ctx context.Context, cat Category, in, out, version string) error {
	tool := cat.Tool + version
	if _, err := b.lookPath(tool); err != nil {
		b.logger.Warn("Compiler tool not found. Skipping build.",
			"category", cat.Name, "tool", tool)
		return nil
	}

	files, err := filepath.Glob(filepath.Join(in, cat.Pattern))
	if err != nil {
		return fmt.Errorf("failed to enumerate %s inputs: %w", cat.Name, err)
	}
	sort.Strings(files)
	if len(files) == 0 {
		b.logger.Warn("No matching input files found. Skipping build.",
			"category", cat.Name, "path", fspath.Rel(in), "pattern", cat.Pattern)
		return nil
	}

	b.logger.Info("Building files",
		"category", cat.Name, "in", fspath.Rel(in), "out", fspath.Rel(out), "tool", tool)

	// Cleanup happens only after the checks above so a skipped category
	// never loses prior output.
	b.logger.Debug("Cleaning up old output", "category", cat.Name)
	if err := resetOutputDir(out); err != nil {
		return err
	}

	modules, err := b.compileAll(ctx, cat, files, out, tool)
	if err != nil {
		return err
	}

	b.logger.Debug("Generating init file", "path", fspath.Rel(out))
	if err := writeInitFile(modules, out, b.format); err != nil {
		return err
	}

	b.logger.Debug("Done with category", "category", cat.Name)

	return nil
}

// compileAll invokes the compiler for each input file in order and returns
// the compiled module names in the same order. The first failed invocation
// aborts the remainder of the category.
func (b *Builder) compileAll(ctx context.Context, cat Category, files []string, out, tool string) ([]string, error) {
	modules := make([]string, 0, len(files))

	for _, inFile := range files {
		module := fspath.Stem(inFile) + cat.Suffix
		outFile := filepath.Join(out, module+compiledExt)

		b.logger.Debug("Building element", "module", module)

		// Relative paths keep the header each compiler embeds in its
		// output readable.
		command := fmt.Sprintf("%s %s -o %s",
			tool, quote(fspath.Rel(inFile)), quote(fspath.Rel(outFile)))
		if err := b.runner.Run(ctx, "", command); err != nil {
			return nil, fmt.Errorf("failed to compile %s: %w", fspath.Rel(inFile), err)
		}

		if cat.PostBuild != nil {
			if err := cat.PostBuild(outFile); err != nil {
				return nil, err
			}
		}

		modules = append(modules, module)
	}

	return modules, nil
}

// resetOutputDir removes dir with everything in it and recreates it, so no
// stale artifacts survive the pass.
func resetOutputDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clean output directory %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// quote shell-quotes a path for interpolation into a command line.
func quote(path string) string {
	quoted, err := syntax.Quote(path, syntax.LangPOSIX)
	if err != nil {
		return path
	}
	return quoted
}
