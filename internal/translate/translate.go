// Package translate wires the grammar, the semantic analyzer and the
// surrounding I/O together into one source-to-source translation pass
// (§6): read a `.addaat` file, parse and lower it, and write the `.c`
// sibling, recording the run in the history store when one is attached.
package translate

import (
	"strings"
	"time"

	"github.com/oxhq/morfx/internal/analyzer"
	"github.com/oxhq/morfx/internal/diagnostics"
	"github.com/oxhq/morfx/internal/grammar"
	"github.com/oxhq/morfx/internal/history"
	"github.com/oxhq/morfx/internal/ioutil"
	"github.com/oxhq/morfx/internal/langdef"
)

// Options configures one translation run.
type Options struct {
	ColorizeCode bool
	PrintTrees   bool
	WriteConfig  ioutil.WriteConfig
	History      *history.Store // optional
}

// Result is what one successful or failed run produced, for a caller that
// wants to print a tree dump or inspect diagnostics beyond the error text.
type Result struct {
	OutputPath string
	Generated  string
	Tree       *grammar.Node
}

// File translates the Addaat source at sourcePath, writing its C
// translation to the sibling ioutil.OutputPath and returning it.
func File(sourcePath string, opts Options) (Result, error) {
	start := time.Now()
	res, err := translate(sourcePath, opts)
	if opts.History != nil {
		var diags []string
		if err != nil {
			diags = []string{err.Error()}
		}
		_ = opts.History.RecordRun(sourcePath, res.OutputPath, err == nil, time.Since(start), diags)
	}
	return res, err
}

func translate(sourcePath string, opts Options) (Result, error) {
	res := Result{OutputPath: ioutil.OutputPath(sourcePath)}

	if !strings.HasSuffix(sourcePath, ".addaat") {
		return res, diagnostics.CLIError{
			Code:    diagnostics.ErrArgument,
			Message: "source file must have a .addaat extension",
			Detail:  sourcePath,
		}
	}

	raw, err := ioutil.ReadSourceFile(sourcePath)
	if err != nil {
		return res, diagnostics.Wrap(diagnostics.ErrIO, "failed to read source file", err)
	}
	// Match documents that it wants the NUL sentinel stripped; the sentinel
	// itself only matters to the original scanner ReadSourceFile mirrors.
	source := raw[:len(raw)-1]

	g, err := langdef.New()
	if err != nil {
		return res, diagnostics.Wrap(diagnostics.ErrGrammar, "failed to build grammar", err)
	}

	match := g.Match(source)
	if !match.Success {
		report := diagnostics.ParseFailureReport(source, match)
		return res, diagnostics.CLIError{
			Code:    diagnostics.ErrParse,
			Message: "failed to parse " + sourcePath,
			Detail:  report,
		}
	}
	res.Tree = match.Root

	generated, err := analyzer.Translate(match.Root, analyzer.Options{ColorizeCode: opts.ColorizeCode})
	if err != nil {
		return res, diagnostics.Wrap(diagnostics.ErrSemantic, "semantic analysis failed", err)
	}
	res.Generated = generated

	if err := ioutil.WriteFile(res.OutputPath, generated, opts.WriteConfig); err != nil {
		return res, diagnostics.Wrap(diagnostics.ErrIO, "failed to write output file", err)
	}
	return res, nil
}
