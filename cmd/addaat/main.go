// Command addaat translates a single .addaat source file to C (§6).
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/oxhq/morfx/internal/cliconfig"
	"github.com/oxhq/morfx/internal/diagnostics"
	"github.com/oxhq/morfx/internal/grammar"
	"github.com/oxhq/morfx/internal/history"
	"github.com/oxhq/morfx/internal/selftest"
	"github.com/oxhq/morfx/internal/translate"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

func main() {
	cfg := cliconfig.Load()

	rootCmd := &cobra.Command{
		Use:   "addaat <path.addaat>",
		Short: "Translate Addaat source to C",
		Long:  "A source-to-source translator from Addaat (a cut-down C dialect) to C.",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTranslate(args[0], cfg)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&cfg.ColorizeCode, "colorize-code", cfg.ColorizeCode, "colorize emitted C source with ANSI escapes")
	rootCmd.PersistentFlags().BoolVar(&cfg.PrintTrees, "print-trees", cfg.PrintTrees, "dump the parsed AST before translating")
	rootCmd.PersistentFlags().BoolVar(&cfg.PrintColoredTrees, "print-colored-trees", cfg.PrintColoredTrees, "colorize the AST dump")
	rootCmd.PersistentFlags().StringVar(&cfg.HistoryDB, "history-db", cfg.HistoryDB, "record each translate run to this history store (path, or libsql:// URL); also ADDAAT_HISTORY_DB")

	translateCmd := &cobra.Command{
		Use:   "translate <path.addaat>",
		Short: "Translate one .addaat file to its .c sibling",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runTranslate(args[0], cfg)
		},
	}

	selftestCmd := &cobra.Command{
		Use:   "selftest <testdata-dir>",
		Short: "Run the fixture-based regression suite",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runSelftest(args[0])
		},
	}

	rootCmd.AddCommand(translateCmd, selftestCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(red(err))
		os.Exit(1)
	}
}

func runTranslate(path string, cfg cliconfig.Config) {
	opts := translate.Options{ColorizeCode: cfg.ColorizeCode}
	if cfg.HistoryDB != "" {
		store, err := history.Connect(cfg.HistoryDB, false)
		if err != nil {
			fmt.Println(red(bold("failed to open history store: " + err.Error())))
			os.Exit(1)
		}
		defer store.Close()
		opts.History = store
	}

	res, err := translate.File(path, opts)
	if cfg.PrintTrees && res.Tree != nil {
		printTree(res.Tree, 0, cfg.PrintColoredTrees)
	}
	if err != nil {
		if cliErr, ok := err.(diagnostics.CLIError); ok {
			fmt.Println(red(bold(cliErr.Message)))
			if cliErr.Detail != "" {
				fmt.Println(cliErr.Detail)
			}
		} else {
			fmt.Println(red(err))
		}
		os.Exit(1)
	}
	fmt.Printf("%s %s\n", green("Wrote"), res.OutputPath)
}

func runSelftest(dir string) {
	results, err := selftest.Run(dir)
	if err != nil {
		fmt.Println(red(err))
		os.Exit(1)
	}

	failed := 0
	for _, r := range results {
		if r.Pass {
			fmt.Printf("%s %s\n", green("PASS"), r.Name)
			continue
		}
		failed++
		fmt.Printf("%s %s\n", red("FAIL"), r.Name)
		if r.Err != nil {
			fmt.Println(r.Err)
		}
		if r.Diff != "" {
			fmt.Println(r.Diff)
		}
	}
	fmt.Printf("%d/%d passed\n", len(results)-failed, len(results))
	if failed > 0 {
		os.Exit(1)
	}
}

func printTree(n *grammar.Node, depth int, colored bool) {
	label := n.Name
	if colored {
		label = color.New(color.FgCyan).Sprint(label)
	}
	fmt.Printf("%*s%s: %q\n", depth*2, "", label, n.Text)
	for _, c := range n.Children {
		printTree(c, depth+1, colored)
	}
}
