package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lexgen"
	"github.com/npillmayer/lexgen/dfa"
	"github.com/npillmayer/lexgen/lexer"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	rulesFile    string
	traceFlag    string
	minimize     bool
	tableDriven  bool
	strict       bool
	tieBreakFlag string
)

var rootCmd = &cobra.Command{
	Use:   "lexgen",
	Short: "Lexer generator for lex-style rule files",
	Long:  "lexgen - compile lexical rules into NFA and DFA, and tokenize input with them",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setTraceLevel(tracing.TraceLevelFromString(traceFlag))
		tracer().Infof("Trace level is %s", traceFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rulesFile, "rules", "r", "", "Rule file in lex format")
	rootCmd.PersistentFlags().StringVar(&traceFlag, "trace", "Info", "Trace level [Debug|Info|Error]")
	rootCmd.PersistentFlags().BoolVar(&minimize, "minimize", false, "Minimize the DFA")
	rootCmd.PersistentFlags().BoolVar(&tableDriven, "table", false, "Compile the DFA into a transition table")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Fail on unmatched input instead of skipping it")
	rootCmd.PersistentFlags().StringVar(&tieBreakFlag, "tiebreak", "first", "Policy for overlapping rules [first|last]")
	rootCmd.AddCommand(lexCmd, dotCmd, checkCmd, replCmd)
}

// traceKeys are the tracers of all lexgen packages.
var traceKeys = []string{
	"lexgen.cli",
	"lexgen.automaton",
	"lexgen.regex",
	"lexgen.rules",
	"lexgen.nfa",
	"lexgen.dfa",
	"lexgen.scanner",
	"lexgen.lexer",
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := rootCmd.Execute(); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// makeLexer creates a lexer from the rule file, according to the global flags.
func makeLexer() (*lexer.Lexer, error) {
	if rulesFile == "" {
		return nil, errors.New("no rule file given, use --rules")
	}
	tb, err := dfa.TieBreakFromString(tieBreakFlag)
	if err != nil {
		return nil, err
	}
	lx, err := lexer.Load(rulesFile,
		lexer.Minimized(minimize),
		lexer.TableDriven(tableDriven),
		lexer.Strict(strict),
		lexer.WithTieBreak(tb))
	if err != nil {
		return nil, err
	}
	pterm.Info.Printf("%d rules, %d NFA states, %d DFA states\n",
		len(lx.Rules()), lx.NFA().Graph().Size(), lx.DFA().Size())
	return lx, nil
}

// readInput reads the file named by the first argument, or stdin.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(b), nil
}

func printTokens(tokens []lexgen.Token) {
	data := pterm.TableData{{"Type", "Lexeme", "Position", "Span"}}
	for _, token := range tokens {
		data = append(data, []string{
			token.Type,
			fmt.Sprintf("%q", token.Lexeme),
			token.At.String(),
			token.Span.String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
