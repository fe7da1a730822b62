package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/lexgen"
	"github.com/npillmayer/lexgen/automaton"
	"github.com/npillmayer/lexgen/scanner/lexmach"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a file (or stdin) and print the tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lx, err := makeLexer()
		if err != nil {
			return err
		}
		input, err := readInput(args)
		if err != nil {
			return err
		}
		tokens, err := lx.Tokens(input)
		printTokens(tokens)
		return err
	},
}

var (
	dotDFA    bool
	dotOutput string
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Export the NFA or DFA in Graphviz Dot format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lx, err := makeLexer()
		if err != nil {
			return err
		}
		g, title := lx.NFA().Graph(), "NFA"
		if dotDFA {
			g, title = lx.DFA().Graph(), "DFA"
		}
		var w io.Writer = os.Stdout
		if dotOutput != "" {
			f, err := os.Create(dotOutput)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		if err := automaton.WriteDot(w, g, title); err != nil {
			return err
		}
		if dotOutput != "" {
			pterm.Info.Printf("%s with %d states written to %s\n", title, g.Size(), dotOutput)
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Compare tokens with a lexer built by lexmachine",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lx, err := makeLexer()
		if err != nil {
			return err
		}
		input, err := readInput(args)
		if err != nil {
			return err
		}
		lm, err := lexmach.NewLMAdapter(lx.Rules(), lexgen.SkipMarker)
		if err != nil {
			return err
		}
		expected, err := lm.Tokens(input)
		if err != nil {
			return err
		}
		tokens, err := lx.Tokens(input)
		if err != nil {
			return err
		}
		if i := firstDifference(expected, tokens); i >= 0 {
			return fmt.Errorf("token %d differs: lexmachine has %s, lexgen has %s",
				i, tokenAt(expected, i), tokenAt(tokens, i))
		}
		pterm.Info.Printf("lexgen and lexmachine agree on %d tokens\n", len(tokens))
		return nil
	},
}

func init() {
	dotCmd.Flags().BoolVar(&dotDFA, "dfa", false, "Export the DFA instead of the NFA")
	dotCmd.Flags().StringVarP(&dotOutput, "output", "o", "", "Output file (default stdout)")
}

// firstDifference compares types and lexemes of two token lists. It returns
// the index of the first difference, or -1.
func firstDifference(a, b []lexgen.Token) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		if i >= len(a) || i >= len(b) || a[i].Type != b[i].Type || a[i].Lexeme != b[i].Lexeme {
			return i
		}
	}
	return -1
}

func tokenAt(tokens []lexgen.Token, i int) string {
	if i >= len(tokens) {
		return "no more tokens"
	}
	return tokens[i].String()
}
