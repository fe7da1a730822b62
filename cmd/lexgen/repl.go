package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/lexgen/lexer"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Tokenize lines interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lx, err := makeLexer()
		if err != nil {
			return err
		}
		repl, err := readline.New("lexgen> ")
		if err != nil {
			return err
		}
		defer repl.Close()
		intp := &Intp{lexer: lx, repl: repl}
		tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
		intp.REPL()
		return nil
	},
}

// Intp is our interactive tokenizer
type Intp struct {
	lexer *lexer.Lexer
	repl  *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		intp.Eval(line)
	}
	println("Good bye!")
}

// Eval tokenizes a line and prints the tokens.
func (intp *Intp) Eval(line string) {
	tokens, err := intp.lexer.Tokens(line)
	printTokens(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
	}
}
