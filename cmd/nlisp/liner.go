package main

import (
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/nathannewcomer/nLisp/lexer"
)

// lineEditor reads interactive lines with editing, history and completion of
// builtin names.
type lineEditor struct {
	*liner.State
}

func newLineEditor() *lineEditor {
	st := liner.NewLiner()
	st.SetCtrlCAborts(true)
	st.SetCompleter(completeSymbol)
	return &lineEditor{st}
}

// ReadLine returns an empty line when the prompt is aborted with ctrl-c, so
// only ctrl-d ends the session.
func (le *lineEditor) ReadLine(prompt string) (string, error) {
	line, err := le.State.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		le.AppendHistory(line)
	}
	return line, nil
}

var symbolNames = func() []string {
	names := make([]string, 0, len(lexer.Symbols))
	for name := range lexer.Symbols {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// completeSymbol completes the word under the cursor at the end of line to
// any reserved name it prefixes.
func completeSymbol(line string) []string {
	i := strings.LastIndexAny(line, "(). \t") + 1
	word := line[i:]
	if word == "" {
		return nil
	}
	var completions []string
	for _, name := range symbolNames {
		if strings.HasPrefix(name, word) {
			completions = append(completions, line[:i]+name)
		}
	}
	return completions
}
