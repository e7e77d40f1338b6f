// Package agent implements the interactive AI assistant of the ledger CLI.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and a team of experts.
// The facilitator expert owns the conversation and consults the others.
type Agent struct {
	w           io.Writer
	in          *bufio.Scanner
	Facilitator *Expert
	Experts     []*Expert
}

// New creates an Agent over the given experts, reading user input from r
// (e.g., os.Stdin) and writing to w (e.g., os.Stdout).
func New(w io.Writer, r io.Reader, experts ...*Expert) *Agent {
	return &Agent{
		w:           w,
		in:          bufio.NewScanner(r),
		Experts:     experts,
		Facilitator: newFacilitator(experts...),
	}
}

// Start opens the chats of every expert.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	for _, e := range a.Experts {
		if err := e.Start(ctx, client); err != nil {
			return err
		}
	}
	return a.Facilitator.Start(ctx, client)
}

const prompt = "assist> "

// Run starts the interactive REPL session. The optional prompts are played
// before reading from the user, so a question can be passed on the command
// line.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.Facilitator.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to glb bookkeeping assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)

		input, ok := a.next(&prompts)
		if !ok {
			return a.in.Err() // nil on a clean Ctrl+D
		}
		if input == "" {
			continue
		}
		if input == "bye" {
			return nil
		}

		answer, err := a.Facilitator.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer.Parts[0].Text)
	}
}

// next pops the pending command line prompts first, then reads a line from
// the user. It reports false when the input is exhausted.
func (a *Agent) next(prompts *[]string) (string, bool) {
	if len(*prompts) > 0 {
		input := strings.TrimSpace((*prompts)[0])
		*prompts = (*prompts)[1:]
		fmt.Fprintln(a.w, input)
		return input, true
	}
	if !a.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(a.in.Text()), true
}
