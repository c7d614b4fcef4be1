// Package tui renders the master-password prompt that drives an
// authentication handle.
package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-autofill-keeper/internal/gate"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

// Authenticator is the part of a gate handle the prompt talks to.
type Authenticator interface {
	Submit(ctx context.Context, candidate models.Credential) (gate.Step, error)
	Cancel(ctx context.Context) gate.Step
}

// Prompt runs the password prompt on a terminal.
type Prompt struct {
	input  io.Reader
	output io.Writer
}

// New returns a Prompt reading keys from in and drawing to out. The prompt
// draws to out so stdout stays free for the reply.
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{input: in, output: out}
}

// Run shows the prompt until auth reaches a terminal step or the user
// cancels. If the program stops for any other reason (ctx done, terminal
// error) the handle is cancelled so its reply is always decided.
func (p *Prompt) Run(ctx context.Context, auth Authenticator, title string) error {
	model := NewPromptModel(ctx, auth, title)

	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.input),
		tea.WithOutput(p.output),
	)

	finalModel, runErr := program.Run()
	if result, ok := finalModel.(*PromptModel); !ok || !result.finished {
		auth.Cancel(ctx)
	}
	if runErr != nil {
		return fmt.Errorf("run prompt: %w", runErr)
	}

	return nil
}
