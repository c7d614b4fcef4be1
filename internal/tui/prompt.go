// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-autofill-keeper/internal/gate"
	"github.com/MKhiriev/go-autofill-keeper/models"
)

const titleMaxLen = 48

// PromptModel is the Bubble Tea model for the master-password prompt. It
// renders one masked input and forwards every submission to an
// [Authenticator]. A Retry step keeps the prompt open with an error line; a
// Terminal step quits the program.
type PromptModel struct {
	ctx   context.Context
	auth  Authenticator
	title string

	input      textinput.Model
	submitting bool
	finished   bool
	errMsg     string
}

// NewPromptModel creates a [PromptModel] with a focused password input.
func NewPromptModel(ctx context.Context, auth Authenticator, title string) *PromptModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "мастер-пароль"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return &PromptModel{
		ctx:   ctx,
		auth:  auth,
		title: title,
		input: passwordInput,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [submitResultMsg] clears the submitting state; Terminal quits, Retry
//     shows the error and clears the input.
//   - esc, ctrl+c cancel the handle and quit.
//   - enter submits the typed password.
//
// All other key events are forwarded to the input widget.
func (m *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(submitResultMsg); ok {
		m.submitting = false
		if result.step == gate.Terminal {
			m.finished = true
			return m, tea.Quit
		}
		m.errMsg = humanizeSubmitError(result.err)
		m.input.Reset()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.cancel):
			m.auth.Cancel(m.ctx)
			m.finished = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			pass := m.input.Value()
			if pass == "" {
				m.errMsg = msgPasswordRequired
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(models.Credential(pass))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *PromptModel) View() string {
	if m.finished {
		return ""
	}

	var b strings.Builder
	b.WriteString("Пароль  │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Проверка...]\n")
	} else {
		b.WriteString("\n[Разблокировать]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Ошибка: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(fitText(m.title, titleMaxLen), strings.TrimRight(b.String(), "\n"), "esc: отмена │ enter: подтвердить")
}

func (m *PromptModel) cmdSubmit(candidate models.Credential) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		step, err := auth.Submit(ctx, candidate)
		return submitResultMsg{step: step, err: err}
	}
}
