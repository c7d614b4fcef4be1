// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-autofill-keeper/internal/gate"
)

const (
	msgIncorrectPassword = "Неверный пароль"
	msgPasswordRequired  = "Пароль обязателен"
	msgCheckInProgress   = "Пароль уже проверяется"
)

func humanizeSubmitError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, gate.ErrIncorrectCredential):
		return msgIncorrectPassword
	case errors.Is(err, gate.ErrAuthenticationInProgress):
		return msgCheckInProgress
	default:
		return err.Error()
	}
}
