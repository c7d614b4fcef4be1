// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Supported autofill hints. Views declaring any other hint are ignored by the
// parser.
const (
	HintEmailAddress              = "emailAddress"
	HintName                      = "name"
	HintUsername                  = "username"
	HintPassword                  = "password"
	HintPhone                     = "phone"
	HintPostalAddress             = "postalAddress"
	HintPostalCode                = "postalCode"
	HintCreditCardNumber          = "creditCardNumber"
	HintCreditCardSecurityCode    = "creditCardSecurityCode"
	HintCreditCardExpirationDate  = "creditCardExpirationDate"
	HintCreditCardExpirationMonth = "creditCardExpirationMonth"
	HintCreditCardExpirationYear  = "creditCardExpirationYear"
	HintCreditCardExpirationDay   = "creditCardExpirationDay"
)

var supportedHints = map[string]struct{}{
	HintEmailAddress:              {},
	HintName:                      {},
	HintUsername:                  {},
	HintPassword:                  {},
	HintPhone:                     {},
	HintPostalAddress:             {},
	HintPostalCode:                {},
	HintCreditCardNumber:          {},
	HintCreditCardSecurityCode:    {},
	HintCreditCardExpirationDate:  {},
	HintCreditCardExpirationMonth: {},
	HintCreditCardExpirationYear:  {},
	HintCreditCardExpirationDay:   {},
}

// IsSupportedHint reports whether hint is one of the hints the service can
// fill.
func IsSupportedHint(hint string) bool {
	_, ok := supportedHints[hint]
	return ok
}

// SaveType is a bitmask of the kinds of data a form can offer to save.
type SaveType int

const (
	SaveTypeGeneric      SaveType = 0
	SaveTypePassword     SaveType = 1 << 0
	SaveTypeAddress      SaveType = 1 << 1
	SaveTypeCreditCard   SaveType = 1 << 2
	SaveTypeUsername     SaveType = 1 << 3
	SaveTypeEmailAddress SaveType = 1 << 4
)

// SaveTypeForHints folds hints into a save-type mask. A password hint wins
// over username and e-mail, since a login form is saved as a password form.
func SaveTypeForHints(hints []string) SaveType {
	var st SaveType
	for _, hint := range hints {
		switch hint {
		case HintCreditCardNumber, HintCreditCardSecurityCode,
			HintCreditCardExpirationDate, HintCreditCardExpirationMonth,
			HintCreditCardExpirationYear, HintCreditCardExpirationDay:
			st |= SaveTypeCreditCard
		case HintEmailAddress:
			st |= SaveTypeEmailAddress
		case HintPassword:
			st |= SaveTypePassword
			st &^= SaveTypeEmailAddress
			st &^= SaveTypeUsername
		case HintPostalAddress, HintPostalCode:
			st |= SaveTypeAddress
		case HintUsername:
			st |= SaveTypeUsername
		}
	}
	return st
}
