package tui

import (
	"github.com/adiwinata/deposito/models"
)

type authDoneMsg struct {
	user models.User
	err  error
}

type listLoadedMsg struct {
	deposits []models.Deposit
	err      error
}

type depositSavedMsg struct {
	err error
}

type depositDeletedMsg struct {
	err error
}

type summaryLoadedMsg struct {
	stats models.SummaryStats
	err   error
}

type settingsLoadedMsg struct {
	settings map[string]string
	err      error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
