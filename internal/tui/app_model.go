package tui

import (
	"context"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/adiwinata/deposito/internal/adapter"
	"github.com/adiwinata/deposito/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenList
	screenDetail
	screenForm
	screenSummary
)

type appModel struct {
	ctx           context.Context
	server        adapter.ServerAdapter
	currentScreen screen

	welcome  welcomeModel
	login    loginModel
	register registerModel
	list     listModel
	detail   detailModel
	form     formModel
	summary  summaryModel

	currencySymbol string

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	logout        bool
}

func newAppModel(ctx context.Context, server adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		server:        server,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDelete(m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.showErrorf(humanizeTransportError(msg.err))
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(), m.cmdLoadSettings())
	case listLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeTransportError(msg.err))
			return m, nil
		}
		m.list.deposits = msg.deposits
		if m.list.idx >= len(m.list.deposits) {
			m.list.idx = len(m.list.deposits) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case settingsLoadedMsg:
		if msg.err == nil {
			m.currencySymbol = msg.settings[models.SettingCurrencySymbol]
		}
		return m, nil
	case depositSavedMsg:
		m.setSubmitting(false)
		if msg.err != nil {
			m.form.errMsg = humanizeTransportError(msg.err)
			return m, nil
		}
		m.currentScreen = screenList
		m.list.status = "Saved"
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case depositDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeTransportError(msg.err))
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.list.status = "Deleted"
		m.list.loading = true
		return m, tea.Batch(m.cmdLoadList(), cmdClearStatus())
	case summaryLoadedMsg:
		m.summary.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeTransportError(msg.err))
			m.currentScreen = screenList
			return m, nil
		}
		m.summary.stats = msg.stats
		return m, nil
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenSummary:
		return m.updateSummary(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenSummary:
		body = m.summary.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.form.submitting = v
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrevLogin(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.login.inputs[0].Value())
			password := m.login.inputs[1].Value()
			if username == "" || password == "" {
				m.showErrorf("username and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(username, password)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			username := strings.TrimSpace(m.register.inputs[0].Value())
			password := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if username == "" || password == "" {
				m.showErrorf("username and password are required")
				return m, nil
			}
			if password != repeat {
				m.showErrorf("passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegister(username, password)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.deposits)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		dep, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{deposit: dep, currencySymbol: m.currencySymbol}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newItem):
		m.form = newFormModel(nil)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.edit):
		dep, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.form = newFormModel(&dep)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		dep, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = dep.DepositID
		m.pendingDelete = dep.DepositID
	case key.Matches(keyMsg, keys.summary):
		m.summary = summaryModel{loading: true}
		m.currentScreen = screenSummary
		return m, m.cmdLoadSummary()
	case key.Matches(keyMsg, keys.refresh):
		m.list.loading = true
		return m, m.cmdLoadList()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		dep := m.detail.deposit
		m.form = newFormModel(&dep)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = m.detail.deposit.DepositID
		m.pendingDelete = m.detail.deposit.DepositID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		number := m.detail.deposit.AccountNumber
		if number == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(number)
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			input, err := m.form.toInput()
			if err != nil {
				m.form.errMsg = err.Error()
				return m, nil
			}
			m.form.errMsg = ""
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdate(m.form.depositID, input)
			}
			return m, m.cmdCreate(input)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateSummary(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.refresh):
		m.summary.loading = true
		return m, m.cmdLoadSummary()
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) cmdLogin(username, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		user, err := server.Login(ctx, username, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(username, password string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		user, err := server.Register(ctx, username, password)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLoadList() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		deposits, err := server.ListDeposits(ctx)
		return listLoadedMsg{deposits: deposits, err: err}
	}
}

func (m appModel) cmdLoadSettings() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		settings, err := server.Settings(ctx)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m appModel) cmdLoadSummary() tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		stats, err := server.Summary(ctx)
		return summaryLoadedMsg{stats: stats, err: err}
	}
}

func (m appModel) cmdCreate(input models.DepositInput) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		_, err := server.CreateDeposit(ctx, input)
		return depositSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdate(depositID string, input models.DepositInput) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		_, err := server.UpdateDeposit(ctx, depositID, input)
		return depositSavedMsg{err: err}
	}
}

func (m appModel) cmdDelete(depositID string) tea.Cmd {
	ctx := m.ctx
	server := m.server
	return func() tea.Msg {
		err := server.DeleteDeposit(ctx, depositID)
		return depositDeletedMsg{err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return depositSavedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func humanizeTransportError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "server is unreachable, try again later"
	}
	return err.Error()
}

func focusNextLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevLogin(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
