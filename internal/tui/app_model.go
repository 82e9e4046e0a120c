package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-guard/internal/events"
	"github.com/MKhiriev/go-vault-guard/internal/generator"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/service"
	"github.com/MKhiriev/go-vault-guard/internal/utils"
	"github.com/MKhiriev/go-vault-guard/internal/validators"
	"github.com/MKhiriev/go-vault-guard/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenSignup
	screenList
	screenDetail
	screenForm
	screenGenerator
	screenSettings
)

type appModel struct {
	root          context.Context
	ctx           context.Context
	services      *service.Services
	sender        *programSender
	buildInfo     models.AppBuildInfo
	logger        *logger.Logger
	currentScreen screen

	welcome  welcomeModel
	login    credentialsModel
	signup   credentialsModel
	list     listModel
	detail   detailModel
	form     entryFormModel
	gen      generatorModel
	settings settingsModel

	err           error
	showBuildInfo bool
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
}

func newAppModel(ctx context.Context, services *service.Services, sender *programSender, buildInfo models.AppBuildInfo, log *logger.Logger) appModel {
	return appModel{
		root:          ctx,
		ctx:           ctx,
		services:      services,
		sender:        sender,
		buildInfo:     buildInfo,
		logger:        log,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newCredentialsModel(false),
		signup:        newCredentialsModel(true),
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			m.err = ErrUserQuit
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			return m.updateConfirm(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) {
				m.showBuildInfo = false
			}
			return m, nil
		}
	case sessionDoneMsg:
		return m.onSessionDone(msg)
	case busEventMsg:
		return m.onBusEvent(msg)
	case searchDoneMsg:
		if msg.query == m.list.query.Value() && msg.scope == m.list.scope {
			m.list.setEntries(msg.entries)
		}
		return m, nil
	case itemSavedMsg:
		m.form.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if m.currentScreen == screenForm {
			m.currentScreen = screenList
		}
		return m, m.cmdSearch()
	case itemDeletedMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.services.TOTP.Stop()
		m.currentScreen = screenList
		return m, nil
	case sweepDoneMsg:
		m.list.checking = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		m.list.status = "Breach check finished"
		return m, cmdClearStatus()
	case totpTickMsg:
		if m.currentScreen == screenDetail && m.detail.entry.Title == msg.title {
			tick := msg.tick
			m.detail.totp = &tick
		}
		return m, nil
	case strengthMsg:
		switch {
		case m.currentScreen == screenForm && msg.password == m.form.password():
			m.form.strength = msg.category
			m.form.hasStrength = true
		case m.currentScreen == screenGenerator && msg.password == m.gen.result:
			m.gen.strength = msg.category
			m.gen.hasStrength = true
		}
		return m, nil
	case settingsDoneMsg:
		m.settings.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.deleted {
			m.toWelcome("Account deleted")
			return m, nil
		}
		m.list.status = "Settings saved"
		m.currentScreen = screenList
		return m, tea.Batch(m.cmdSearch(), cmdClearStatus())
	case copiedMsg:
		m.detail.status = "Copied!"
		m.list.status = "Copied!"
		m.gen.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		m.gen.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateCredentials(msg, false)
	case screenSignup:
		return m.updateCredentials(msg, true)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	case screenGenerator:
		return m.updateGenerator(msg)
	case screenSettings:
		return m.updateSettings(msg)
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
	case screenSignup:
		body = m.signup.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	case screenGenerator:
		body = m.gen.View()
	case screenSettings:
		body = m.settings.View()
	}

	if m.showBuildInfo {
		body = renderBuildInfoWindow(m.buildInfo)
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

// toWelcome resets every per-account screen.
func (m *appModel) toWelcome(status string) {
	m.services.TOTP.Stop()
	m.ctx = m.root
	m.login = newCredentialsModel(false)
	m.signup = newCredentialsModel(true)
	m.list = newListModel()
	m.detail = detailModel{}
	m.welcome.status = status
	m.currentScreen = screenWelcome
}

func (m appModel) onSessionDone(msg sessionDoneMsg) (tea.Model, tea.Cmd) {
	m.login.submitting = false
	m.signup.submitting = false

	form := &m.login
	if m.currentScreen == screenSignup {
		form = &m.signup
	}

	switch msg.state {
	case models.LoggedIn:
		m.ctx = utils.WithSessionID(m.root, m.services.Session.SessionID())
		m.services.Vault.Open(msg.doc)
		m.list = newListModel()
		m.list.setEntries(m.services.Vault.SortedEntries())
		m.currentScreen = screenList
		// One breach pass per session start.
		m.list.checking = true
		return m, tea.Batch(m.list.spinner.Tick, m.cmdSweep())
	case models.AuthFailed:
		form.errMsg = "wrong account name or passphrase"
	case models.NameTaken:
		form.errMsg = "this account name is already taken"
	default:
		form.errMsg = humanizeError(msg.err)
		if msg.err == nil {
			form.errMsg = "the vault could not be opened"
		}
	}
	return m, nil
}

func (m appModel) onBusEvent(msg busEventMsg) (tea.Model, tea.Cmd) {
	switch e := msg.event.(type) {
	case events.SessionStateChanged:
		m.logger.Debug().Str("state", e.State.String()).Msg("session state changed")
	case events.EntryDeleted:
		m.list.status = fmt.Sprintf("Deleted %q", e.Title)
		return m, tea.Batch(m.cmdSearch(), cmdClearStatus())
	case events.VaultSaved:
		if m.currentScreen == screenDetail {
			if entry, ok := m.services.Vault.Entry(m.detail.entry.Title); ok {
				m.detail.entry = entry
			}
		}
		return m, m.cmdSearch()
	}
	return m, nil
}

func (m appModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.showConfirm = false
		action := m.confirm.action
		m.confirm = confirmModel{}
		switch action {
		case confirmDeleteEntry:
			return m, m.cmdDeleteEntry(m.detail.entry.Title)
		case confirmDeleteAccount:
			m.settings.submitting = true
			return m, m.cmdDeleteAccount()
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.showConfirm = false
		m.confirm = confirmModel{}
	}
	return m, nil
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
		m.welcome.status = ""
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenSignup
		}
	case key.Matches(keyMsg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateCredentials(msg tea.Msg, signup bool) (tea.Model, tea.Cmd) {
	form := m.login
	if signup {
		form = m.signup
	}
	store := func(f credentialsModel) {
		if signup {
			m.signup = f
		} else {
			m.login = f
		}
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			form.errMsg = ""
			store(form)
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			form.focus = focusNext(form.inputs, form.focus)
			store(form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			form.focus = focusPrev(form.inputs, form.focus)
			store(form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if form.submitting {
				return m, nil
			}
			creds := form.credentials()
			if err := m.services.Validator.Validate(m.ctx, creds); err != nil {
				form.errMsg = credentialsError(err)
				store(form)
				return m, nil
			}
			if !form.repeatMatches() {
				form.errMsg = "passphrases do not match"
				store(form)
				return m, nil
			}
			form.errMsg = ""
			form.submitting = true
			store(form)
			return m, m.cmdSession(creds, signup)
		}
	}

	var cmd tea.Cmd
	form.inputs[form.focus], cmd = form.inputs[form.focus].Update(msg)
	store(form)
	return m, cmd
}

func credentialsError(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyAccountName):
		return "account name is required"
	case errors.Is(err, validators.ErrEmptyPassphrase):
		return "passphrase is required"
	}
	return humanizeError(err)
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.updateSearch(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.entries)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			entry, ok := m.list.current()
			if !ok {
				return m, nil
			}
			return m.openDetail(entry)
		case key.Matches(msg, keys.newItem):
			m.form = newEntryFormModel(nil)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.search):
			m.list.searching = true
			m.list.query.Focus()
		case key.Matches(msg, keys.scope):
			m.list.scope = m.list.scope.Next()
			m.list.idx = 0
			return m, m.cmdSearch()
		case key.Matches(msg, keys.generate):
			m.gen = newGeneratorModel()
			m.currentScreen = screenGenerator
		case key.Matches(msg, keys.sweep):
			if m.list.checking {
				return m, nil
			}
			m.list.checking = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdSweep())
		case key.Matches(msg, keys.settings):
			m.settings = newSettingsModel(m.services.Vault.AccountName())
			m.currentScreen = screenSettings
		case key.Matches(msg, keys.buildInfo):
			m.showBuildInfo = true
		case key.Matches(msg, keys.logout):
			m.services.Session.Logout()
			m.services.Vault.Close()
			m.toWelcome("Logged out")
		case key.Matches(msg, keys.quit):
			m.err = ErrUserQuit
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.checking {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.list.searching = false
			m.list.query.Blur()
			m.list.query.SetValue("")
			return m, m.cmdSearch()
		case key.Matches(keyMsg, keys.enter):
			m.list.searching = false
			m.list.query.Blur()
			return m, nil
		}
	}

	before := m.list.query.Value()
	var cmd tea.Cmd
	m.list.query, cmd = m.list.query.Update(msg)
	if m.list.query.Value() == before {
		return m, cmd
	}
	m.list.idx = 0
	return m, tea.Batch(cmd, m.cmdSearch())
}

func (m appModel) openDetail(entry models.Entry) (tea.Model, tea.Cmd) {
	m.detail = detailModel{entry: entry}
	m.currentScreen = screenDetail

	m.services.TOTP.Stop()
	if entry.OneTimePasswordSeed == "" {
		return m, nil
	}

	title := entry.Title
	err := m.services.TOTP.Start(entry.OneTimePasswordSeed, func(tick models.TOTPTick) {
		m.sender.Send(totpTickMsg{title: title, tick: tick})
	})
	if err != nil {
		m.detail.totpErr = humanizeError(err)
	}
	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	entry := m.detail.entry
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.services.TOTP.Stop()
		m.currentScreen = screenList
		return m, m.cmdSearch()
	case key.Matches(keyMsg, keys.edit):
		m.services.TOTP.Stop()
		m.form = newEntryFormModel(&entry)
		m.currentScreen = screenForm
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm = confirmModel{action: confirmDeleteEntry, subject: entry.Title}
	case key.Matches(keyMsg, keys.favourite):
		edited := entry
		edited.Favourite = !edited.Favourite
		return m, m.cmdUpdateEntry(entry.Title, edited)
	case key.Matches(keyMsg, keys.copy):
		if entry.Password == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(entry.Password)
	case key.Matches(keyMsg, keys.copyUser):
		if entry.Username == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(entry.Username)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				return m.openDetail(m.form.original)
			}
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form.focus = focusNext(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focus = focusPrev(m.form.inputs, m.form.focus)
			return m, nil
		case key.Matches(keyMsg, keys.fillPassword):
			password, err := m.services.Generator.FromOptions(generator.DefaultOptions())
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.form.inputs[fieldPassword].SetValue(password)
			return m, m.cmdScore(password)
		case key.Matches(keyMsg, keys.enter):
			if m.form.submitting {
				return m, nil
			}
			entry := m.form.toEntry()
			if err := m.services.Validator.Validate(m.ctx, entry); err != nil {
				m.showErrorf(entryError(err))
				return m, nil
			}
			m.form.submitting = true
			if m.form.editing {
				return m, m.cmdUpdateEntry(m.form.original.Title, entry)
			}
			return m, m.cmdAddEntry(entry)
		}
	}

	before := m.form.password()
	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	if after := m.form.password(); after != before {
		m.form.hasStrength = false
		if after != "" {
			return m, tea.Batch(cmd, m.cmdScore(after))
		}
	}
	return m, cmd
}

func entryError(err error) string {
	if errors.Is(err, validators.ErrEmptyTitle) {
		return "Title is required"
	}
	return humanizeError(err)
}

func (m appModel) updateGenerator(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.gen.focus = focusNext(m.gen.inputs, m.gen.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.gen.focus = focusPrev(m.gen.inputs, m.gen.focus)
			return m, nil
		case key.Matches(keyMsg, keys.toggleUpper):
			m.gen.opts.Upper = !m.gen.opts.Upper
			return m, nil
		case key.Matches(keyMsg, keys.toggleDigits):
			m.gen.opts.Digits = !m.gen.opts.Digits
			return m, nil
		case key.Matches(keyMsg, keys.toggleSpecial):
			m.gen.opts.Special = !m.gen.opts.Special
			return m, nil
		case key.Matches(keyMsg, keys.copyResult):
			if m.gen.result == "" {
				return m, nil
			}
			return m, cmdCopyToClipboard(m.gen.result)
		case key.Matches(keyMsg, keys.enter):
			opts := m.gen.options()
			if err := m.services.Validator.Validate(m.ctx, opts); err != nil {
				m.showErrorf(generatorError(err))
				return m, nil
			}
			password, err := m.services.Generator.FromOptions(opts)
			if err != nil {
				m.showErrorf(humanizeError(err))
				return m, nil
			}
			m.gen.result = password
			m.gen.hasStrength = false
			return m, m.cmdScore(password)
		}
	}

	var cmd tea.Cmd
	m.gen.inputs[m.gen.focus], cmd = m.gen.inputs[m.gen.focus].Update(msg)
	return m, cmd
}

func generatorError(err error) string {
	if errors.Is(err, validators.ErrNoCharacters) {
		return "Every allowed character is excluded"
	}
	return humanizeError(err)
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenList
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.settings.focus = focusNext(m.settings.inputs, m.settings.focus)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.settings.focus = focusPrev(m.settings.inputs, m.settings.focus)
			return m, nil
		case key.Matches(keyMsg, keys.deleteAccount):
			m.showConfirm = true
			m.confirm = confirmModel{action: confirmDeleteAccount, subject: m.settings.account}
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.settings.submitting {
				return m, nil
			}
			newName := m.settings.newName()
			current := m.settings.inputs[settingsCurrent].Value()
			next := m.settings.inputs[settingsNext].Value()
			switch {
			case newName != "" && newName != m.settings.account:
				m.settings.submitting = true
				return m, m.cmdRename(newName, next)
			case next != "":
				m.settings.submitting = true
				return m, m.cmdChangePassword(current, next)
			}
			m.currentScreen = screenList
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.settings.inputs[m.settings.focus], cmd = m.settings.inputs[m.settings.focus].Update(msg)
	return m, cmd
}

// ── Commands ──────────────────────────────────────────────────────────────

func (m appModel) cmdSession(creds models.Credentials, signup bool) tea.Cmd {
	ctx := m.ctx
	session := m.services.Session
	return func() tea.Msg {
		var (
			state models.SessionState
			doc   models.VaultDocument
			err   error
		)
		if signup {
			state, doc, err = session.Signup(ctx, creds.AccountName, creds.Passphrase)
		} else {
			state, doc, err = session.Login(ctx, creds.AccountName, creds.Passphrase)
		}
		return sessionDoneMsg{state: state, doc: doc, err: err}
	}
}

func (m appModel) cmdSearch() tea.Cmd {
	vault := m.services.Vault
	query, scope := m.list.query.Value(), m.list.scope
	return func() tea.Msg {
		return searchDoneMsg{query: query, scope: scope, entries: <-vault.SearchAsync(query, scope)}
	}
}

func (m appModel) cmdScore(password string) tea.Cmd {
	ctx := m.ctx
	calc := m.services.Strength
	return func() tea.Msg {
		category, ok := <-calc.ScoreAsync(ctx, password)
		if !ok {
			return nil
		}
		return strengthMsg{password: password, category: category}
	}
}

func (m appModel) cmdAddEntry(entry models.Entry) tea.Cmd {
	ctx := m.ctx
	svc := m.services
	log := m.logger
	return func() tea.Msg {
		entry.StrengthCategory = svc.Strength.Score(entry.Password)
		if err := svc.Vault.CheckEntryCompromised(ctx, &entry); err != nil {
			log.Warn().Err(err).Msg("breach check for new entry failed")
		}
		svc.Vault.AddEntry(entry)
		return itemSavedMsg{err: svc.Vault.Save(ctx)}
	}
}

func (m appModel) cmdUpdateEntry(title string, edited models.Entry) tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		return itemSavedMsg{err: vault.UpdateEntry(ctx, title, edited)}
	}
}

func (m appModel) cmdDeleteEntry(title string) tea.Cmd {
	ctx := m.ctx
	vault := m.services.Vault
	return func() tea.Msg {
		return itemDeletedMsg{err: vault.DeleteEntry(ctx, title)}
	}
}

func (m appModel) cmdSweep() tea.Cmd {
	ctx := m.ctx
	sweep := m.services.Sweep
	return func() tea.Msg {
		return sweepDoneMsg{err: sweep.Run(ctx)}
	}
}

func (m appModel) cmdRename(newName, newPassword string) tea.Cmd {
	ctx := m.ctx
	settings := m.services.Settings
	return func() tea.Msg {
		return settingsDoneMsg{err: settings.Rename(ctx, newName, newPassword)}
	}
}

func (m appModel) cmdChangePassword(current, next string) tea.Cmd {
	ctx := m.ctx
	settings := m.services.Settings
	return func() tea.Msg {
		return settingsDoneMsg{err: settings.ChangePassword(ctx, current, next)}
	}
}

func (m appModel) cmdDeleteAccount() tea.Cmd {
	ctx := m.ctx
	settings := m.services.Settings
	return func() tea.Msg {
		err := settings.DeleteAccount(ctx)
		return settingsDoneMsg{err: err, deleted: err == nil}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return itemSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
