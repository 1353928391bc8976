// Copyright (c) 2025 Fusion Chat Project
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui wires the three screens (login, chat list, room) into a
// single Bubble Tea program and owns the conversation turn cycle:
// submit, await reply, reply arrived.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fusionchat/fusion-tui/internal/config"
	"github.com/fusionchat/fusion-tui/internal/gemini"
	"github.com/fusionchat/fusion-tui/internal/model"
	"github.com/fusionchat/fusion-tui/internal/telemetry"
	"github.com/fusionchat/fusion-tui/internal/ui/chatlist"
	"github.com/fusionchat/fusion-tui/internal/ui/components"
	"github.com/fusionchat/fusion-tui/internal/ui/login"
	"github.com/fusionchat/fusion-tui/internal/ui/room"
	"github.com/fusionchat/fusion-tui/internal/ui/styles"
	"github.com/fusionchat/fusion-tui/internal/util"
)

// =============================================================================
// VIEW STATE
// =============================================================================

// View identifies the active screen.
type View int

const (
	ViewLogin View = iota
	ViewChatList
	ViewRoom
)

// String returns the view name for logging and tests.
func (v View) String() string {
	switch v {
	case ViewLogin:
		return "login"
	case ViewChatList:
		return "chatlist"
	case ViewRoom:
		return "room"
	default:
		return "unknown"
	}
}

// =============================================================================
// MESSAGES
// =============================================================================

// ReplyMsg carries the contact's reply back into the update loop.
type ReplyMsg struct {
	Text    string
	Elapsed time.Duration
}

// Replier produces the contact's reply for a submitted message. It
// never fails; degraded outcomes surface as canned reply text.
type Replier interface {
	GetReply(ctx context.Context, history []gemini.Turn, prompt string) string
}

// =============================================================================
// APP MODEL
// =============================================================================

// App is the root model. It owns the conversation store and the turn
// state; the screens only render it. Replies are appended to the store
// whenever they arrive, even if the user has left the room.
type App struct {
	theme *styles.Theme
	cfg   *config.Config

	conv    *model.Conversation
	gateway Replier
	sink    *telemetry.Sink

	view     View
	username string
	typing   bool
	privacy  bool

	replyDelay time.Duration

	login    login.Model
	chatlist chatlist.Model
	room     room.Model

	width  int
	height int
}

// NewApp assembles the root model from its collaborators. A nil sink
// disables telemetry.
func NewApp(cfg *config.Config, gateway Replier, sink *telemetry.Sink) App {
	theme := styles.NewTheme()

	app := App{
		theme:      theme,
		cfg:        cfg,
		conv:       model.NewConversation(),
		gateway:    gateway,
		sink:       sink,
		view:       ViewLogin,
		privacy:    cfg.UI.PrivacyOnStart,
		replyDelay: cfg.ReplyDelay(),
		login:      login.New(theme),
		chatlist:   chatlist.New(theme, cfg.Chat.ContactName),
		room:       room.New(theme, cfg.Chat.ContactName),
	}
	app.room.SetPrivacy(app.privacy)
	if cfg.API.Key == "" {
		app.login.SetWarning("No API key configured. Replies will use the offline fallback.")
	}
	return app
}

// Conversation exposes the store for tests.
func (a App) Conversation() *model.Conversation {
	return a.conv
}

// ActiveView exposes the current view for tests.
func (a App) ActiveView() View {
	return a.view
}

// Typing reports whether a reply is pending.
func (a App) Typing() bool {
	return a.typing
}

// Username returns the signed-in display name.
func (a App) Username() string {
	return a.username
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.login.Init()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update dispatches to the active screen and drives the turn cycle.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.theme.SetSize(msg.Width, msg.Height)
		a.login.SetSize(msg.Width, msg.Height)
		a.chatlist.SetSize(msg.Width, msg.Height)
		a.room.SetSize(msg.Width, msg.Height)
		a.room.SetMessages(a.conv.Snapshot())
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case components.TypingTickMsg:
		// The animation keeps ticking even off-screen so the room is
		// current when the user returns.
		var cmd tea.Cmd
		a.room, cmd = a.room.Update(msg)
		return a, cmd

	case login.SubmittedMsg:
		a.username = msg.Username
		a.view = ViewChatList
		return a, nil

	case chatlist.SelectedMsg:
		a.view = ViewRoom
		a.room.SetMessages(a.conv.Snapshot())
		return a, a.room.Init()

	case chatlist.BackMsg:
		a.view = ViewLogin
		a.username = ""
		a.login.Reset()
		return a, a.login.Init()

	case room.BackMsg:
		a.view = ViewChatList
		a.refreshPreview()
		return a, nil

	case room.TogglePrivacyMsg:
		a.privacy = !a.privacy
		a.room.SetPrivacy(a.privacy)
		return a, nil

	case room.SubmitMsg:
		return a.submit(msg.Text)

	case ReplyMsg:
		return a.replyArrived(msg)
	}

	return a.updateActive(msg)
}

// updateActive forwards a message to whichever screen is showing.
func (a App) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.view {
	case ViewLogin:
		a.login, cmd = a.login.Update(msg)
	case ViewChatList:
		a.chatlist, cmd = a.chatlist.Update(msg)
	case ViewRoom:
		a.room, cmd = a.room.Update(msg)
	}
	return a, cmd
}

// =============================================================================
// TURN CYCLE
// =============================================================================

// submit starts a turn: append the user message, raise the typing
// flag, and fire the gateway command. A submit while a reply is
// pending is dropped so turns never interleave.
func (a App) submit(text string) (tea.Model, tea.Cmd) {
	if a.typing || util.IsBlank(text) {
		return a, nil
	}

	// History is captured before the new message so the prompt is not
	// duplicated inside it.
	history := a.conv.History(a.cfg.Chat.HistoryLimit)

	a.conv.AppendUserMessage(text)
	a.typing = true
	a.room.SetMessages(a.conv.Snapshot())
	tickCmd := a.room.SetTyping(true)

	return a, tea.Batch(tickCmd, a.replyCmd(history, text))
}

// replyCmd asks the gateway for a reply off the update loop, then
// holds it back for the configured delay so the typing indicator
// reads naturally.
func (a App) replyCmd(history []gemini.Turn, prompt string) tea.Cmd {
	gateway := a.gateway
	delay := a.replyDelay
	return func() tea.Msg {
		start := time.Now()
		reply := gateway.GetReply(context.Background(), history, prompt)
		if delay > 0 {
			time.Sleep(delay)
		}
		return ReplyMsg{Text: reply, Elapsed: time.Since(start)}
	}
}

// replyArrived finishes the turn regardless of the active view.
func (a App) replyArrived(msg ReplyMsg) (tea.Model, tea.Cmd) {
	a.conv.AppendContactMessage(msg.Text)
	a.typing = false
	a.room.SetTyping(false)
	a.room.SetMessages(a.conv.Snapshot())
	a.refreshPreview()
	a.sink.TurnLatency(msg.Elapsed)
	return a, nil
}

// refreshPreview pushes the latest message text to the chat list row.
func (a *App) refreshPreview() {
	preview := ""
	if last := a.conv.LastMessage(); last != nil {
		preview = last.Preview(48)
	}
	a.chatlist.SetPreview(a.cfg.Chat.ContactName, preview)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the active screen.
func (a App) View() string {
	switch a.view {
	case ViewLogin:
		return a.login.View()
	case ViewChatList:
		return a.chatlist.View()
	case ViewRoom:
		return a.room.View()
	default:
		return ""
	}
}
