// Package tui is the terminal front end of the vault: account screens, the
// entry list with search, entry details with live one-time codes, the entry
// form, the password generator and account settings.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-vault-guard/internal/events"
	"github.com/MKhiriev/go-vault-guard/internal/logger"
	"github.com/MKhiriev/go-vault-guard/internal/service"
	"github.com/MKhiriev/go-vault-guard/models"
)

type TUI struct {
	services  *service.Services
	bus       *events.Bus
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, bus *events.Bus, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		bus:       bus,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// senderQueueSize bounds the messages waiting for the program loop.
const senderQueueSize = 64

// programSender forwards messages from background goroutines into the
// running program, in the order they were sent. Messages sent before the
// program starts, or while the queue is full, are dropped.
type programSender struct {
	mu    sync.RWMutex
	send  func(tea.Msg)
	queue chan tea.Msg
	done  chan struct{}
	stop  sync.Once
}

func newProgramSender() *programSender {
	return &programSender{
		queue: make(chan tea.Msg, senderQueueSize),
		done:  make(chan struct{}),
	}
}

// attach starts the single forwarding goroutine.
func (s *programSender) attach(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.send != nil {
		return
	}
	s.send = send

	go func() {
		for {
			select {
			case <-s.done:
				return
			case msg := <-s.queue:
				select {
				case <-s.done:
					return
				default:
				}
				send(msg)
			}
		}
	}()
}

// Send never blocks the caller.
func (s *programSender) Send(msg tea.Msg) {
	s.mu.RLock()
	attached := s.send != nil
	s.mu.RUnlock()

	if !attached {
		return
	}
	select {
	case <-s.done:
		return
	default:
	}
	select {
	case s.queue <- msg:
	default:
	}
}

// close stops forwarding. Queued messages are discarded.
func (s *programSender) close() {
	s.stop.Do(func() { close(s.done) })
}

// Run blocks until the user quits. It returns ErrUserQuit on a regular
// exit.
func (t *TUI) Run(ctx context.Context) error {
	sender := newProgramSender()
	defer sender.close()
	model := newAppModel(ctx, t.services, sender, t.buildInfo, t.logger)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	sender.attach(p.Send)

	unsubscribe := t.bus.Subscribe(func(e events.Event) {
		sender.Send(busEventMsg{event: e})
	})
	defer unsubscribe()
	defer t.services.TOTP.Stop()

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.err
	}
	return ErrUserQuit
}
