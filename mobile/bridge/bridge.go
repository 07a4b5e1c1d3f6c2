//go:generate mockgen -package=mocks -destination=../../mocks/mock_trace_listener.go github.com/rotorsim/rotorsim/mobile/bridge TraceListener

// Package bridge provides a gomobile-compatible wrapper around the machine.
// Native hosts open a session per on-screen machine and drive it with plain
// strings and ints.
package bridge

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/rotorsim/rotorsim/core/config"
	"github.com/rotorsim/rotorsim/core/engine"
	"github.com/rotorsim/rotorsim/core/format"
	"github.com/rotorsim/rotorsim/pkg/logging"
)

// ErrUnknownSession is returned for a session id that was never opened or
// has been closed.
var ErrUnknownSession = errors.New("unknown session")

// TraceListener is implemented by native code that wants to animate the
// signal path of every key press. OnTrace runs while the session is locked
// and must not call back into the same session.
type TraceListener interface {
	OnTrace(sessionID, path string)
}

type session struct {
	mu     sync.Mutex
	engine *engine.Engine
}

// Bridge is a registry of machine sessions. Sessions are independent; calls
// on one session are serialized.
type Bridge struct {
	mu       sync.Mutex
	sessions map[string]*session
	logger   logging.Logger
}

// New creates an empty bridge.
func New(logger logging.Logger) *Bridge {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Bridge{
		sessions: make(map[string]*session),
		logger:   logger.With("component", "bridge"),
	}
}

// OpenSession starts a machine from YAML settings; an empty string uses the
// defaults. listener may be nil.
func (b *Bridge) OpenSession(settingsYAML string, listener TraceListener) (string, error) {
	settings, err := parseSettings(settingsYAML)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	opts := []engine.Option{engine.WithLogger(b.logger.With("session", id))}
	if listener != nil {
		opts = append(opts, engine.WithTrace(func(path string) {
			listener.OnTrace(id, path)
		}))
	}

	e, err := engine.New(settings, opts...)
	if err != nil {
		return "", err
	}

	b.mu.Lock()
	b.sessions[id] = &session{engine: e}
	b.mu.Unlock()

	b.logger.Info("session opened", "session", id, "machine", e.String())
	return id, nil
}

// CloseSession forgets the session.
func (b *Bridge) CloseSession(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}
	delete(b.sessions, id)
	b.logger.Info("session closed", "session", id)
	return nil
}

// Sessions returns the number of open sessions.
func (b *Bridge) Sessions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.sessions)
}

func (b *Bridge) with(id string, fn func(e *engine.Engine) error) error {
	b.mu.Lock()
	s, ok := b.sessions[id]
	b.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.engine)
}

// PressKey encodes the single character key and returns the lamp letter.
func (b *Bridge) PressKey(id, key string) (string, error) {
	r, size := utf8.DecodeRuneInString(key)
	if size == 0 || size != len(key) {
		return "", fmt.Errorf("key must be a single character, got %q", key)
	}
	var out string
	err := b.with(id, func(e *engine.Engine) error {
		out = string(e.EncodeChar(r))
		return nil
	})
	return out, err
}

// EncodeText encodes text and returns the result.
func (b *Bridge) EncodeText(id, text string) (string, error) {
	var out string
	err := b.with(id, func(e *engine.Engine) error {
		out = e.Encode(text)
		return nil
	})
	return out, err
}

// Spin turns one rotor by hand and returns its new window letter.
func (b *Bridge) Spin(id string, slot, delta int) (string, error) {
	var out string
	err := b.with(id, func(e *engine.Engine) error {
		letter, err := e.SpinRotor(slot, delta)
		if err != nil {
			return err
		}
		out = string(letter)
		return nil
	})
	return out, err
}

// Positions returns the window letters, e.g. "MCK".
func (b *Bridge) Positions(id string) (string, error) {
	var out string
	err := b.with(id, func(e *engine.Engine) error {
		out = e.PositionString()
		return nil
	})
	return out, err
}

// Reset turns the rotors back to the start position.
func (b *Bridge) Reset(id string) error {
	return b.with(id, func(e *engine.Engine) error {
		e.Reset()
		return nil
	})
}

// Reconfigure applies new YAML settings. On error the session keeps its
// current configuration.
func (b *Bridge) Reconfigure(id, settingsYAML string) error {
	settings, err := parseSettings(settingsYAML)
	if err != nil {
		return err
	}
	return b.with(id, func(e *engine.Engine) error {
		return e.Reconfigure(settings)
	})
}

// Describe returns the one-line machine summary.
func (b *Bridge) Describe(id string) (string, error) {
	var out string
	err := b.with(id, func(e *engine.Engine) error {
		out = e.String()
		return nil
	})
	return out, err
}

func parseSettings(settingsYAML string) (config.Settings, error) {
	if settingsYAML == "" {
		return config.DefaultSettings(), nil
	}
	s, err := config.ParseSettings([]byte(settingsYAML))
	if err != nil {
		return config.Settings{}, err
	}
	return *s, nil
}

var (
	globalMu     sync.Mutex
	globalBridge *Bridge
)

func defaultBridge() *Bridge {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalBridge == nil {
		globalBridge = New(nil)
	}
	return globalBridge
}

// SetGlobalBridgeForTesting replaces the bridge used by the package-level
// functions. nil resets it.
func SetGlobalBridgeForTesting(b *Bridge) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalBridge = b
}

// OpenSession opens a session on the global bridge.
func OpenSession(settingsYAML string, listener TraceListener) (string, error) {
	return defaultBridge().OpenSession(settingsYAML, listener)
}

// CloseSession closes a session on the global bridge.
func CloseSession(id string) error {
	return defaultBridge().CloseSession(id)
}

// PressKey presses one key on a global-bridge session.
func PressKey(id, key string) (string, error) {
	return defaultBridge().PressKey(id, key)
}

// EncodeText encodes text on a global-bridge session.
func EncodeText(id, text string) (string, error) {
	return defaultBridge().EncodeText(id, text)
}

// Spin turns a rotor on a global-bridge session.
func Spin(id string, slot, delta int) (string, error) {
	return defaultBridge().Spin(id, slot, delta)
}

// Positions reads the windows of a global-bridge session.
func Positions(id string) (string, error) {
	return defaultBridge().Positions(id)
}

// Reset resets a global-bridge session.
func Reset(id string) error {
	return defaultBridge().Reset(id)
}

// Reconfigure reconfigures a global-bridge session.
func Reconfigure(id, settingsYAML string) error {
	return defaultBridge().Reconfigure(id, settingsYAML)
}

// Describe summarizes a global-bridge session.
func Describe(id string) (string, error) {
	return defaultBridge().Describe(id)
}

// GroupLetters formats text as five-letter groups.
func GroupLetters(text string) string {
	return format.GroupLetters(text)
}
