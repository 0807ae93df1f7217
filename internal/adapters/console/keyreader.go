package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the user presses a cancel key
var ErrCancelled = errors.New("selection cancelled")

// CancelKey ends the prompt without a choice
var CancelKey = key.NewBinding(
	key.WithKeys("esc", "ctrl+c"),
	key.WithHelp("esc", "cancel"),
)

// inputClosedMsg is sent when the input reaches EOF before a key arrives
type inputClosedMsg struct{}

// keyModel waits for exactly one key press, then quits
type keyModel struct {
	key       string
	cancelled bool
	closed    bool
}

func (m keyModel) Init() tea.Cmd {
	return nil
}

func (m keyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The first key or EOF wins; later messages arrive before the quit lands
	if m.key != "" || m.closed {
		return m, nil
	}

	if _, ok := msg.(inputClosedMsg); ok {
		m.closed = true
		return m, tea.Quit
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.key = keyMsg.String()
	m.cancelled = key.Matches(keyMsg, CancelKey)
	return m, tea.Quit
}

func (m keyModel) View() string {
	return ""
}

// KeyReader implements ports.KeyReader with a bubbletea program, which puts
// the terminal in raw mode so no Enter is needed
type KeyReader struct {
	in  io.Reader
	out io.Writer
}

// NewKeyReader creates a key reader on stdin
func NewKeyReader() *KeyReader {
	return &KeyReader{in: os.Stdin, out: os.Stderr}
}

// eofReader closes eof the first time the wrapped reader reports io.EOF.
// bubbletea stops reading at EOF without telling the model.
type eofReader struct {
	r    io.Reader
	eof  chan struct{}
	once sync.Once
}

func newEOFReader(r io.Reader) *eofReader {
	return &eofReader{r: r, eof: make(chan struct{})}
}

func (e *eofReader) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) {
		e.once.Do(func() { close(e.eof) })
	}
	return n, err
}

// ReadKey blocks until one key is pressed. It returns io.EOF when the input
// is closed first.
func (r *KeyReader) ReadKey() (string, error) {
	in := newEOFReader(r.in)
	p := tea.NewProgram(keyModel{},
		tea.WithInput(in),
		tea.WithOutput(r.out),
		tea.WithoutSignalHandler(),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-in.eof:
			p.Send(inputClosedMsg{})
		case <-done:
		}
	}()

	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("failed to read key: %w", err)
	}

	m, ok := final.(keyModel)
	if !ok {
		return "", fmt.Errorf("unexpected model %T", final)
	}
	if m.cancelled {
		return m.key, ErrCancelled
	}
	if m.key == "" {
		return "", io.EOF
	}
	return m.key, nil
}
