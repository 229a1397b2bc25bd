package shell

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vvka-141/vshell/internal/logging"
	"github.com/vvka-141/vshell/internal/vfs"
	"github.com/vvka-141/vshell/pkg/vshell"
)

// transcriptNamespace seeds the v5 UUIDs of transcript lines.
var transcriptNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("vshell/transcript/v1"))

// Line is one transcript entry.
type Line struct {
	ID        string `json:"id" yaml:"id"`
	Seq       uint64 `json:"seq" yaml:"seq"`
	Text      string `json:"text" yaml:"text"`
	IsCommand bool   `json:"isCommand" yaml:"isCommand"`
}

// Persister receives write-through session state. Implementations must not
// retain the slices they are given beyond the call.
type Persister interface {
	SaveTree(ctx context.Context, fs *vfs.FileSystem) error
	SaveTranscript(ctx context.Context, lines []Line) error
	SaveHistory(ctx context.Context, history []string) error
	ClearTranscript(ctx context.Context) error
}

// Options configures a Session. Zero values select defaults.
type Options struct {
	FS         *vfs.FileSystem
	History    []string
	Transcript []Line
	Persister  Persister
	Logger     vshell.Logger
	User       string
	Host       string

	// Context bounds persistence calls; each call also gets StoreTimeout.
	Context      context.Context
	StoreTimeout time.Duration
}

// Session is one interactive shell: filesystem, history, transcript and
// pending input.
type Session struct {
	fs         *vfs.FileSystem
	interp     *Interpreter
	history    []string
	cursor     int
	transcript []Line
	seq        uint64
	input      LineBuffer

	persister Persister
	logger    vshell.Logger
	user      string
	host      string
	ctx       context.Context
	timeout   time.Duration
}

// NewSession builds a session from restored or fresh state.
func NewSession(opts Options) *Session {
	s := &Session{
		fs:         opts.FS,
		interp:     NewInterpreter(),
		history:    append([]string(nil), opts.History...),
		cursor:     -1,
		transcript: append([]Line(nil), opts.Transcript...),
		persister:  opts.Persister,
		logger:     opts.Logger,
		user:       opts.User,
		host:       opts.Host,
		ctx:        opts.Context,
		timeout:    opts.StoreTimeout,
	}
	if s.fs == nil {
		s.fs = vfs.New()
	}
	if s.logger == nil {
		s.logger = logging.NewNullLogger()
	}
	if s.user == "" {
		s.user = vshell.DefaultUser
	}
	if s.host == "" {
		s.host = vshell.DefaultHost
	}
	if s.ctx == nil {
		s.ctx = context.Background()
	}
	if s.timeout <= 0 {
		s.timeout = vshell.DefaultStoreTimeout
	}
	for _, l := range s.transcript {
		if l.Seq > s.seq {
			s.seq = l.Seq
		}
	}
	return s
}

// FileSystem returns the session's tree.
func (s *Session) FileSystem() *vfs.FileSystem { return s.fs }

// History returns a copy of the submitted commands.
func (s *Session) History() []string { return append([]string(nil), s.history...) }

// HistoryCursor returns the browsing index, or -1 when not browsing.
func (s *Session) HistoryCursor() int { return s.cursor }

// Transcript returns a copy of the transcript.
func (s *Session) Transcript() []Line { return append([]Line(nil), s.transcript...) }

// Input returns the pending input text.
func (s *Session) Input() string { return s.input.Value() }

// InputPos returns the edit cursor within the pending input.
func (s *Session) InputPos() int { return s.input.Pos() }

// Buffer exposes the pending input for editing.
func (s *Session) Buffer() *LineBuffer { return &s.input }

// Interpreter returns the command interpreter.
func (s *Session) Interpreter() *Interpreter { return s.interp }

// Prompt returns "user@host:<pwd>$".
func (s *Session) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$", s.user, s.host, s.fs.WorkingPath())
}

// Submit executes the pending input and clears it.
func (s *Session) Submit() Result {
	line := s.input.Value()
	s.input.Reset()
	s.cursor = -1
	return s.Execute(line)
}

// Execute runs line as if it had been typed. Blank input changes nothing.
func (s *Session) Execute(line string) Result {
	raw := strings.TrimSpace(line)
	if raw == "" {
		return Result{}
	}

	s.history = append(s.history, raw)
	s.cursor = -1
	s.persist("history", func(ctx context.Context) error {
		return s.persister.SaveHistory(ctx, s.history)
	})

	prompt := s.Prompt()
	res := s.interp.Execute(Env{FS: s.fs, History: s.history}, raw)
	if res.Err != nil {
		s.logger.Verbose("command %q failed: %v", raw, res.Err)
	}

	if res.Mutated {
		s.persist("tree", func(ctx context.Context) error {
			return s.persister.SaveTree(ctx, s.fs)
		})
	}

	if res.Clear {
		s.ClearScreen()
		return res
	}

	s.appendLine(prompt+" "+raw, true)
	if res.Output != "" {
		s.appendLine(res.Output, false)
	}
	s.saveTranscript()
	return res
}

// ClearScreen empties the transcript without recording a command.
func (s *Session) ClearScreen() {
	s.transcript = nil
	s.persist("transcript", func(ctx context.Context) error {
		return s.persister.ClearTranscript(ctx)
	})
}

// HistoryUp recalls the previous history entry.
func (s *Session) HistoryUp() {
	if len(s.history) == 0 {
		return
	}
	switch {
	case s.cursor == -1:
		s.cursor = len(s.history) - 1
	case s.cursor > 0:
		s.cursor--
	}
	s.input.Set(s.history[s.cursor])
}

// HistoryDown recalls the next history entry. Moving past the newest entry
// stops browsing and clears the input.
func (s *Session) HistoryDown() {
	if s.cursor == -1 {
		return
	}
	s.cursor++
	if s.cursor >= len(s.history) {
		s.cursor = -1
		s.input.Reset()
		return
	}
	s.input.Set(s.history[s.cursor])
}

// Complete completes the argument of a "<command> <partial>" input against
// the current directory. One match replaces the partial; several are listed
// in the transcript. It returns the candidates.
func (s *Session) Complete() []string {
	name, partial, ok := splitCompletable(s.input.Value())
	if !ok {
		return nil
	}
	res, err := s.fs.Resolve("")
	if err != nil {
		s.logger.Verbose("completion: %v", err)
		return nil
	}

	matches := completionCandidates(res.Node, partial)
	switch len(matches) {
	case 0:
	case 1:
		s.input.Set(name + " " + matches[0])
	default:
		s.appendLine(strings.Join(matches, listSeparator), false)
		s.saveTranscript()
	}
	return matches
}

func (s *Session) appendLine(text string, isCommand bool) {
	s.seq++
	s.transcript = append(s.transcript, Line{
		ID:        lineID(s.seq, text),
		Seq:       s.seq,
		Text:      text,
		IsCommand: isCommand,
	})
}

func (s *Session) saveTranscript() {
	s.persist("transcript", func(ctx context.Context) error {
		return s.persister.SaveTranscript(ctx, s.transcript)
	})
}

// persist runs one write-through call. Failures are logged; in-memory
// state stays authoritative.
func (s *Session) persist(what string, save func(ctx context.Context) error) {
	if s.persister == nil {
		return
	}
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()
	if err := save(ctx); err != nil {
		s.logger.Error("failed to persist %s: %v", what, err)
	}
}

func lineID(seq uint64, text string) string {
	return uuid.NewSHA1(transcriptNamespace, []byte(fmt.Sprintf("%d:%s", seq, text))).String()
}
