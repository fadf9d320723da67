// Package cli is the line-oriented terminal front end. It reads one command per
// line, drives the use cases and redraws the current view after each command.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"engineershub/config"
	"engineershub/internal/delivery"
	"engineershub/internal/delivery/middleware"
	"engineershub/internal/delivery/view"
	domainerrors "engineershub/internal/domain/errors"
	"engineershub/internal/errors"
	"engineershub/internal/usecase"

	"go.uber.org/fx"
)

const (
	prompt          = "> "
	msgSignInFirst  = "Please sign in first."
	msgUnexpected   = "Something went wrong. Please try again."
	endOfMultiline  = "."
	maxScannerBytes = 1024 * 1024
)

// Terminal is the pair of streams the shell talks through.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

// QRExporter renders a link as a QR code PNG.
type QRExporter interface {
	PNG(link string) ([]byte, error)
}

type ShellParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Terminal  Terminal
	Session   usecase.SessionUsecase
	Dashboard usecase.DashboardUsecase
	Projects  usecase.ProjectUsecase
	Quiz      usecase.QuizUsecase
	Interview usecase.InterviewUsecase
	Companies usecase.CompanyUsecase
	Profile   usecase.ProfileUsecase
	QR        QRExporter
}

type command struct {
	usage  string
	public bool
	run    func(ctx context.Context, args []string) error
}

// Shell is the interactive terminal client.
type Shell struct {
	logger  *slog.Logger
	scanner *bufio.Scanner
	out     io.Writer

	session   usecase.SessionUsecase
	dashboard usecase.DashboardUsecase
	projects  usecase.ProjectUsecase
	quiz      usecase.QuizUsecase
	interview usecase.InterviewUsecase
	companies usecase.CompanyUsecase
	profile   usecase.ProfileUsecase
	qr        QRExporter

	router   *view.Router
	commands map[string]command
	handler  middleware.HandlerFunc

	readFile  func(name string) ([]byte, error)
	writeFile func(name string, data []byte) error

	authMessage    string
	profileMessage string
}

func NewShell(params ShellParams) (*Shell, error) {
	scanner := bufio.NewScanner(params.Terminal.In)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScannerBytes)

	s := &Shell{
		logger:    params.Logger,
		scanner:   scanner,
		out:       params.Terminal.Out,
		session:   params.Session,
		dashboard: params.Dashboard,
		projects:  params.Projects,
		quiz:      params.Quiz,
		interview: params.Interview,
		companies: params.Companies,
		profile:   params.Profile,
		qr:        params.QR,
		readFile:  os.ReadFile,
		writeFile: func(name string, data []byte) error {
			return os.WriteFile(name, data, 0o644)
		},
	}

	router, err := view.NewRouter(s.screens(), s.authScreen, params.Session)
	if err != nil {
		return nil, err
	}
	s.router = router
	s.commands = s.commandTable()
	s.handler = middleware.Chain(
		s.dispatch,
		middleware.NewRequestIDMiddleware(params.Logger).Process,
		middleware.NewLoggerMiddleware(params.Logger, params.Config).Handle,
	)

	return s, nil
}

// NewDelivery exposes the shell as a delivery.
func NewDelivery(s *Shell) delivery.Delivery {
	return s
}

// Serve runs the read-eval-render loop until quit, end of input or ctx is done.
func (s *Shell) Serve(ctx context.Context) error {
	s.render(ctx)

	for {
		if ctx.Err() != nil {
			return nil
		}

		s.printf("%s", prompt)
		if !s.scanner.Scan() {
			return errors.WithStack(s.scanner.Err())
		}

		fields := strings.Fields(s.scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name, args := strings.ToLower(fields[0]), fields[1:]

		if name == "quit" || name == "exit" {
			s.println("Goodbye!")

			return nil
		}

		cmd, ok := s.commands[name]
		if !ok {
			s.printf("Unknown command %q. Type help for a list of commands.\n", name)

			continue
		}
		if !cmd.public && !s.session.Authenticated() {
			s.println(msgSignInFirst)

			continue
		}

		if err := s.handler(ctx, name, args); err != nil {
			s.report(err)

			continue
		}
		if name != "help" {
			s.render(ctx)
		}
	}
}

func (s *Shell) dispatch(ctx context.Context, name string, args []string) error {
	return s.commands[name].run(ctx, args)
}

func (s *Shell) render(ctx context.Context) {
	s.println("")
	if err := s.router.Render(ctx, s.out); err != nil {
		s.logger.ErrorContext(ctx, "Failed to render view", slog.Any("error", err))
	}
}

// report prints the static message for err. Raw server payloads never reach the screen.
func (s *Shell) report(err error) {
	msg := domainerrors.UserMessage(err, msgUnexpected)
	if appErr, ok := errors.AsType[*domainerrors.BaseError](err); ok &&
		errors.Is(err, domainerrors.ErrValidationFailed) && appErr.Details() != "" {
		msg += ": " + appErr.Details()
	}
	s.printf("! %s\n", msg)
}

func (s *Shell) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Shell) println(line string) {
	_, _ = fmt.Fprintln(s.out, line)
}

// ask prompts for one line. ok is false at end of input.
func (s *Shell) ask(label string) (string, bool) {
	s.printf("%s: ", label)
	if !s.scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(s.scanner.Text()), true
}

// readBlock collects lines until a line holding only ".".
func (s *Shell) readBlock(intro string) string {
	s.printf("%s (end with a line containing only %q)\n", intro, endOfMultiline)

	var lines []string
	for s.scanner.Scan() {
		line := s.scanner.Text()
		if strings.TrimSpace(line) == endOfMultiline {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (s *Shell) help(_ context.Context, _ []string) error {
	names := make([]string, 0, len(s.commands))
	for name := range s.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	s.println("Commands:")
	for _, name := range names {
		s.printf("  %s\n", s.commands[name].usage)
	}
	s.println("  quit")

	return nil
}
