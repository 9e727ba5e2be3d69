// Package cli implements the line-based patient management menu.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"patientdesk/internal/patient/models"
	id "patientdesk/pkg/domain"
)

// PatientService is the subset of the patient service the menu drives.
type PatientService interface {
	AddPatient(ctx context.Context, req *models.CreatePatientRequest) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]*models.Patient, error)
	GetPatient(ctx context.Context, patientID id.PatientID) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID id.PatientID, req *models.UpdatePatientRequest) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID id.PatientID) error
}

// Menu reads choices and field values line by line from an input stream and
// writes prompts and results to an output stream.
type Menu struct {
	service PatientService
	reader  *bufio.Reader
	out     io.Writer
	logger  *slog.Logger
}

type Option func(*Menu)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Menu) {
		m.logger = logger
	}
}

func New(service PatientService, in io.Reader, out io.Writer, opts ...Option) *Menu {
	m := &Menu{
		service: service,
		reader:  bufio.NewReader(in),
		out:     out,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run shows the menu until the user exits, the input ends or ctx is cancelled.
// Exit and end of input return nil; cancellation returns ctx.Err().
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printMenu()
		choice, err := m.ask(ctx, promptChoice)
		if err == nil {
			err = m.dispatch(ctx, choice)
		}
		switch {
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			m.println(msgGoodbye)
			return nil
		case err != nil:
			return err
		}
	}
}

var errExit = errors.New("exit requested")

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.addPatient(ctx)
	case "2":
		return m.listPatients(ctx)
	case "3":
		return m.searchPatient(ctx)
	case "4":
		return m.updatePatient(ctx)
	case "5":
		return m.deletePatient(ctx)
	case "6":
		return errExit
	default:
		m.println(msgInvalidChoice)
		return nil
	}
}

func (m *Menu) printMenu() {
	m.println(menuHeader)
	for _, item := range menuItems {
		m.println(item)
	}
}

type lineResult struct {
	line string
	err  error
}

// ask prints prompt and returns the next trimmed input line. A final line
// without a newline is still returned; io.EOF is reported once nothing is left.
func (m *Menu) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)

	ch := make(chan lineResult, 1)
	go func() {
		line, err := m.reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil && (!errors.Is(r.err, io.EOF) || r.line == "") {
			return "", r.err
		}
		return strings.TrimSpace(r.line), nil
	}
}

// askUntil re-prompts until accept returns true.
func (m *Menu) askUntil(ctx context.Context, prompt, invalid string, accept func(string) bool) (string, error) {
	for {
		value, err := m.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if accept(value) {
			return value, nil
		}
		m.println(invalid)
	}
}

func (m *Menu) askPatientID(ctx context.Context, prompt string) (id.PatientID, error) {
	for {
		value, err := m.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		patientID, err := id.ParsePatientID(value)
		if err == nil {
			return patientID, nil
		}
		m.println(msgInvalidID)
	}
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format+"\n", args...)
}
