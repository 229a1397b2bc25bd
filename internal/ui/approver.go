// Package ui holds console prompts used outside the full-screen shell.
package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vvka-141/vshell/pkg/vshell"
)

// ForcedApprover implements vshell.Approver for --force. It prints a
// warning, counts down and approves.
type ForcedApprover struct {
	output    io.Writer
	countdown time.Duration
	sleepFn   func(time.Duration)
}

// NewForcedApprover creates a ForcedApprover writing to stderr. A zero
// countdown approves immediately.
func NewForcedApprover(countdown time.Duration) vshell.Approver {
	return &ForcedApprover{output: os.Stderr, countdown: countdown, sleepFn: time.Sleep}
}

// RequestApproval warns about the namespace being deleted and approves once
// the countdown ends.
func (a *ForcedApprover) RequestApproval(ctx context.Context, namespace string) (bool, error) {
	fmt.Fprintf(a.output, "WARNING: deleting the saved session %q (tree, transcript and history)\n", namespace)

	for i := int(a.countdown.Seconds()); i > 0; i-- {
		select {
		case <-ctx.Done():
			fmt.Fprintln(a.output)
			return false, ctx.Err()
		default:
			fmt.Fprintf(a.output, "\rDeleting in: %d seconds... (Press Ctrl+C to cancel)", i)
			a.sleepFn(time.Second)
		}
	}
	if err := ctx.Err(); err != nil {
		return false, err
	}

	fmt.Fprintf(a.output, "\rProceeding with reset...                                  \n")
	return true, nil
}

var _ vshell.Approver = (*ForcedApprover)(nil)

// InteractiveApprover implements vshell.Approver by asking the user to
// type the namespace name.
type InteractiveApprover struct {
	input  io.Reader
	output io.Writer
}

// NewInteractiveApprover creates an InteractiveApprover over the given streams.
func NewInteractiveApprover(input io.Reader, output io.Writer) vshell.Approver {
	return &InteractiveApprover{input: input, output: output}
}

// RequestApproval approves only when the typed line matches namespace.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, namespace string) (bool, error) {
	fmt.Fprintf(a.output, "\nWARNING: You are about to delete the saved session %q\n", namespace)
	fmt.Fprintln(a.output, "This will permanently delete the virtual filesystem, transcript and history!")
	fmt.Fprintf(a.output, "\nTo confirm, type the session name '%s' and press Enter: ", namespace)

	// Buffered so the reader never blocks on send. On cancellation it stays
	// in ReadString until input arrives or the process exits.
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		input, err := bufio.NewReader(a.input).ReadString('\n')
		if err != nil && input == "" {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		if input == namespace {
			fmt.Fprintln(a.output, "Confirmed. Proceeding with reset...")
			return true, nil
		}
		fmt.Fprintf(a.output, "Input '%s' does not match session name '%s'. Operation cancelled.\n", input, namespace)
		return false, nil
	}
}

var _ vshell.Approver = (*InteractiveApprover)(nil)
