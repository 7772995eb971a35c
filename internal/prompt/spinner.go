/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"fmt"
	"io"
	"sync"
	"time"

	"charm.land/lipgloss/v2"
)

// Progress is a releasable progress-reporting resource. Stop must be safe to
// call from any exit path and must release the resource exactly once.
type Progress interface {
	Start(message string)
	Update(message string)
	Stop()
}

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

// Spinner implements Progress as an animated terminal spinner
type Spinner struct {
	w io.Writer

	mu      sync.Mutex
	message string

	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewSpinner creates a spinner writing to w. It renders nothing until Start.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		w:    w,
		done: make(chan struct{}),
	}
}

var _ Progress = (*Spinner)(nil)

// Start begins the animation with an initial message
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
}

// Update replaces the message shown next to the spinner
func (s *Spinner) Update(message string) {
	s.mu.Lock()
	s.message = message
	s.mu.Unlock()
}

// Stop halts the animation and clears the line. Safe to call more than once;
// only the first call releases the resource.
func (s *Spinner) Stop() {
	s.once.Do(func() {
		close(s.done)
		s.wg.Wait()
		fmt.Fprintf(s.w, "\r\033[K")
	})
}

func (s *Spinner) run() {
	defer s.wg.Done()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			message := s.message
			s.mu.Unlock()

			fmt.Fprintf(s.w, "\r\033[K%s %s", spinnerStyle.Render(spinnerFrames[frame]), message)
			frame = (frame + 1) % len(spinnerFrames)
		}
	}
}
