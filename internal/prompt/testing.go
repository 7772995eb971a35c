/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package prompt

import (
	"github.com/stretchr/testify/mock"
)

// MockPrompter implements Prompter for testing
type MockPrompter struct {
	mock.Mock
}

func (m *MockPrompter) Confirm(message string) (bool, error) {
	args := m.Called(message)
	return args.Bool(0), args.Error(1)
}

// RecordingProgress implements Progress for testing, counting lifecycle
// calls instead of rendering
type RecordingProgress struct {
	StartCalls  int
	UpdateCalls []string
	StopCalls   int
}

func (r *RecordingProgress) Start(message string) {
	r.StartCalls++
}

func (r *RecordingProgress) Update(message string) {
	r.UpdateCalls = append(r.UpdateCalls, message)
}

func (r *RecordingProgress) Stop() {
	r.StopCalls++
}
