/*
Copyright © 2025 Clapctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package aws

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clapdb/clapctl/internal/prompt"
	"github.com/clapdb/clapctl/internal/provider"
)

// defaultPollInterval is the delay between status checks while watching
const defaultPollInterval = 500 * time.Millisecond

// completedStatuses is the set of terminal success statuses
var completedStatuses = map[StackStatus]struct{}{
	StackStatusCreateComplete:         {},
	StackStatusUpdateComplete:         {},
	StackStatusDeleteComplete:         {},
	StackStatusUpdateRollbackComplete: {},
}

// failedStatuses is the set of terminal failure statuses.
//
// UPDATE_ROLLBACK_COMPLETE appears in both sets. Classify checks the
// completion set first, so it resolves as success: the stack is back in a
// usable state even though the update itself was rolled back. Keep that
// evaluation order.
var failedStatuses = map[StackStatus]struct{}{
	StackStatusCreateFailed:           {},
	StackStatusUpdateFailed:           {},
	StackStatusDeleteFailed:           {},
	StackStatusRollbackFailed:         {},
	StackStatusUpdateRollbackFailed:   {},
	StackStatusRollbackComplete:       {},
	StackStatusUpdateRollbackComplete: {},
}

// Outcome is the watcher's classification of a status snapshot
type Outcome int

const (
	OutcomeInProgress Outcome = iota
	OutcomeCompleted
	OutcomeFailed
)

// Classify reduces a stack status to an outcome. Completion is checked
// before failure, and any unrecognised status (including the in-progress
// vocabulary) is treated as non-terminal rather than an error.
func Classify(status StackStatus) Outcome {
	if _, ok := completedStatuses[status]; ok {
		return OutcomeCompleted
	}
	if _, ok := failedStatuses[status]; ok {
		return OutcomeFailed
	}
	return OutcomeInProgress
}

// StackReader is the status surface the watcher polls
type StackReader interface {
	GetStatus(ctx context.Context, name string) (provider.StackInfo, error)
	GetResourceStatuses(ctx context.Context, name string) (map[string]string, error)
}

var _ StackReader = (*StackOperations)(nil)

// Watcher polls stack status snapshots and reduces them to a terminal
// deploy/update/delete outcome. The loop is single-threaded and cooperative;
// it suspends for the poll interval between checks.
type Watcher struct {
	reader   StackReader
	progress prompt.Progress
	interval time.Duration
}

// NewWatcher creates a watcher over the given stack reader, reporting
// progress through the given resource
func NewWatcher(reader StackReader, progress prompt.Progress) *Watcher {
	return &Watcher{
		reader:   reader,
		progress: progress,
		interval: defaultPollInterval,
	}
}

// Watch blocks until the stack reaches a terminal state for the given
// action.
//
// A status-query error during a delete watch means the stack has vanished
// mid-poll and counts as success; for any other action it propagates. The
// progress resource is released exactly once on every exit path.
//
// An interrupt cancels the poll loop only: the remote operation continues
// unsupervised and no compensating action is taken. Concurrent invocations
// against the same stack name are not serialised here; callers must do that
// externally.
func (w *Watcher) Watch(ctx context.Context, name string, action provider.Action) error {
	w.progress.Start(fmt.Sprintf("%s %s", action, name))
	defer w.progress.Stop()

	for {
		info, err := w.reader.GetStatus(ctx, name)
		if err != nil {
			if action == provider.ActionDelete {
				// Stack disappeared while we were polling its deletion.
				return nil
			}
			return err
		}

		switch Classify(StackStatus(info.Status)) {
		case OutcomeCompleted:
			return nil
		case OutcomeFailed:
			return &provider.DeploymentFailedError{Action: action, Status: info.Status}
		}

		if err := w.reportProgress(ctx, name, action, info.Status); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.interval):
		}
	}
}

// reportProgress surfaces the first resource that has just reached the
// action's per-resource completion status. During create and delete the
// resource listing may legitimately fail (resources not yet, or no longer,
// visible), so those errors are swallowed; during update the stack exists
// throughout and a failure propagates.
func (w *Watcher) reportProgress(ctx context.Context, name string, action provider.Action, status string) error {
	statuses, err := w.reader.GetResourceStatuses(ctx, name)
	if err != nil {
		if action == provider.ActionUpdate {
			return err
		}
		return nil
	}

	target := transitionedStatus(action)
	ids := make([]string, 0, len(statuses))
	for id := range statuses {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if statuses[id] == target {
			w.progress.Update(fmt.Sprintf("%s %s: %s %s", action, name, id, target))
			return nil
		}
	}

	w.progress.Update(fmt.Sprintf("%s %s: %s", action, name, status))
	return nil
}

// transitionedStatus is the per-resource status that signals fresh progress
// for an action
func transitionedStatus(action provider.Action) string {
	switch action {
	case provider.ActionUpdate:
		return string(StackStatusUpdateComplete)
	case provider.ActionDelete:
		return string(StackStatusDeleteComplete)
	default:
		return string(StackStatusCreateComplete)
	}
}
