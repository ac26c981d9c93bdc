/*
 * Copyright 2026 Opsfabric, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package workflow defines provisioning workflows as ordered step lists.
// A workflow is declarative glue: steps run sequentially and the first
// failure stops the run. Retry, compensation, and durable state belong to
// the orchestration framework invoking these workflows, not here.
package workflow

import (
	"context"
	"fmt"

	"github.com/opsfabric/nodeflow/pkg/logger"
)

// Target classifies what a workflow does to a subscription.
type Target string

const (
	TargetCreate   Target = "create"
	TargetValidate Target = "validate"
)

// State is the shared scratchpad steps read from and write to during a run.
type State map[string]any

// Step is one named unit of work in a workflow.
type Step struct {
	Name string
	Run  func(ctx context.Context, state State) error
}

// Workflow is an ordered list of steps with a target.
type Workflow struct {
	Name   string
	Target Target
	Steps  []Step

	logger logger.Logger
}

// New assembles a workflow.
func New(name string, target Target, log logger.Logger, steps ...Step) *Workflow {
	return &Workflow{
		Name:   name,
		Target: target,
		Steps:  steps,
		logger: log,
	}
}

// Run executes the steps in order against the given state, stopping at the
// first failure.
func (w *Workflow) Run(ctx context.Context, state State) error {
	for _, step := range w.Steps {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("workflow %q interrupted before step %q: %w", w.Name, step.Name, err)
		}

		w.logger.Debug().Str("workflow", w.Name).Str("step", step.Name).Msg("Running workflow step")

		if err := step.Run(ctx, state); err != nil {
			w.logger.Error().Err(err).Str("workflow", w.Name).Str("step", step.Name).Msg("Workflow step failed")

			return fmt.Errorf("step %q: %w", step.Name, err)
		}
	}

	return nil
}
