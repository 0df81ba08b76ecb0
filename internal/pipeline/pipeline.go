// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipeline

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"code.hybscloud.com/strmpipe/internal/console"
	"code.hybscloud.com/strmpipe/internal/stage"
)

// Pipeline is an ordered chain of stages, constructed from a list of
// registered stage names and a shared queue size.
type Pipeline struct {
	stages                  []stage.StageModule
	logger                  *zerolog.Logger
	synthesizeSentinelOnEOF bool
}

// New loads, initializes, and wires one stage per name in names, in
// order. Any failure rolls back the stages already initialized, in
// reverse order, before returning.
func New(names []string, queueSize int, opts ...Option) (*Pipeline, error) {
	if len(names) == 0 {
		return nil, ErrNoStages
	}
	if queueSize < MinQueueSize || queueSize > MaxQueueSize {
		return nil, ErrQueueSizeOutOfRange
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	stages := make([]stage.StageModule, 0, len(names))
	rollback := func() {
		for i := len(stages) - 1; i >= 0; i-- {
			if err := stages[i].Fini(); err != nil {
				logger.Error().Err(err).Str("stage", stages[i].GetName()).Msg("rollback: stage teardown failed")
			}
		}
	}

	for i, name := range names {
		sm, err := stage.Load(name)
		if err != nil {
			rollback()
			return nil, fmt.Errorf("pipeline: loading stage %d (%q): %w", i, name, err)
		}
		// Optional capability beyond the six-method StageModule
		// contract: thread the host logger down if the loaded stage
		// supports it.
		if ls, ok := sm.(interface{ SetLogger(*zerolog.Logger) }); ok {
			ls.SetLogger(logger)
		}
		if err := sm.Init(queueSize); err != nil {
			rollback()
			return nil, fmt.Errorf("pipeline: initializing stage %d (%q): %w", i, name, err)
		}
		stages = append(stages, sm)
	}

	for i := 0; i < len(stages)-1; i++ {
		next := stages[i+1]
		stages[i].Attach(next.PlaceWork)
	}

	logger.Debug().Int("stages", len(stages)).Int("queue_size", queueSize).Msg("pipeline constructed")
	return &Pipeline{
		stages:                  stages,
		logger:                  logger,
		synthesizeSentinelOnEOF: o.synthesizeSentinelOnEOF,
	}, nil
}

// Run feeds lines from r into the pipeline until the sentinel is seen
// or r is exhausted, then tears the pipeline down. It returns an
// error only if feeding the first stage itself fails (a closed or
// destroyed inbox) or the completion line cannot be written; I/O
// errors while reading r are treated as end of input.
func (p *Pipeline) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, MaxLineLength), MaxLineLength)

	sawSentinel := false
	for scanner.Scan() {
		line := scanner.Text()
		if err := p.stages[0].PlaceWork(line); err != nil {
			return fmt.Errorf("pipeline: feeding first stage: %w", err)
		}
		if line == stage.Sentinel {
			sawSentinel = true
			break
		}
	}
	if err := scanner.Err(); err != nil {
		p.logger.Warn().Err(err).Msg("input read error, treating as end of input")
	}

	if !sawSentinel && p.synthesizeSentinelOnEOF {
		p.logger.Debug().Msg("end of input without sentinel, synthesizing one")
		if err := p.stages[0].PlaceWork(stage.Sentinel); err != nil {
			return fmt.Errorf("pipeline: synthesizing sentinel: %w", err)
		}
	}

	return p.shutdown()
}

// shutdown waits for every stage to observe the sentinel, in pipeline
// order, then releases every stage, in the same order, then prints
// the completion line.
func (p *Pipeline) shutdown() error {
	for _, s := range p.stages {
		if err := s.WaitFinished(); err != nil {
			p.logger.Error().Err(err).Str("stage", s.GetName()).Msg("wait finished failed")
		}
	}
	for _, s := range p.stages {
		if err := s.Fini(); err != nil {
			p.logger.Error().Err(err).Str("stage", s.GetName()).Msg("stage teardown failed")
		}
	}
	if err := console.WriteString("Pipeline shutdown complete\n"); err != nil {
		return fmt.Errorf("pipeline: writing completion line: %w", err)
	}
	return nil
}
