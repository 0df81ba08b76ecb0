// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command strmpipe runs a chain of string-processing stages over
// standard input.
//
// Usage:
//
//	strmpipe <queue_size> <stage1> [stage2 ...]
//
// queue_size is a positive integer in [1, 1000000], the capacity of
// every stage's inbox. Each stageN must name a registered transform
// (logger, uppercaser, rotator, flipper, expander, typewriter). Input
// is read line by line from standard input; the line <END> drains and
// shuts down the pipeline.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"code.hybscloud.com/strmpipe/internal/pipeline"
	_ "code.hybscloud.com/strmpipe/internal/transform"
)

const usage = "usage: strmpipe <queue_size> <stage1> [stage2 ...]"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	queueSize, stageNames, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, usage)
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	p, err := pipeline.New(stageNames, queueSize, pipeline.WithLogger(&logger))
	if err != nil {
		logger.Error().Err(err).Msg("failed to construct pipeline")
		return 1
	}

	if err := p.Run(os.Stdin); err != nil {
		logger.Error().Err(err).Msg("pipeline processing failed")
		return 1
	}
	return 0
}

func parseArgs(args []string) (queueSize int, stageNames []string, err error) {
	if len(args) < 2 {
		return 0, nil, fmt.Errorf("need a queue size and at least one stage, got %d argument(s)", len(args))
	}

	queueSize, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("queue_size %q is not an integer", args[0])
	}
	if queueSize < pipeline.MinQueueSize || queueSize > pipeline.MaxQueueSize {
		return 0, nil, fmt.Errorf("queue_size %d out of range [%d, %d]", queueSize, pipeline.MinQueueSize, pipeline.MaxQueueSize)
	}

	return queueSize, args[1:], nil
}
