// SPDX-License-Identifier: EPL-2.0

package experiment

import (
	"log/slog"

	"github.com/ik5/sosfeat/endian"
)

type options struct {
	concurrency int
	frameRate   int
	matchMode   endian.Mode
	queryMode   endian.Mode
	logger      *slog.Logger
}

func defaultOptions() options {
	return options{
		concurrency: 1,
		frameRate:   DefaultFrameRate,
		matchMode:   endian.Native,
		queryMode:   endian.Native,
		logger:      slog.New(slog.DiscardHandler),
	}
}

// Option configures LoadBatch and Load.
type Option func(*options)

// WithConcurrency sets how many experiments are read at once.
// Values below 1 mean 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = max(n, 1)
	}
}

// WithFrameRate sets the frames per second used to convert the time
// fields. The default is DefaultFrameRate.
func WithFrameRate(rate int) Option {
	return func(o *options) {
		o.frameRate = rate
	}
}

// WithModes sets the byte order of the match and query files. Both default
// to endian.Native, the only provenance the experiment workflow produces.
func WithModes(match, query endian.Mode) Option {
	return func(o *options) {
		o.matchMode = match
		o.queryMode = query
	}
}

// WithLogger sets the logger. If nil is passed, logging stays disabled.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		o.logger = l
	}
}
