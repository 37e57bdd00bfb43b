// internal/logging/sampling.go
package logging

import (
	"go.uber.org/zap/zapcore"
)

// newSampledCore wraps core with per-level sampling. Each level listed in
// cfg.Levels gets its own sampler; unlisted levels and Error and above
// always pass through.
func newSampledCore(core zapcore.Core, cfg SamplingConfig) zapcore.Core {
	if !cfg.Enabled {
		return core
	}

	cores := make([]zapcore.Core, 0, len(cfg.Levels)+1)
	passthrough := make(map[zapcore.Level]bool)

	for lvl := TraceLevel; lvl <= zapcore.FatalLevel; lvl++ {
		rate, ok := cfg.Levels[lvl]
		if !ok || lvl >= zapcore.ErrorLevel {
			passthrough[lvl] = true
			continue
		}
		cores = append(cores, zapcore.NewSamplerWithOptions(
			onlyLevels(core, map[zapcore.Level]bool{lvl: true}),
			cfg.Tick.Duration(),
			rate.Initial,
			rate.Thereafter,
		))
	}
	cores = append(cores, onlyLevels(core, passthrough))

	return zapcore.NewTee(cores...)
}

func onlyLevels(core zapcore.Core, levels map[zapcore.Level]bool) zapcore.Core {
	return &levelSetCore{Core: core, levels: levels}
}

// levelSetCore forwards only entries whose level is in levels.
type levelSetCore struct {
	zapcore.Core
	levels map[zapcore.Level]bool
}

func (c *levelSetCore) Enabled(lvl zapcore.Level) bool {
	return c.levels[lvl] && c.Core.Enabled(lvl)
}

func (c *levelSetCore) Check(e zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(e.Level) {
		return ce
	}
	return c.Core.Check(e, ce)
}

// With creates a child core that preserves level filtering.
func (c *levelSetCore) With(fields []zapcore.Field) zapcore.Core {
	return &levelSetCore{
		Core:   c.Core.With(fields),
		levels: c.levels,
	}
}
