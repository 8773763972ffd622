package sink

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/logvisor/core"
)

// ZapSink is an adapter that forwards reports into a zap.Logger,
// allowing applications that already run a zap pipeline to receive
// dispatch output without a second console or file destination. The
// header fields travel as zap fields; the rendered message is passed
// through untouched. zap.Logger serializes its own writes, so no inner
// mutex is needed here.
type ZapSink struct {
	z *zap.Logger
}

// NewZapSink wraps the given zap.Logger. Fatal reports are forwarded at
// zap's Error level: process termination stays the dispatch core's job
// and must not be stolen by zap's own Fatal handling.
func NewZapSink(z *zap.Logger) *ZapSink {
	return &ZapSink{z: z}
}

// Kind implements Sink.
func (s *ZapSink) Kind() string {
	return KindZap
}

// Deliver implements Sink.
func (s *ZapSink) Deliver(r *core.Report) error {
	fields := make([]zapcore.Field, 0, 5)
	fields = append(fields,
		zap.String("module", r.Module),
		zap.Duration("uptime", r.Uptime),
	)
	if r.Frame != 0 {
		fields = append(fields, zap.Uint64("frame", r.Frame))
	}
	if src := r.SourceInfo(); src != "" {
		fields = append(fields, zap.String("source", src))
	}
	if r.Thread != "" {
		fields = append(fields, zap.String("thread", r.Thread))
	}
	s.z.Log(zapLevel(r.Level), string(r.Msg), fields...)
	return nil
}

func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.Info:
		return zapcore.InfoLevel
	case core.Warning:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
