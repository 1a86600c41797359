// Package redact hides a secret in text and in log output.
package redact

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Mask replaces the secret wherever it appears.
const Mask = "***"

// String replaces every occurrence of secret in text with Mask.
func String(text, secret string) string {
	if secret == "" {
		return text
	}

	return strings.ReplaceAll(text, secret, Mask)
}

// Logger returns logger with every message and string-like field scrubbed of
// secret. An empty secret leaves logger unchanged.
func Logger(logger *zap.Logger, secret string) *zap.Logger {
	if secret == "" {
		return logger
	}

	return logger.WithOptions(zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return NewCore(c, secret)
	}))
}

type core struct {
	zapcore.Core

	secret string
}

// NewCore wraps c so that entries reaching it never contain secret.
func NewCore(c zapcore.Core, secret string) zapcore.Core {
	if secret == "" {
		return c
	}

	return &core{Core: c, secret: secret}
}

func (c *core) With(fields []zapcore.Field) zapcore.Core {
	return &core{Core: c.Core.With(c.scrub(fields)), secret: c.secret}
}

func (c *core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}

	return ce
}

func (c *core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	ent.Message = String(ent.Message, c.secret)
	ent.Stack = String(ent.Stack, c.secret)

	return c.Core.Write(ent, c.scrub(fields))
}

func (c *core) scrub(fields []zapcore.Field) []zapcore.Field {
	out := make([]zapcore.Field, len(fields))
	for i, f := range fields {
		out[i] = c.field(f)
	}

	return out
}

func (c *core) field(f zapcore.Field) zapcore.Field {
	switch f.Type {
	case zapcore.StringType:
		f.String = String(f.String, c.secret)
		return f
	case zapcore.ByteStringType, zapcore.BinaryType:
		if b, ok := f.Interface.([]byte); ok {
			return zap.String(f.Key, String(string(b), c.secret))
		}
		return f
	case zapcore.ErrorType:
		if err, ok := f.Interface.(error); ok && err != nil {
			return zap.String(f.Key, String(err.Error(), c.secret))
		}
		return f
	case zapcore.StringerType:
		if s, ok := f.Interface.(fmt.Stringer); ok && s != nil {
			return zap.String(f.Key, String(s.String(), c.secret))
		}
		return f
	case zapcore.ArrayMarshalerType, zapcore.ObjectMarshalerType, zapcore.ReflectType:
		return c.composite(f)
	default:
		return f
	}
}

// composite flattens a structured field to text only when it carries the
// secret.
func (c *core) composite(f zapcore.Field) zapcore.Field {
	enc := zapcore.NewMapObjectEncoder()
	f.AddTo(enc)

	text := fmt.Sprintf("%v", enc.Fields[f.Key])
	if !strings.Contains(text, c.secret) {
		return f
	}

	return zap.String(f.Key, String(text, c.secret))
}
