package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

type Level uint8

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func init() {
	logrus.SetLevel(logrus.DebugLevel)
}

// EntryZ is an in-progress log entry built field by field with zero
// allocation when its module/level pair is disabled: in that case the Z
// functions return a nil *EntryZ and every method below is a nil-safe no-op.
type EntryZ struct {
	lvl   Level
	msg   string
	mod   Module
	zfbuf [12]ZField
	zfidx int
}

func NewEntryZ() *EntryZ {
	return &EntryZ{}
}

func (e *EntryZ) push(f ZField) *EntryZ {
	if e == nil {
		return nil
	}
	if e.zfidx < len(e.zfbuf) {
		e.zfbuf[e.zfidx] = f
		e.zfidx++
	}
	return e
}

func (e *EntryZ) String(key, val string) *EntryZ {
	return e.push(ZField{Type: FieldTypeString, Key: key, String: val})
}

func (e *EntryZ) Int(key string, val int) *EntryZ {
	return e.push(ZField{Type: FieldTypeInt, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Hex8(key string, val uint8) *EntryZ {
	return e.push(ZField{Type: FieldTypeHex8, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Hex16(key string, val uint16) *EntryZ {
	return e.push(ZField{Type: FieldTypeHex16, Key: key, Integer: uint64(val)})
}

func (e *EntryZ) Error(key string, err error) *EntryZ {
	return e.push(ZField{Type: FieldTypeError, Key: key, Error: err})
}

// End emits the entry.
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	fields := make(logrus.Fields, e.zfidx+1)
	fields["_mod"] = modNames[e.mod]
	for i := range e.zfbuf[:e.zfidx] {
		fields[e.zfbuf[i].Key] = e.zfbuf[i].Value()
	}

	entry := logrus.StandardLogger().WithFields(fields)
	switch e.lvl {
	case PanicLevel:
		entry.Panic(e.msg)
	case FatalLevel:
		entry.Fatal(e.msg)
	case ErrorLevel:
		entry.Error(e.msg)
	case WarnLevel:
		entry.Warn(e.msg)
	case InfoLevel:
		entry.Info(e.msg)
	default:
		entry.Debug(e.msg)
	}
}

func (mod Module) emitf(lvl Level, format string, args ...any) {
	if !mod.Enabled(lvl) {
		return
	}
	entry := logrus.StandardLogger().WithField("_mod", modNames[mod])
	switch lvl {
	case PanicLevel:
		entry.Panicf(format, args...)
	case FatalLevel:
		entry.Fatalf(format, args...)
	case ErrorLevel:
		entry.Errorf(format, args...)
	case WarnLevel:
		entry.Warnf(format, args...)
	case InfoLevel:
		entry.Infof(format, args...)
	default:
		entry.Debugf(format, args...)
	}
}
