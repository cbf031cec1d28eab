package log

type ModuleMask uint64
type Module uint

const (
	ModuleMaskAll ModuleMask = 0xFFFFFFFFFFFFFFFF
)

// Predefine a few "common" module constants. The idea is to have a few
// "standard" modules that can be used for easy logging, but it's always
// possible to define additional modules through NewModule().
const (
	ModSim Module = iota + 1
	ModVid
	ModSync
	ModMode
	ModWave
	ModSaver
	ModGame
	ModCtrl

	endStandardMods
)

var modCount = endStandardMods

var modDebugMask ModuleMask = 0

var logDisabled = false

// Disable turns off all log output, warnings and errors included.
func Disable() {
	logDisabled = true
	modDebugMask = 0
}

var modNames = []string{
	"<error>", "sim", "vid", "sync", "mode", "wave", "saver", "game", "ctrl",
}

func NewModule(name string) Module {
	mod := modCount
	modCount++
	modNames = append(modNames, name)
	return mod
}

func ModuleByName(name string) (Module, bool) {
	for idx, s := range modNames {
		if s == name {
			return Module(idx), true
		}
	}
	return Module(0xFFFFFFFF), false
}

func ModuleNames() []string {
	return modNames[1:]
}

func EnableDebugModules(mask ModuleMask) {
	modDebugMask |= mask
}

func DisableDebugModules(mask ModuleMask) {
	modDebugMask &^= mask
}

func (mod Module) Mask() ModuleMask {
	return 1 << ModuleMask(mod)
}

func (mod Module) Enabled(level Level) bool {
	if logDisabled {
		return false
	}
	return level <= WarnLevel || modDebugMask&mod.Mask() != 0
}

// printf-like family

func (mod Module) Debugf(format string, args ...any) {
	mod.emitf(DebugLevel, format, args...)
}

func (mod Module) Infof(format string, args ...any) {
	mod.emitf(InfoLevel, format, args...)
}

func (mod Module) Warnf(format string, args ...any) {
	mod.emitf(WarnLevel, format, args...)
}

func (mod Module) Errorf(format string, args ...any) {
	mod.emitf(ErrorLevel, format, args...)
}

func (mod Module) Fatalf(format string, args ...any) {
	mod.emitf(FatalLevel, format, args...)
}

// Z-style fast functions

func (mod Module) logz(lvl Level, msg string) *EntryZ {
	if mod.Enabled(lvl) {
		e := NewEntryZ()
		e.lvl = lvl
		e.msg = msg
		e.mod = mod
		return e
	}
	return nil
}

func (mod Module) DebugZ(msg string) *EntryZ { return mod.logz(DebugLevel, msg) }
func (mod Module) InfoZ(msg string) *EntryZ  { return mod.logz(InfoLevel, msg) }
func (mod Module) WarnZ(msg string) *EntryZ  { return mod.logz(WarnLevel, msg) }
func (mod Module) ErrorZ(msg string) *EntryZ { return mod.logz(ErrorLevel, msg) }
func (mod Module) FatalZ(msg string) *EntryZ { return mod.logz(FatalLevel, msg) }
func (mod Module) PanicZ(msg string) *EntryZ { return mod.logz(PanicLevel, msg) }
