package log

import (
	"fmt"
	"path/filepath"
	"time"

	js "github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/eventloop"
	"github.com/rediwo/redi/modules"

	"github.com/rediwo/redi-log/logger"
)

// ModuleName is the path scripts pass to require()
const ModuleName = "redi/log"

// LogModule exposes a logging core to JavaScript
type LogModule struct {
	core *logger.Core
	loop *eventloop.EventLoop
}

// Auto-register on import
func init() {
	modules.RegisterModule(ModuleName, initLogModule)
}

func initLogModule(config modules.ModuleConfig) error {
	if config.EventLoop == nil || config.VM == nil {
		return fmt.Errorf("EventLoop and VM are required for log module")
	}

	config.Registry.RegisterNativeModule(ModuleName, func(vm *js.Runtime, module *js.Object) {
		// Resolved at require time so hosts can install their core first
		m := NewLogModule(logger.Default(), config.EventLoop)
		module.Set("exports", m.Exports(vm))
	})

	return nil
}

// NewLogModule binds a core. loop may be nil, in which case exportFileAsync
// is not available.
func NewLogModule(core *logger.Core, loop *eventloop.EventLoop) *LogModule {
	return &LogModule{core: core, loop: loop}
}

// Exports builds the module object:
//
//	log.console.info("loaded %d items", n)
//	log.file.warning("slow query")
//	log.console.log(log.levels.ERROR, "code %d", code)
//	log.release.file.error("only in release builds")
//	log.setFileLevel("WARNING")
//	log.exportFile("session.txt")
func (m *LogModule) Exports(vm *js.Runtime) *js.Object {
	exports := vm.NewObject()
	exports.Set("console", m.sinkObject(vm, logger.SinkConsole, true))
	exports.Set("file", m.sinkObject(vm, logger.SinkFile, true))

	for _, mode := range []logger.Mode{logger.ModeDebug, logger.ModeRelease, logger.ModeDist} {
		scoped := vm.NewObject()
		live := mode == m.core.Mode()
		scoped.Set("console", m.sinkObject(vm, logger.SinkConsole, live))
		scoped.Set("file", m.sinkObject(vm, logger.SinkFile, live))
		exports.Set(mode.String(), scoped)
	}

	levels := vm.NewObject()
	for _, sev := range logger.Severities() {
		levels.Set(sev.String(), int(sev))
	}
	exports.Set("levels", levels)
	exports.Set("mode", m.core.Mode().String())

	exports.Set("setConsoleLevel", m.setLevelFunc(vm, logger.SinkConsole))
	exports.Set("setFileLevel", m.setLevelFunc(vm, logger.SinkFile))
	exports.Set("consoleLevel", func(call js.FunctionCall) js.Value {
		return vm.ToValue(m.core.ConsoleLevel().String())
	})
	exports.Set("fileLevel", func(call js.FunctionCall) js.Value {
		return vm.ToValue(m.core.FileLevel().String())
	})
	exports.Set("exportFile", m.exportFunc(vm))
	if m.loop != nil {
		exports.Set("exportFileAsync", m.exportAsyncFunc(vm))
	}

	return exports
}

// sinkObject creates the trace/info/warning/error/fatal/log/nextLine methods
// for one sink. When live is false every method is a no-op.
func (m *LogModule) sinkObject(vm *js.Runtime, sink logger.Sink, live bool) *js.Object {
	obj := vm.NewObject()
	for _, sev := range logger.Severities() {
		obj.Set(methodName(sev), m.logFunc(vm, sink, sev, live))
	}
	obj.Set("log", m.logAtFunc(vm, sink, live))
	obj.Set("nextLine", func(call js.FunctionCall) js.Value {
		if live {
			m.core.NextLine(sink)
		}
		return js.Undefined()
	})
	return obj
}

func (m *LogModule) logFunc(vm *js.Runtime, sink logger.Sink, sev logger.Severity, live bool) func(call js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError(fmt.Sprintf("%s() requires a format string", methodName(sev))))
		}
		if live {
			m.emit(vm, sink, sev, call.Arguments)
		}
		return js.Undefined()
	}
}

// logAtFunc implements log(level, format, ...args) where level is a severity
// name or a value from log.levels
func (m *LogModule) logAtFunc(vm *js.Runtime, sink logger.Sink, live bool) func(call js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if len(call.Arguments) < 2 {
			panic(vm.NewTypeError("log() requires a severity and a format string"))
		}
		sev, err := toSeverity(call.Arguments[0])
		if err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		if live {
			m.emit(vm, sink, sev, call.Arguments[1:])
		}
		return js.Undefined()
	}
}

// emit formats args[0] with the rest of args, unless sink rejects sev
func (m *LogModule) emit(vm *js.Runtime, sink logger.Sink, sev logger.Severity, args []js.Value) {
	if !m.core.Enabled(sink, sev) {
		return
	}

	format := args[0].String()
	values := make([]any, 0, len(args)-1)
	for _, arg := range args[1:] {
		values = append(values, arg.Export())
	}

	file, line := scriptLocation(vm)
	m.core.Log(sink, sev, file, line, format, values...)
}

func (m *LogModule) setLevelFunc(vm *js.Runtime, sink logger.Sink) func(call js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("a severity name or value is required"))
		}
		sev, err := toSeverity(call.Arguments[0])
		if err != nil {
			panic(vm.NewTypeError(err.Error()))
		}
		switch sink {
		case logger.SinkConsole:
			m.core.SetConsoleLevel(sev)
		case logger.SinkFile:
			m.core.SetFileLevel(sev)
		}
		return js.Undefined()
	}
}

func (m *LogModule) exportFunc(vm *js.Runtime) func(call js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("exportFile requires a path"))
		}
		if err := m.core.ExportFile(call.Arguments[0].String()); err != nil {
			panic(m.createError(vm, err))
		}
		return js.Undefined()
	}
}

// exportAsyncFunc runs the export off the loop and settles a promise
func (m *LogModule) exportAsyncFunc(vm *js.Runtime) func(call js.FunctionCall) js.Value {
	return func(call js.FunctionCall) js.Value {
		if len(call.Arguments) == 0 {
			panic(vm.NewTypeError("exportFileAsync requires a path"))
		}
		path := call.Arguments[0].String()

		promise, resolve, reject := vm.NewPromise()
		// keeps the loop running until the export settles
		pending := m.loop.SetInterval(func(*js.Runtime) {}, time.Hour)

		go func() {
			err := m.core.ExportFile(path)

			m.loop.RunOnLoop(func(vm *js.Runtime) {
				m.loop.ClearInterval(pending)
				if err != nil {
					reject(m.createError(vm, err))
				} else {
					resolve(js.Undefined())
				}
			})
		}()

		return vm.ToValue(promise)
	}
}

// createError converts an export failure into a JS error carrying a code
func (m *LogModule) createError(vm *js.Runtime, err error) *js.Object {
	errObj := vm.NewGoError(err)
	switch {
	case logger.IsInvalidPath(err):
		errObj.Set("code", "INVALID_PATH")
	case logger.IsWriteError(err):
		errObj.Set("code", "WRITE_ERROR")
	}
	return errObj
}

// scriptLocation finds the innermost script frame of the current call
func scriptLocation(vm *js.Runtime) (string, int) {
	for _, frame := range vm.CaptureCallStack(0, nil) {
		pos := frame.Position()
		if pos.Line <= 0 {
			continue
		}
		name := pos.Filename
		if name == "" {
			name = frame.SrcName()
		}
		return filepath.Base(name), pos.Line
	}
	return "<script>", 0
}

func toSeverity(v js.Value) (logger.Severity, error) {
	switch exported := v.Export().(type) {
	case int64:
		sev := logger.Severity(exported)
		if !sev.Valid() {
			return logger.Trace, fmt.Errorf("unknown severity %d", exported)
		}
		return sev, nil
	case float64:
		sev := logger.Severity(int(exported))
		if float64(sev) != exported || !sev.Valid() {
			return logger.Trace, fmt.Errorf("unknown severity %v", exported)
		}
		return sev, nil
	default:
		return logger.ParseSeverity(v.String())
	}
}

func methodName(sev logger.Severity) string {
	switch sev {
	case logger.Trace:
		return "trace"
	case logger.Info:
		return "info"
	case logger.Warning:
		return "warning"
	case logger.Error:
		return "error"
	default:
		return "fatal"
	}
}
