// Package runtime is the bridge between host code and the embedded Python
// interpreter that hosts the wrapped library. It owns the process-wide
// interpreter singleton, resolves the library module the proxies construct
// their objects from, and performs value marshaling in both directions.
//
// The bridge is deliberately generic: it knows nothing about callbacks,
// layers, or models. A proxy hands it a class name and a parameter bag; the
// bridge turns the bag into keyword arguments, invokes the constructor inside
// the interpreter, and returns an opaque handle to the resulting object.
// Everything observable about the created object is defined by the wrapped
// library, not by this package.
//
// All entry points serialize on one mutex. The interpreter is a single
// shared resource; concurrent goroutine use queues rather than corrupts.
// The guard is reentrant for the goroutine driving the interpreter, so host
// hooks invoked mid-call may use bridge APIs freely.
package runtime

import (
	goruntime "runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-python/gpython/py"

	// Register the interpreter's standard library modules.
	_ "github.com/go-python/gpython/stdlib"

	gkerrors "github.com/gokeras/gokeras/pkg/errors"
	"github.com/gokeras/gokeras/pkg/log"
	"github.com/gokeras/gokeras/pkg/params"
)

const defaultLibrary = "keras"

var (
	mu      sync.Mutex
	ownerID atomic.Int64
	once    sync.Once

	ctx     py.Context
	modules map[string]*py.Module
	library = defaultLibrary

	logger log.Logger
)

// lock acquires the bridge mutex and returns the matching release func.
// The guard is reentrant per goroutine: when the interpreter invokes a host
// hook mid-call and that hook calls back into the bridge, the nested entry
// must not block on the mutex its own goroutine already holds.
func lock() func() {
	id := goid()
	if ownerID.Load() == id {
		return func() {}
	}
	mu.Lock()
	ownerID.Store(id)
	return func() {
		ownerID.Store(0)
		mu.Unlock()
	}
}

// goid returns the calling goroutine's id, parsed from the stack header.
func goid() int64 {
	var buf [64]byte
	n := goruntime.Stack(buf[:], false)
	s := strings.TrimPrefix(string(buf[:n]), "goroutine ")
	if i := strings.IndexByte(s, ' '); i > 0 {
		if id, err := strconv.ParseInt(s[:i], 10, 64); err == nil {
			return id
		}
	}
	return -1
}

// interp returns the interpreter singleton, bootstrapping it on first use.
// Callers must hold the bridge lock.
func interp() py.Context {
	once.Do(func() {
		ctx = py.NewContext(py.DefaultContextOpts())
		modules = make(map[string]*py.Module)
		logger = log.GetLoggerWithName("bridge")
	})
	return ctx
}

// SetLibrary changes the interpreter module name the proxies resolve their
// classes from. The default is "keras". Tests point this at a recording stub
// registered with LoadLibrarySrc.
func SetLibrary(name string) {
	defer lock()()
	library = name
}

// LibraryName returns the interpreter module name currently in use.
func LibraryName() string {
	defer lock()()
	return library
}

// LoadLibrarySrc executes Python source inside the interpreter and registers
// the resulting module under name, making it resolvable with SetLibrary.
// The source is compiled as a module body, so it may contain any number of
// top-level statements.
func LoadLibrarySrc(name, src string) error {
	defer lock()()
	c := interp()
	code, err := py.Compile(src+"\n", name, py.ExecMode, 0, true)
	if err != nil {
		return gkerrors.NewPythonError("LoadLibrarySrc", err)
	}
	module, err := py.RunCode(c, code, name, nil)
	if err != nil {
		return gkerrors.NewPythonError("LoadLibrarySrc", err)
	}
	modules[name] = module
	return nil
}

// LoadLibraryFile executes a Python file inside the interpreter and registers
// the resulting module under name.
func LoadLibraryFile(name, path string) error {
	defer lock()()
	c := interp()
	module, err := py.RunFile(c, path, py.CompileOpts{}, nil)
	if err != nil {
		return gkerrors.NewPythonError("LoadLibraryFile", err)
	}
	modules[name] = module
	return nil
}

// libraryModule resolves the configured library module, importing it into
// the interpreter on first use if it was not registered explicitly.
// Callers must hold the bridge lock.
func libraryModule() (*py.Module, error) {
	c := interp()
	if m, ok := modules[library]; ok {
		return m, nil
	}
	holder, err := py.RunSrc(c, "import "+library, "<gokeras>", nil)
	if err != nil {
		return nil, gkerrors.NewPythonError("import "+library, err)
	}
	obj, ok := holder.Globals[library]
	if !ok {
		return nil, gkerrors.Newf("gokeras: module %q did not import", library)
	}
	m, ok := obj.(*py.Module)
	if !ok {
		return nil, gkerrors.NewConversionError("import", library, "py.Module", "imported name is not a module")
	}
	modules[library] = m
	return m, nil
}

// New constructs an instance of the named library class, forwarding bag as
// keyword arguments. All argument validation happens inside the library; any
// exception it raises is returned as a *errors.PythonError.
func New(class string, bag *params.Bag) (*Object, error) {
	defer lock()()
	interp()

	start := time.Now()
	module, err := libraryModule()
	if err != nil {
		return nil, err
	}
	ctor, ok := module.Globals[class]
	if !ok {
		ctorAttr, attrErr := py.GetAttrString(module, class)
		if attrErr != nil {
			return nil, gkerrors.NewPythonError(class, attrErr)
		}
		ctor = ctorAttr
	}
	kwargs, err := bagToKwargs(class, bag)
	if err != nil {
		return nil, err
	}
	obj, err := py.Call(ctor, nil, kwargs)
	if err != nil {
		return nil, gkerrors.NewPythonError(class, err)
	}

	logger.Debug("constructed interpreter object",
		log.OperationKey, "new",
		log.ClassKey, class,
		log.LibraryKey, library,
		log.BagSizeKey, bagLen(bag),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return &Object{obj: obj, class: class}, nil
}

func bagLen(bag *params.Bag) int {
	if bag == nil {
		return 0
	}
	return bag.Len()
}
