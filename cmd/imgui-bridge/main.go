package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"github.com/tetratelabs/wazero/sys"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/imgui-bridge/binding"
	"github.com/wippyai/imgui-bridge/value"
	"github.com/wippyai/imgui-bridge/wasmhost"
)

type options struct {
	config     string
	calls      string
	consts     string
	wasm       string
	entry      string
	frames     int
	list       bool
	listConsts bool
	framed     bool
}

func main() {
	var (
		configFile  = flag.String("config", "", "YAML file with context settings and style overrides")
		calls       = flag.String("call", "", "Call expressions to evaluate, separated by ';'")
		consts      = flag.String("consts", "", "List enum constants starting with the prefix and exit")
		wasmFile    = flag.String("wasm", "", "Guest wasm module importing the imgui namespace")
		entry       = flag.String("entry", "frame", "Guest export to call once per frame")
		frames      = flag.Int("frames", 1, "Number of frames to run the guest for")
		list        = flag.Bool("list", false, "List callable functions and wrapper types and exit")
		framed      = flag.Bool("frame", false, "Run each -call statement in its own frame and window")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	opts := options{
		config: *configFile,
		calls:  *calls,
		consts: *consts,
		wasm:   *wasmFile,
		entry:  *entry,
		frames: *frames,
		list:   *list,
		framed: *framed,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "consts" {
			opts.listConsts = true
		}
	})

	if !*interactive && !opts.list && !opts.listConsts && opts.calls == "" && opts.wasm == "" {
		fmt.Fprintln(os.Stderr, "Usage: imgui-bridge -list | -consts <prefix>")
		fmt.Fprintln(os.Stderr, "       imgui-bridge -call \"NewFrame(); Begin('w'); Button('OK', vec2(100, 20)); End(); Render()\"")
		fmt.Fprintln(os.Stderr, "       imgui-bridge -wasm <guest.wasm> [-entry frame] [-frames n]")
		fmt.Fprintln(os.Stderr, "       imgui-bridge -i  (interactive mode)")
		os.Exit(1)
	}

	log := zap.NewNop()
	if *verbose {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = log.Sync() }()
	}
	binding.SetLogger(log)
	wasmhost.SetLogger(log)

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(opts.config, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(opts, log, os.Stdout, termWidth(os.Stdout)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options, log *zap.Logger, w io.Writer, width int) error {
	cfg, err := loadConfig(opts.config)
	if err != nil {
		return err
	}
	m, err := newSession(cfg, log)
	if err != nil {
		return err
	}
	defer m.Context().Destroy()

	if opts.list {
		printFunctions(w, m)
		return nil
	}
	if opts.listConsts {
		printConstants(w, m, opts.consts)
		return nil
	}

	if opts.calls != "" {
		if err := runCalls(w, m, opts.calls, opts.framed); err != nil {
			return err
		}
	}
	if opts.wasm != "" {
		if err := runGuest(context.Background(), m, log, opts.wasm, opts.entry, opts.frames); err != nil {
			return err
		}
	}

	if lines := drawSummary(m.Context(), width); len(lines) > 0 {
		fmt.Fprintln(w)
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
	}
	return nil
}

func printFunctions(w io.Writer, m *binding.Module) {
	names := m.Functions()
	fmt.Fprintf(w, "Functions (%d):\n", len(names))
	for _, name := range names {
		f, _ := m.Lookup(name)
		for _, o := range f.Overloads {
			fmt.Fprintf(w, "  %s\n", o.Sig)
			if o.Doc != "" {
				fmt.Fprintf(w, "      %s\n", o.Doc)
			}
		}
	}

	fmt.Fprintf(w, "\nTypes:\n")
	for _, name := range m.Types() {
		t, _ := m.Type(name)
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(t.Fields(), ", "))
	}
}

func printConstants(w io.Writer, m *binding.Module, prefix string) {
	for _, c := range m.Constants() {
		if strings.HasPrefix(c.Name, prefix) {
			fmt.Fprintf(w, "%-48s %d\n", c.Name, c.Value)
		}
	}
}

func runCalls(w io.Writer, m *binding.Module, src string, framed bool) error {
	stmts, err := parseProgram(src)
	if err != nil {
		return err
	}
	for _, st := range stmts {
		var res value.Value
		if framed {
			res, err = evalFramed(m, st.expr)
		} else {
			res, err = st.expr.eval(m)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", st.src, err)
		}
		fmt.Fprintf(w, "> %s\n= %s\n", st.src, res)
	}
	return nil
}

// runGuest instantiates a guest module against the host and calls its entry
// export once per frame. WASI is linked so TinyGo and Rust guests can print.
func runGuest(ctx context.Context, m *binding.Module, log *zap.Logger, path, entry string, frames int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read guest: %w", err)
	}

	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)
	wasi_snapshot_preview1.MustInstantiate(ctx, rt)

	h := wasmhost.New(m, wasmhost.Options{Logger: log, ModuleName: binding.Name})
	defer h.Close()
	if _, err := h.Instantiate(ctx, rt); err != nil {
		return err
	}

	cfg := wazero.NewModuleConfig().
		WithName(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))).
		WithStdout(os.Stdout).
		WithStderr(os.Stderr).
		WithStartFunctions()
	mod, err := rt.InstantiateWithConfig(ctx, data, cfg)
	if err != nil {
		return fmt.Errorf("instantiate guest: %w", err)
	}
	if initFn := mod.ExportedFunction("_initialize"); initFn != nil {
		if _, err := initFn.Call(ctx); err != nil {
			return fmt.Errorf("initialize guest: %w", err)
		}
	}
	fn := mod.ExportedFunction(entry)
	if fn == nil {
		return fmt.Errorf("guest does not export %q", entry)
	}

	for i := range frames {
		if _, err := fn.Call(ctx); err != nil {
			var exit *sys.ExitError
			if errors.As(err, &exit) && exit.ExitCode() == 0 {
				return nil
			}
			if last := h.LastError(); last != "" {
				return fmt.Errorf("frame %d: %w (last error: %s)", i, err, last)
			}
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

func termWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
