// Package main demonstrates the vimkit engine: register routing,
// macro recording, and deterministic replay over a toy buffer.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"sync/atomic"

	"github.com/dshills/vimkit/internal/clipboard"
	"github.com/dshills/vimkit/internal/config"
	"github.com/dshills/vimkit/internal/dispatcher"
	"github.com/dshills/vimkit/internal/input"
	"github.com/dshills/vimkit/internal/input/macro"
	"github.com/dshills/vimkit/internal/input/vim"
)

func main() {
	os.Exit(run())
}

func run() int {
	var configPath string
	var recordingsPath string
	var useSystem bool
	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&recordingsPath, "recordings", "", "Path to saved macro recordings")
	flag.BoolVar(&useSystem, "system", false, "Use the OS clipboard instead of an in-memory one")
	flag.Parse()

	var settings atomic.Pointer[config.Settings]
	initial := config.Default()
	settings.Store(&initial)
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		settings.Store(&loaded)

		watcher, err := config.NewWatcher(configPath, func(reloaded config.Settings, err error) {
			if err != nil {
				fmt.Fprintf(os.Stderr, "config reload: %v\n", err)
				return
			}
			settings.Store(&reloaded)
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		defer watcher.Close()
	}

	var clip clipboard.Provider
	if useSystem {
		clip = clipboard.NewSystem()
	} else {
		clip = clipboard.NewMemoryWithPrimary()
	}

	store := vim.NewRegisterStore()
	router := vim.NewRouter(store, clip, func() vim.ClipboardPolicy {
		policy, _ := settings.Load().ClipboardPolicy()
		return policy
	})

	log := macro.NewReplayLog()
	if recordingsPath != "" {
		if err := macro.Load(log, recordingsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	host := newHost(log)

	// Yanks and deletes route through the register engine.
	router.WriteRegister(vim.Register{Text: "hello, registers"}, 0, true, false)
	router.WriteRegister(vim.Register{Text: "first line\n"}, 0, false, true)
	router.WriteRegister(vim.Register{Text: "second line\n"}, 0, false, true)
	router.WriteRegister(vim.Register{Text: "word"}, 0, false, false)
	printRegisters(router, store)

	// Record a macro to register a, then replay it twice.
	if err := log.StartNamedRecording('a'); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	host.live(macro.InsertionStep("ab"))
	host.live(macro.ActionStep(input.Action{Name: "cursor.left"}))
	host.live(macro.InsertionStep("c"))
	register, _, err := log.StopNamedRecording()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("recorded @%c over %q\n", register, string(host.text))

	if err := log.ReplayRegister(register, 2, host); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Printf("after 2@%c: %q\n", register, string(host.text))

	if recordingsPath != "" {
		if err := macro.Save(log, recordingsPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

func printRegisters(router *vim.Router, store *vim.RegisterStore) {
	names := store.Names()
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	for _, name := range names {
		if reg, ok := router.ReadRegister(name); ok {
			fmt.Printf("  %q  %q\n", name, reg.Text)
		}
	}
}

// host is a minimal editor stand-in: a rune buffer with a cursor. It
// dispatches live actions through the same path replay uses.
type host struct {
	text   []rune
	cursor int
	log    *macro.ReplayLog
	disp   *dispatcher.Dispatcher
}

func newHost(log *macro.ReplayLog) *host {
	h := &host{log: log}
	h.disp = dispatcher.New()
	h.disp.Register("cursor", dispatcher.HandlerFunc(func(action input.Action) dispatcher.Result {
		switch action.Name {
		case "cursor.left":
			if h.cursor > 0 {
				h.cursor--
			}
		case "cursor.right":
			if h.cursor < len(h.text) {
				h.cursor++
			}
		default:
			return dispatcher.Errorf("unknown cursor action %q", action.Name)
		}
		return dispatcher.OK()
	}))
	return h
}

// live records an action and applies it, the shape of a keystroke.
func (h *host) live(step macro.ReplayableAction) {
	h.log.RecordAction(step)
	switch {
	case step.Action != nil:
		_ = h.DispatchAction(*step.Action)
	case step.Insertion != nil:
		_ = h.InsertText(step.Insertion.Text, step.Insertion.ReplaceRange)
	}
}

// DispatchAction implements macro.ActionDispatcher.
func (h *host) DispatchAction(action input.Action) error {
	result := h.disp.Dispatch(action)
	return result.Err
}

// InsertText implements macro.ActionDispatcher.
func (h *host) InsertText(text string, _ *macro.UTF16Range) error {
	inserted := []rune(text)
	h.text = append(h.text[:h.cursor], append(inserted, h.text[h.cursor:]...)...)
	h.cursor += len(inserted)
	return nil
}
