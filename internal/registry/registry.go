// Package registry provides a global registry for splash widget factories.
// Widgets register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-splash/internal/core"
)

// Widget is the core interface that all splash widgets must implement.
// Widgets contain pure logic with no external dependencies (especially no
// Bubble Tea). The platform handles input mapping, timing, and rendering.
type Widget interface {
	// ID returns a unique identifier for this widget (e.g., "runner").
	// Used for CLI commands.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Size returns the widget's logical scene size in character cells.
	// The scene never resizes; the platform centers it in the terminal.
	Size() (cols, rows int)

	// Reset initializes or resets the widget state.
	// Called once before the first tick. The RuntimeConfig provides the
	// RNG seed and the palette.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions.
	Step(in core.InputFrame)

	// Render draws the current widget state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)
}

// WidgetInfo contains metadata about a registered widget.
type WidgetInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a widget.
type Factory func() Widget

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a widget factory to the registry.
// Typically called from a widget's init() function.
// Panics if a widget with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: widget %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	w := f()
	titles[id] = w.Title()
}

// List returns information about all registered widgets, sorted by ID.
func List() []WidgetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]WidgetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, WidgetInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new widget by its ID.
// Returns an error if the widget ID is not registered.
func Create(id string) (Widget, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown widget %q", id)
	}

	return f(), nil
}

// Exists checks if a widget with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
