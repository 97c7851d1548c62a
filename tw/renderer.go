package tw

import (
	"io"

	"github.com/olekukonko/ll"
)

// Renderer is the interface a table-output backend implements. No type in
// this repository implements it: the driver (C8) calls the render package's
// functions directly.
type Renderer interface {
	Start(w io.Writer) error
	Close(w io.Writer) error
	Logger(logger *ll.Logger)
	Config() RendererConfig
}

// RendererConfig holds the renderer-level configuration a Renderer reports
// through Config: which borders are visible, which glyph preset to use, and the
// finer-grained line/separator toggles.
type RendererConfig struct {
	Borders  Border
	Preset   Preset
	Settings Settings
}

// Separators controls the visibility of separators in the table.
type Separators struct {
	ShowHeader     State
	ShowFooter     State
	BetweenRows    State
	BetweenColumns State
}

// Lines manages the visibility of table boundary lines.
type Lines struct {
	ShowTop        State
	ShowBottom     State
	ShowHeaderLine State
	ShowFooterLine State
}

// Settings holds configuration preferences for rendering behavior.
type Settings struct {
	Separators     Separators
	Lines          Lines
	TrimWhitespace State
}

// Border defines the visibility states of the four table borders.
type Border struct {
	Left   State
	Right  State
	Top    State
	Bottom State
}

// BorderNone disables all four borders.
var BorderNone = Border{Left: Off, Right: Off, Top: Off, Bottom: Off}
