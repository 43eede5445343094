// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Cyan   = lipgloss.Color("#0EA5E9")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
)

// Text roles used when rendering package tables.
var (
	// PackageName is applied to package names.
	PackageName = lipgloss.NewStyle().Bold(true)
	// Repository is applied to repository labels such as "aur/" or "extra/".
	Repository = lipgloss.NewStyle().Foreground(Iris).Bold(true)
	// Current is applied to versions that are up to date.
	Current = lipgloss.NewStyle().Foreground(Green)
	// Stale is applied to installed versions that have an update pending.
	Stale = lipgloss.NewStyle().Foreground(Yellow)
	// Muted is applied to secondary information.
	Muted = lipgloss.NewStyle().Foreground(Slate)
	// Header is applied to section headers.
	Header = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
)
