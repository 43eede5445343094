// Package render prints package listings for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/rauri/internal/core/domain"
	"go.trai.ch/rauri/internal/ui/output"
	"go.trai.ch/rauri/internal/ui/style"
)

// Renderer writes styled listings to a writer.
// Styling is dropped when color is disabled or the writer is not a terminal.
type Renderer struct {
	w  io.Writer
	lg *lipgloss.Renderer
}

// New creates a Renderer for w.
func New(w io.Writer, useColor bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(output.ColorProfile(w, useColor))
	return &Renderer{w: w, lg: lg}
}

func (r *Renderer) style(s lipgloss.Style) lipgloss.Style {
	return s.Renderer(r.lg)
}

func (r *Renderer) println(line string) {
	_, _ = fmt.Fprintln(r.w, line)
}

// Packages prints installed source packages. A package built under a different
// name than its source directory is shown as "dir → name".
func (r *Renderer) Packages(pkgs []domain.ListedPackage) {
	outdated := 0
	for _, p := range pkgs {
		var b strings.Builder
		b.WriteString("  ")
		if p.DirName != p.PackageName {
			b.WriteString(r.style(style.Muted).Render(p.DirName))
			b.WriteString(" " + style.Arrow + " ")
		}
		b.WriteString(r.style(style.PackageName).Render(p.PackageName))
		b.WriteString(" ")

		if p.Outdated {
			outdated++
			b.WriteString(r.style(style.Stale).Render(p.InstalledVersion))
			b.WriteString(" ")
			b.WriteString(r.style(style.Stale).Render("(" + p.UpstreamVersion + " available)"))
		} else {
			b.WriteString(r.style(style.Current).Render(p.InstalledVersion))
		}
		r.println(b.String())
	}

	if outdated > 0 {
		r.println("")
		r.println(r.style(style.Stale.Bold(true)).Render(
			fmt.Sprintf("%d package(s) have updates available", outdated)))
	}
}

// Tracked prints tracked package names, one per line.
func (r *Renderer) Tracked(names []string) {
	for _, n := range names {
		r.println("  " + r.style(style.PackageName).Render(n))
	}
}

// Search prints AUR and official repository results, each under its own header.
// Empty sections are omitted.
func (r *Renderer) Search(aur []domain.UpstreamPackage, repo []domain.RepoPackage) {
	if len(aur) > 0 {
		r.println("")
		r.println(r.style(style.Header).Render("AUR Packages:"))
		for _, p := range aur {
			line := "  " + r.style(style.Repository).Render("aur/") +
				r.style(style.PackageName).Render(p.Name) + " " +
				r.style(style.Muted).Render("("+p.Version+")")
			if p.Description != "" {
				line += " - " + p.Description
			}
			r.println(line)
		}
	}

	if len(repo) > 0 {
		r.println("")
		r.println(r.style(style.Header).Render("Official Repository Packages:"))
		for _, p := range repo {
			line := "  " + r.style(style.Repository).Render(p.Repository+"/") +
				r.style(style.PackageName).Render(p.Name) + " " +
				r.style(style.Muted).Render("("+p.Version+")")
			if p.Installed {
				line += " " + r.style(style.Current).Render("[installed]")
			}
			r.println(line)
			if p.Description != "" {
				r.println("      " + p.Description)
			}
		}
	}
}
