package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/eytandecker/fdmscene/internal/scene"
)

func writeScene(w io.Writer, snap scene.Snapshot, format string, color bool) error {
	switch format {
	case "yaml":
		data, err := snap.YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(data)
		return err
	case "json":
		data, err := snap.JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	out := termenv.NewOutput(w)
	if !color {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return writeTree(w, out, snap.Groups, 0)
}

func writeTree(w io.Writer, out *termenv.Output, groups []scene.GroupSnapshot, depth int) error {
	indent := strings.Repeat("  ", depth)
	for _, g := range groups {
		name := out.String(g.Name).Foreground(out.Color("4")).Bold()
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, name); err != nil {
			return err
		}
		for _, o := range g.Objects {
			line := fmt.Sprintf("%s  %-6s %s (%.4f, %.4f, %.4f)",
				indent, o.Shape, o.Name, o.Position[0], o.Position[1], o.Position[2])
			if o.Parent != "" {
				line += " -> " + out.String(o.Parent).Faint().String()
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if err := writeTree(w, out, g.Groups, depth+1); err != nil {
			return err
		}
	}
	return nil
}
