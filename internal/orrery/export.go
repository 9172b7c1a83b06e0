package orrery

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/litescript/ls-orrery/internal/orbit"
)

// SnapshotExport is the JSON-serializable state of an orrery.
type SnapshotExport struct {
	Tick   uint64       `json:"tick"`
	Origin PointExport  `json:"origin"`
	Bodies []BodyExport `json:"bodies"`
}

// PointExport is a JSON-friendly viewport position.
type PointExport struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BodyExport is a JSON-friendly body with derived fields.
type BodyExport struct {
	ID           string      `json:"id"`
	Kind         string      `json:"kind"`
	Color        string      `json:"color"`
	Radius       float64     `json:"radius"`
	AngleRad     float64     `json:"angle_rad"`
	AngleDeg     float64     `json:"angle_deg"`
	Position     PointExport `json:"position"`
	Layer        string      `json:"layer"`
	Paused       bool        `json:"paused"`
	LabelVisible bool        `json:"label_visible"`
}

// Export captures the current state of every body.
func (o *Orrery) Export() *SnapshotExport {
	export := &SnapshotExport{
		Tick:   o.ticks,
		Origin: PointExport{X: o.origin.X, Y: o.origin.Y},
	}

	for _, e := range o.entries {
		b := e.body
		pos := b.Position(o.origin)
		export.Bodies = append(export.Bodies, BodyExport{
			ID:           b.ID,
			Kind:         b.Kind.String(),
			Color:        b.Color,
			Radius:       b.Radius,
			AngleRad:     b.Angle,
			AngleDeg:     b.Angle * 180 / math.Pi,
			Position:     PointExport{X: pos.X, Y: pos.Y},
			Layer:        orbit.Depth(*b, pos, o.origin).String(),
			Paused:       b.Paused,
			LabelVisible: b.LabelVisible,
		})
	}

	return export
}

// WriteJSON writes the snapshot as JSON to the given writer.
func (s *SnapshotExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// WriteSummary writes a text table to the given writer.
func (s *SnapshotExport) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "Orrery @ tick %d (origin %.0f,%.0f)\n", s.Tick, s.Origin.X, s.Origin.Y)
	fmt.Fprintln(w, strings.Repeat("─", 64))
	fmt.Fprintf(w, "%-10s %-7s %-10s %8s %8s %8s %-6s\n",
		"Body", "Kind", "Color", "Angle", "X", "Y", "Layer")
	fmt.Fprintln(w, strings.Repeat("─", 64))

	for _, b := range s.Bodies {
		name := b.ID
		if b.Paused {
			name += "*"
		}
		fmt.Fprintf(w, "%-10s %-7s %-10s %7.1f° %8.1f %8.1f %-6s\n",
			name, b.Kind, b.Color, b.AngleDeg, b.Position.X, b.Position.Y, b.Layer)
	}

	fmt.Fprintf(w, "\nTotal: %d bodies\n", len(s.Bodies))
}
