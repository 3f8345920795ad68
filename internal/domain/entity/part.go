// Package entity contains domain entities representing core layout concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPart is returned when a string does not name a workbench part.
var ErrInvalidPart = errors.New("invalid part")

// Part identifies one of the fixed chrome regions composed by the grid.
type Part int

const (
	PartTitleBar Part = iota
	PartBanner
	PartActivityBar
	PartSideBar
	PartEditor
	PartPanel
	PartAuxiliaryBar
	PartStatusBar

	partCount
)

var partIDs = [partCount]string{
	PartTitleBar:     "workbench.parts.titlebar",
	PartBanner:       "workbench.parts.banner",
	PartActivityBar:  "workbench.parts.activitybar",
	PartSideBar:      "workbench.parts.sidebar",
	PartEditor:       "workbench.parts.editor",
	PartPanel:        "workbench.parts.panel",
	PartAuxiliaryBar: "workbench.parts.auxiliarybar",
	PartStatusBar:    "workbench.parts.statusbar",
}

// AllParts returns every part in grid order.
func AllParts() []Part {
	parts := make([]Part, 0, partCount)
	for p := PartTitleBar; p < partCount; p++ {
		parts = append(parts, p)
	}
	return parts
}

// Valid reports whether p is one of the declared parts.
func (p Part) Valid() bool {
	return p >= PartTitleBar && p < partCount
}

// String returns the part's wire identifier (e.g. "workbench.parts.sidebar").
func (p Part) String() string {
	if !p.Valid() {
		return fmt.Sprintf("workbench.parts.unknown(%d)", int(p))
	}
	return partIDs[p]
}

// ShortName returns the identifier without the "workbench.parts." prefix.
func (p Part) ShortName() string {
	return strings.TrimPrefix(p.String(), "workbench.parts.")
}

// MarshalText implements encoding.TextMarshaler.
func (p Part) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPart, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Part) UnmarshalText(text []byte) error {
	parsed, err := ParsePart(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePart accepts either the full identifier or the short name ("sidebar").
func ParsePart(s string) (Part, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "workbench.parts.")
	for p := PartTitleBar; p < partCount; p++ {
		if p.ShortName() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPart, s)
}
