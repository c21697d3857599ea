// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/iox/tomlx"
	"cogentcore.org/core/math32"
)

// ElementInfo holds the per-element display properties used to size
// and color atom primitives. Radii are in picometers; -1 marks an
// undefined covalent radius.
type ElementInfo struct {
	// WaalRadius is the van der Waals radius.
	WaalRadius int `json:"waal_radius" toml:"waal_radius"`

	// CovalentRadius holds the single, double, and triple bond
	// covalent radii, in that order.
	CovalentRadius [3]int `json:"covalent_radius" toml:"covalent_radius"`

	// Color is the base display color as RGB in 0..1.
	Color [3]float32 `json:"color" toml:"color"`
}

// BaseColor returns the element's display color as a [math32.Vector3].
func (ei *ElementInfo) BaseColor() math32.Vector3 {
	return math32.Vec3(ei.Color[0], ei.Color[1], ei.Color[2])
}

// Elements maps a chemical element symbol (case-sensitive, e.g., "H",
// "Na") to its display properties. It is read-only after loading and
// safe for concurrent use.
type Elements map[string]ElementInfo

// Info returns the properties for the given element symbol, or an
// error if the symbol is not in the table.
func (el Elements) Info(symbol string) (ElementInfo, error) {
	ei, ok := el[symbol]
	if !ok {
		return ElementInfo{}, fmt.Errorf("chem: unknown element %q", symbol)
	}
	return ei, nil
}

// MaxCovalentRadius returns the maximum defined covalent radius across
// all elements and bond orders in the table, for normalizing sphere
// sizes. It returns 0 for an empty table.
func (el Elements) MaxCovalentRadius() int {
	max := 0
	for _, ei := range el {
		for _, r := range ei.CovalentRadius {
			if r > max {
				max = r
			}
		}
	}
	return max
}

// OpenElements loads an element property table from the given JSON or
// TOML file, by extension. An IO or decoding error returns no table.
func OpenElements(filename string) (Elements, error) {
	el := Elements{}
	var err error
	switch filepath.Ext(filename) {
	case ".toml":
		err = tomlx.Open(&el, filename)
	default:
		err = jsonx.Open(&el, filename)
	}
	if err != nil {
		return nil, err
	}
	return el, nil
}

//go:embed element_data.json
var elementData []byte

// StandardElements returns the built-in element property table,
// covering the elements common in small organic molecules.
func StandardElements() Elements {
	el := Elements{}
	err := json.Unmarshal(elementData, &el)
	if err != nil { // embedded data; cannot fail
		panic("chem: invalid embedded element data: " + err.Error())
	}
	return el
}
