// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command molview loads a molecular structure file and produces the
// render-ready artifacts for it: the shared sphere / cylinder mesh
// buffer and the per-instance transform data.
package main

import (
	"fmt"
	"os"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/molview/chem"
	"cogentcore.org/molview/mesh"
	"cogentcore.org/molview/scene"
)

// Config is the configuration information for the molview cli.
type Config struct {

	// Input is the SDF structure file to load.
	Input string `posarg:"0"`

	// Elements is an optional element property table file
	// (.json or .toml). The built-in table is used if unset.
	Elements string `flag:"e,elements"`

	// Output is the file to export scene data to.
	Output string `cmd:"export" flag:"o,output" default:"scene.json"`

	// Stacks is the number of sphere latitude segments.
	Stacks int `default:"32"`

	// Sectors is the number of sphere longitude and cylinder
	// radial segments.
	Sectors int `default:"32"`

	// Capacity is the maximum number of instances the consuming
	// buffer can hold; negative means unbounded.
	Capacity int `default:"-1"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("molview", "Molview converts molecular structure files into mesh and instance data for instanced rendering.")
	cli.Run(opts, &Config{}, Info, Export)
}

// load parses the input compound and maps it to shapes and instances.
func load(c *Config) (*chem.Compound, []scene.Shape, []scene.Instance, error) {
	b, err := os.ReadFile(c.Input)
	if err != nil {
		return nil, nil, nil, err
	}
	co, err := chem.ParseSDF(string(b))
	if err != nil {
		return nil, nil, nil, fmt.Errorf("parsing %s: %w", c.Input, err)
	}
	els := chem.StandardElements()
	if c.Elements != "" {
		if els, err = chem.OpenElements(c.Elements); err != nil {
			return nil, nil, nil, err
		}
	}
	shapes, err := scene.NewMapper(els).Shapes(co)
	if err != nil {
		return nil, nil, nil, err
	}
	ins, err := scene.Instances(shapes, c.Capacity)
	if err != nil {
		return nil, nil, nil, err
	}
	return co, shapes, ins, nil
}

// Info loads the given structure file and reports the compound and
// the sizes of the artifacts it produces.
func Info(c *Config) error { //cli:cmd -root
	co, shapes, ins, err := load(c)
	if err != nil {
		return err
	}
	if co.Moniker != "" {
		fmt.Println("Name:     ", co.Moniker)
	}
	if co.IUPACName != "" {
		fmt.Println("IUPAC:    ", co.IUPACName)
	}
	fmt.Println("Atoms:    ", len(co.Atoms))
	fmt.Println("Bonds:    ", len(co.Bonds))
	fmt.Println("Chiral:   ", co.Chiral)
	fmt.Println("Instances:", len(ins))

	bf := mesh.Build(c.Stacks, c.Sectors, 1, 2)
	logx.PrintlnDebug("sphere instances:", scene.NumSpheres(shapes))
	fmt.Println("Vertices: ", len(bf.Vertices))
	fmt.Println("Indices:  ", len(bf.Indices))
	return nil
}

// SceneData is the exported scene data format: the shared mesh
// buffer with its two index ranges, and the per-shape instance data,
// with sphere instances first to match the sphere index range.
type SceneData struct {
	Moniker    string
	IUPACName  string
	NumSpheres int
	Mesh       *mesh.Buffer
	Instances  []scene.Instance
}

// Export loads the given structure file and writes the mesh and
// instance data to the output file as JSON.
func Export(c *Config) error {
	co, shapes, ins, err := load(c)
	if err != nil {
		return err
	}
	ex := &SceneData{
		Moniker:    co.Moniker,
		IUPACName:  co.IUPACName,
		NumSpheres: scene.NumSpheres(shapes),
		Mesh:       mesh.Build(c.Stacks, c.Sectors, 1, 2),
		Instances:  ins,
	}
	if err := jsonx.Save(ex, c.Output); err != nil {
		return err
	}
	logx.PrintlnInfo("exported", c.Output)
	return nil
}
