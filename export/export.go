// Package export writes finished solids and profiles to disk. It is
// the only package that touches the filesystem; everything upstream
// works on distance fields in memory.
package export

import (
	"fmt"

	"github.com/soypat/sdf"
	"github.com/soypat/sdf/render"
	"github.com/yofu/dxf"

	"octocase"
)

// DefaultMeshCells is the octree resolution used when the caller does
// not pick one. It resolves the 1.5 mm grille holes at the default
// enclosure size.
const DefaultMeshCells = 300

// STL meshes a solid with an octree renderer and writes a binary STL.
func STL(path string, s sdf.SDF3, meshCells int) error {
	if s == nil {
		return fmt.Errorf("export %q: nil solid", path)
	}
	if meshCells <= 0 {
		meshCells = DefaultMeshCells
	}
	return render.CreateSTL(path, render.NewOctreeRenderer(s, meshCells))
}

// ThreeMF meshes a solid and writes a 3MF archive.
func ThreeMF(path string, s sdf.SDF3, meshCells int) error {
	if s == nil {
		return fmt.Errorf("export %q: nil solid", path)
	}
	if meshCells <= 0 {
		meshCells = DefaultMeshCells
	}
	return render.Create3MF(path, render.NewOctreeRenderer(s, meshCells))
}

// Assembly writes every solid of an assembly next to each other:
// <base>.stl for the enclosure and <base>-button.stl for the detached
// button when one exists.
func Assembly(base string, a *octocase.Assembly, meshCells int) error {
	if err := STL(base+".stl", a.Enclosure, meshCells); err != nil {
		return err
	}
	if a.Button != nil {
		return STL(base+"-button.stl", a.Button, meshCells)
	}
	return nil
}

// ProfileDXF writes the octagonal cross-section as a DXF drawing of
// LINE entities, one per profile edge, for flat-pattern checks in CAD.
func ProfileDXF(path string, pr *octocase.Profile) error {
	if pr == nil {
		return fmt.Errorf("export %q: nil profile", path)
	}
	d := dxf.NewDrawing()
	verts := pr.Vertices()
	for i, a := range verts {
		b := verts[(i+1)%len(verts)]
		if _, err := d.Line(a.X, a.Y, 0, b.X, b.Y, 0); err != nil {
			return fmt.Errorf("export %q: edge %d: %w", path, i, err)
		}
	}
	return d.SaveAs(path)
}
