// Command octocase generates the octagonal device enclosure and its
// push-to-talk button as printable meshes, plus the cross-section as a
// DXF drawing.
package main

import (
	"flag"
	"fmt"
	"log"

	"octocase"
	"octocase/export"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("octocase: ")

	var (
		out    = flag.String("o", "octocase", "output base name")
		cells  = flag.Int("cells", export.DefaultMeshCells, "octree mesh resolution")
		width  = flag.Float64("width", 0, "flat-to-flat width in mm (0 = default)")
		height = flag.Float64("height", 0, "enclosure height in mm (0 = default)")
		wall   = flag.Float64("wall", 0, "wall thickness in mm (0 = default)")
		mfOut  = flag.Bool("3mf", false, "also write the enclosure as a 3MF archive")
		dxfOut = flag.Bool("dxf", false, "also write the cross-section profile as DXF")
		dump   = flag.Bool("params", false, "print the parameter table and exit")
	)
	flag.Parse()

	p := octocase.DefaultParams()
	if *width > 0 {
		p.Width = *width
	}
	if *height > 0 {
		p.Height = *height
	}
	if *wall > 0 {
		p.Wall = *wall
	}

	if *dump {
		for name, prm := range p.Table() {
			fmt.Printf("%-18s %8.3f %s\n", name, prm.Value, prm.Unit)
		}
		return
	}

	asm, err := octocase.Build(p)
	if err != nil {
		log.Fatal(err)
	}
	for _, w := range asm.Warnings {
		log.Printf("warning: %s", w)
	}

	if err := export.Assembly(*out, asm, *cells); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s.stl", *out)
	if asm.Button != nil {
		log.Printf("wrote %s-button.stl", *out)
	}
	if *mfOut {
		if err := export.ThreeMF(*out+".3mf", asm.Enclosure, *cells); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s.3mf", *out)
	}
	if *dxfOut {
		if err := export.ProfileDXF(*out+".dxf", asm.Profile); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s.dxf", *out)
	}
}
