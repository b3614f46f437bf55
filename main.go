//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/voxelsplace/cubemesh/api"
	"github.com/voxelsplace/cubemesh/utils"
)

func usage() {
	fmt.Println("Usage: cubemesh <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  demo [output.vxg [output.glb]]                    (write the 8x2x8 demo chunk)")
	fmt.Println("  rle2grid <w> <h> <d> <rle> output.vxg            (expand count,value pairs into a grid)")
	fmt.Println("  grid2glb input.vxg output.glb [texture.png]      (culled mesh -> .glb)")
	fmt.Println("  grid2glb-greedy input.vxg output.glb             (greedy merged mesh -> .glb)")
	fmt.Println("  grid2glb-parallel input.vxg output.glb <workers> (culled mesh built by x-slab workers)")
	fmt.Println("  applyedits input.vxg edits.bin output.vxg        (apply an edit stream)")
	fmt.Println("  edits2grid <w> <h> <d> edits.bin output.vxg      (build a grid from an edit stream)")
	fmt.Println("  grid2edits input.vxg edits.bin                   (write the edit stream of a grid)")
	fmt.Println("  stats input.vxg                                  (print grid and mesh sizes)")
	fmt.Println("  gennoise <w> <h> <d> <percentage> <amount> <output_dir>")
	fmt.Println("  gennoise <w> <h> <d> <percentageMin> <percentageMax> <amount> <output_dir>")
}

func fail(err error) {
	fmt.Println("Error:", err)
	os.Exit(1)
}

// scanArgs parses args into dst in order.
func scanArgs(args []string, dst ...any) error {
	if len(args) != len(dst) {
		return errors.Errorf("want %d arguments, got %d", len(dst), len(args))
	}
	for i, a := range args {
		if _, err := fmt.Sscan(a, dst[i]); err != nil {
			return errors.Wrapf(err, "argument %q", a)
		}
	}
	return nil
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	args := os.Args[2:]

	var err error
	switch os.Args[1] {
	case "demo":
		if len(args) > 2 {
			usage()
			os.Exit(1)
		}
		gridPath, glbPath := "demo.vxg", ""
		if len(args) > 0 {
			gridPath = args[0]
		}
		if len(args) > 1 {
			glbPath = args[1]
		}
		err = utils.RunDemo(gridPath, glbPath)
	case "rle2grid":
		if len(args) != 5 {
			usage()
			os.Exit(1)
		}
		var w, h, d int
		if err := scanArgs(args[:3], &w, &h, &d); err != nil {
			fail(err)
		}
		err = utils.RunRLE2Grid(w, h, d, args[3], args[4])
	case "grid2glb":
		if len(args) != 2 && len(args) != 3 {
			usage()
			os.Exit(1)
		}
		var gopts api.GLBOptions
		if len(args) == 3 {
			gopts.TextureURI = args[2]
		}
		err = utils.RunGrid2GLB(args[0], args[1], api.MeshOptions{}, gopts)
	case "grid2glb-greedy":
		if len(args) != 2 {
			usage()
			os.Exit(1)
		}
		err = utils.RunGrid2GLB(args[0], args[1], api.MeshOptions{Greedy: true}, api.GLBOptions{})
	case "grid2glb-parallel":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		var workers int
		if err := scanArgs(args[2:], &workers); err != nil {
			fail(err)
		}
		err = utils.RunGrid2GLB(args[0], args[1], api.MeshOptions{Workers: workers}, api.GLBOptions{})
	case "applyedits":
		if len(args) != 3 {
			usage()
			os.Exit(1)
		}
		edits, rerr := os.ReadFile(args[1])
		if rerr != nil {
			fail(rerr)
		}
		err = utils.RunApplyEdits(edits, args[0], args[2])
	case "edits2grid":
		if len(args) != 5 {
			usage()
			os.Exit(1)
		}
		var w, h, d int
		if err := scanArgs(args[:3], &w, &h, &d); err != nil {
			fail(err)
		}
		err = utils.RunEdits2Grid(w, h, d, args[3], args[4])
	case "grid2edits":
		if len(args) != 2 {
			usage()
			os.Exit(1)
		}
		err = utils.RunGrid2Edits(args[0], args[1])
	case "stats":
		if len(args) != 1 {
			usage()
			os.Exit(1)
		}
		err = utils.RunStats(args[0])
	case "gennoise":
		// Two forms:
		// 1) gennoise <w> <h> <d> <percentage> <amount> <output_dir>
		// 2) gennoise <w> <h> <d> <percentageMin> <percentageMax> <amount> <output_dir>
		var w, h, d, amt int
		switch len(args) {
		case 6:
			var perc float64
			if err := scanArgs(args[:5], &w, &h, &d, &perc, &amt); err != nil {
				fail(err)
			}
			err = utils.RunGenerateNoise(w, h, d, perc, amt, args[5])
		case 7:
			var minP, maxP float64
			if err := scanArgs(args[:6], &w, &h, &d, &minP, &maxP, &amt); err != nil {
				fail(err)
			}
			err = utils.RunGenerateNoiseRange(w, h, d, minP, maxP, amt, args[6])
		default:
			usage()
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fail(err)
	}

	fmt.Println("Operation completed!")
}
