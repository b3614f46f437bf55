//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxelsplace/cubemesh/api"
)

func bytesArg(v js.Value) []byte {
	buf := make([]byte, v.Get("length").Int())
	js.CopyBytesToGo(buf, v)
	return buf
}

func toUint8Array(b []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(b))
	js.CopyBytesToJS(arr, b)
	return arr
}

// rle2grid(w, h, d, rle) -> Uint8Array (.vxg)
func rle2grid(this js.Value, args []js.Value) any {
	if len(args) < 4 {
		return js.ValueOf("usage: rle2grid(w, h, d, rle)")
	}
	out, err := api.RLEToGridBytes(args[0].Int(), args[1].Int(), args[2].Int(), args[3].String())
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

// grid2glb(gridBytes, [greedy], [textureURI]) -> Uint8Array (.glb)
func grid2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing grid bytes")
	}
	var mopts api.MeshOptions
	var gopts api.GLBOptions
	if len(args) > 1 {
		mopts.Greedy = args[1].Truthy()
	}
	if len(args) > 2 {
		gopts.TextureURI = args[2].String()
	}
	out, err := api.GridToGLB(bytesArg(args[0]), mopts, gopts)
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

// applyEdits(gridBytes, editBytes) -> Uint8Array (.vxg)
func applyEdits(this js.Value, args []js.Value) any {
	if len(args) < 2 {
		return js.ValueOf("missing grid or edit bytes")
	}
	out, err := api.ApplyEditsToGridBytes(bytesArg(args[0]), bytesArg(args[1]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return toUint8Array(out)
}

// gridStats(gridBytes) -> object
func gridStats(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing grid bytes")
	}
	s, err := api.GridStats(bytesArg(args[0]))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	return js.ValueOf(map[string]any{
		"width":        s.W,
		"height":       s.H,
		"depth":        s.D,
		"occupied":     s.Occupied,
		"naiveFaces":   s.NaiveFaces,
		"visibleFaces": s.VisibleFaces,
		"greedyQuads":  s.GreedyQuads,
		"vertices":     s.Vertices,
		"indices":      s.Indices,
		"compression":  s.Compression,
	})
}

func main() {
	js.Global().Set("rle2grid", js.FuncOf(rle2grid))
	js.Global().Set("grid2glb", js.FuncOf(grid2glb))
	js.Global().Set("applyEdits", js.FuncOf(applyEdits))
	js.Global().Set("gridStats", js.FuncOf(gridStats))
	select {}
}
