// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command frontdemo records the draw calls of a YAML scene and prints the
// resulting command listing.
//
//	frontdemo -scene scene.yaml -texture photo.png -backend software
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/front"
	"github.com/gogpu/front/backend"
	_ "github.com/gogpu/front/backend/wgpu"
	"github.com/gogpu/front/device"
	"github.com/gogpu/front/shade"
	"github.com/gogpu/front/target"
	"github.com/gogpu/gputypes"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

//go:embed triangle.yaml
var defaultScene []byte

// textureSize is the edge of the square texture images are scaled into.
const textureSize = 64

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("frontdemo", flag.ContinueOnError)
	var (
		scenePath = fs.String("scene", "", "scene file (default: built-in triangle)")
		texPath   = fs.String("texture", "", "image bound to the scene texture (default: checkerboard)")
		name      = fs.String("backend", "", "backend name (default: best available)")
		verbose   = fs.Bool("v", false, "log to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		front.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer front.SetLogger(nil)
	}

	scene, err := loadScene(*scenePath)
	if err != nil {
		return err
	}

	var dev backend.Device
	if *name != "" {
		dev, err = backend.Open(*name)
	} else {
		dev, err = backend.OpenBest()
	}
	if err != nil {
		return err
	}
	defer dev.Close()

	r, err := front.NewRenderer(dev, front.WithRollback(true))
	if err != nil {
		return err
	}
	if err := record(r, dev, scene, *texPath); err != nil {
		return err
	}
	if err := dev.Upload(r.Commands()); err != nil {
		return err
	}
	if _, err := r.WriteTo(out); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%d commands, %d frames\n", r.Len(), scene.Frames)
	return err
}

func loadScene(path string) (*Scene, error) {
	if path == "" {
		return ParseScene(defaultScene)
	}
	return LoadScene(path)
}

// record builds the scene resources on dev and records every frame.
func record(r *front.Renderer, dev backend.Device, scene *Scene, texPath string) error {
	prog, err := front.LinkProgram(dev,
		device.ShaderSource{Label: "scene.vertex", WGSL: scene.Program.Vertex},
		device.ShaderSource{Label: "scene.fragment", WGSL: scene.Program.Fragment})
	if err != nil {
		return err
	}

	m, err := front.CreateMesh(dev, scene.Vertices)
	if err != nil {
		return err
	}
	prim, _ := scene.topology()
	slice := m.ToSlice(prim)
	if len(scene.Indices) > 0 {
		if slice, err = front.CreateIndexSlice(dev, prim, scene.Indices); err != nil {
			return err
		}
	}

	params := &shade.NamedParams{}
	for name, v := range scene.Uniforms {
		u, _ := uniformValue(v)
		params.SetUniform(name, u)
	}
	if scene.Texture != "" {
		tp, err := loadTexture(r, dev, texPath)
		if err != nil {
			return err
		}
		params.SetTexture(scene.Texture, tp)
	}

	surface, err := dev.CreateSurface(device.SurfaceInfo{
		Width:   scene.Width,
		Height:  scene.Height,
		Samples: 1,
		Format:  gputypes.TextureFormatBGRA8Unorm,
	})
	if err != nil {
		return err
	}
	frame := target.NewFrame(scene.Width, scene.Height)
	frame.SetColor(0, target.Surface(surface))

	st, _ := scene.drawState()
	program := shade.Bind(prog, params)
	cd := device.ClearData{Color: scene.clearColor(), Depth: 1, Mask: device.ClearColor}
	if st.Depth != nil {
		cd.Mask |= device.ClearDepth
	}
	for range scene.Frames {
		r.Clear(cd, &frame)
		if err := r.Draw(m, slice, &frame, program, &st); err != nil {
			return err
		}
	}
	return nil
}

// loadTexture uploads the image at path, or a checkerboard when path is
// empty, into a new texture with a linear sampler.
func loadTexture(r *front.Renderer, dev backend.Device, path string) (shade.TextureParam, error) {
	var img image.Image = checkerboard(8)
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return shade.TextureParam{}, err
		}
		defer f.Close()
		if img, _, err = image.Decode(f); err != nil {
			return shade.TextureParam{}, fmt.Errorf("frontdemo: decode %s: %w", path, err)
		}
	}

	tex, err := dev.CreateTexture(device.NewTextureInfo(textureSize, textureSize, gputypes.TextureFormatRGBA8Unorm))
	if err != nil {
		return shade.TextureParam{}, err
	}
	if err := front.UploadImage(r, tex, 0, img); err != nil {
		return shade.TextureParam{}, err
	}
	sampler, err := dev.CreateSampler(gputypes.LinearSamplerDescriptor())
	if err != nil {
		return shade.TextureParam{}, err
	}
	return shade.NewTextureParam(tex, sampler), nil
}

func checkerboard(cell int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, textureSize, textureSize))
	for y := range textureSize {
		for x := range textureSize {
			c := color.RGBA{R: 40, G: 40, B: 40, A: 255}
			if (x/cell+y/cell)%2 == 0 {
				c = color.RGBA{R: 230, G: 230, B: 230, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
