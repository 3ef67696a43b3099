// Command swarm renders an animated, resizable swarm of instanced objects
// under an orbiting directional light.
//
// Controls:
//
//	Up / Down      grow or shrink the swarm by 100 objects
//	M              toggle between the cube primitive and the loaded mesh
//	middle drag    orbit the camera
//	scroll         zoom
//	Esc            quit
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/lp249839965/180622-WebGPU-Demos/common"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/camera"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/config"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/geometry"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/light"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/pool"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/renderer"
	"github.com/lp249839965/180622-WebGPU-Demos/engine/window"
)

func main() {
	configPath := flag.String("config", "swarm.toml", "path to the TOML configuration file")
	uncapped := flag.Bool("uncapped", false, "present frames immediately instead of waiting for vsync")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("[Swarm] %v", err)
	}

	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	defer win.Close()

	controller := camera.NewController(
		camera.WithRadius(cfg.Camera.Radius),
		camera.WithAutoOrbitSpeed(cfg.Camera.AutoOrbitSpeed),
	)
	cam := camera.NewCamera(camera.WithController(controller))
	sun := light.NewDirectionalLight(
		light.WithOrbit(cfg.Swarm.RegionSize*0.9, cfg.Swarm.RegionSize*0.5),
	)

	presentMode := renderer.PresentModeVSync
	if *uncapped {
		presentMode = renderer.PresentModeUncapped
	}

	fr, err := renderer.NewFrameRenderer(win,
		renderer.WithCamera(cam),
		renderer.WithLight(sun),
		renderer.WithInitialCount(cfg.Swarm.InitialCount),
		renderer.WithPresentMode(presentMode),
		renderer.WithPoolOptions(pool.WithRegionSize(cfg.Swarm.RegionSize)),
	)
	if err != nil {
		log.Fatalf("[Swarm] renderer setup: %v", err)
	}
	defer fr.Close()

	if cfg.Swarm.MeshPath != "" {
		mesh, err := geometry.LoadMesh(cfg.Swarm.MeshPath)
		if err != nil {
			log.Printf("[Swarm] mesh %q unavailable, cube only: %v", cfg.Swarm.MeshPath, err)
		} else if err := fr.SetAlternateGeometry(mesh); err != nil {
			log.Printf("[Swarm] mesh upload failed, cube only: %v", err)
		} else {
			log.Printf("[Swarm] loaded mesh %q (%d vertices)", cfg.Swarm.MeshPath, mesh.VertexCount())
		}
	}

	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyUp:
			fr.AdjustCount(config.CountStep)
		case common.KeyDown:
			fr.AdjustCount(-config.CountStep)
		case common.KeyM:
			fr.ToggleGeometry()
		}
	})
	win.SetDragCallback(func(dx, dy float32) {
		controller.Drag(dx, dy)
	})
	win.SetScrollCallback(func(delta float32) {
		controller.Zoom(delta)
	})
	win.SetUpdateCallback(func() {
		if err := fr.Tick(); err != nil {
			if errors.Is(err, renderer.ErrSurfaceUnavailable) {
				// Transient (minimized or occluded); the next tick retries.
				return
			}
			log.Printf("[Swarm] fatal frame error: %v", err)
			_ = win.Close()
		}
	})

	log.Printf("[Swarm] starting with %d objects", fr.Pool().Count())
	win.ProcessMessages()
}
