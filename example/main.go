// Example opens an editor shell with the Default layout preset: a scene view
// docked beside a property grid bound to a sample object.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Drag a tab or title bar onto another window to dock it; drag a splitter to
// resize. Edit properties in the grid; Ctrl+Z and Ctrl+Y undo and redo.
// Settings are read from editor.yaml in the working directory if present.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/go-theft-auto/editorui"
	"github.com/go-theft-auto/editorui/backend/opengl"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "editorui example"
	configPath   = "editor.yaml"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := editorui.LoadConfig(configPath)
	if err != nil {
		return err
	}
	ed, err := editorui.NewEditor(cfg)
	if err != nil {
		return err
	}
	defer ed.Close()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()
	input := opengl.NewGLFWInputAdapter(window)
	editorui.SetClipboardProvider(opengl.NewGLFWClipboard(window))

	setupWindows(ed)
	if !ed.Layout.LoadPreset("Default") {
		return fmt.Errorf("default layout preset failed to load")
	}
	ed.AddPanel("PropertyGridWindow", inspector())

	last := time.Now()
	for !window.ShouldClose() {
		input.Begin()
		glfw.PollEvents()
		in := input.Update()

		now := time.Now()
		dt := now.Sub(last)
		last = now

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		viewport := editorui.Rect{W: float32(w), H: float32(h)}
		ed.Snapper.SetScreenSize(viewport.Size())
		ed.Frame(in, viewport, dt)

		dl := editorui.AcquireDrawList()
		ed.Render(dl)
		err := renderer.Render(dl)
		editorui.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("gui render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}

// setupWindows registers the content windows the built-in presets dock.
// The presets' MainWindow entry is the OS window and is left unregistered.
func setupWindows(ed *editorui.Editor) {
	rect := editorui.Rect{X: 120, Y: 120, W: 400, H: 300}
	for _, w := range []struct{ name, title string }{
		{"SceneViewWindow", "Scene"},
		{"PropertyGridWindow", "Properties"},
		{"SceneViewWindow1", "Top"},
		{"SceneViewWindow2", "Bottom"},
	} {
		win := ed.Windows.CreateWindow(w.name, w.title, rect)
		if win != nil && w.name != "PropertyGridWindow" {
			win.Type = editorui.WindowTypeViewport
		}
		rect.X += 30
		rect.Y += 30
	}
}

// inspector builds a property panel over a sample scene object.
func inspector() *editorui.PropertyPanel {
	target := editorui.NewMapTarget(map[string]editorui.PropertyValue{
		"name":     editorui.StringValue("Camera"),
		"enabled":  editorui.BoolValue(true),
		"fov":      editorui.FloatValue(60),
		"layer":    editorui.IntValue(0),
		"position": editorui.Vec3Value(mgl32.Vec3{0, 2, -10}),
		"tags":     editorui.CollectionValue(editorui.StringValue("main")),
	})

	p := editorui.NewPropertyPanel("Inspector")
	p.RegisterProperty("name", editorui.PropertyMetadata{DisplayName: "Name", Category: "General", DefaultValue: editorui.StringValue("Camera")})
	p.RegisterProperty("enabled", editorui.PropertyMetadata{DisplayName: "Enabled", Category: "General", DefaultValue: editorui.BoolValue(true)})
	p.RegisterProperty("layer", editorui.PropertyMetadata{DisplayName: "Layer", Category: "General", DefaultValue: editorui.IntValue(0)})
	p.RegisterProperty("tags", editorui.PropertyMetadata{DisplayName: "Tags", Category: "General", DefaultValue: editorui.CollectionValue()})
	p.RegisterProperty("position", editorui.PropertyMetadata{DisplayName: "Position", Category: "Transform", DefaultValue: editorui.Vec3Value(mgl32.Vec3{}), Step: 0.5})
	p.RegisterProperty("fov", editorui.PropertyMetadata{
		DisplayName:  "Field of View",
		Category:     "Lens",
		DefaultValue: editorui.FloatValue(60),
		Units:        "deg",
		Step:         1,
		Presets: []editorui.PropertyPreset{
			{Name: "Narrow", Value: editorui.FloatValue(35)},
			{Name: "Wide", Value: editorui.FloatValue(90)},
		},
	})
	p.AddValidator("fov", editorui.NewRangeValidator(10, 170))
	p.AddValidator("layer", editorui.NewRangeValidator(0, 31))
	p.AddValidator("name", editorui.NewLengthValidator(1, 32))
	p.SetTarget(target)
	return p
}
