// Command gen renders every built-in layout preset with sample windows,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/editorui"
	"github.com/go-theft-auto/editorui/backend/opengl"
)

const (
	width  = 960
	height = 540
	frames = 2
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(width, height, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(width, height)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	presetDir, err := os.MkdirTemp("", "editorui-gen")
	if err != nil {
		return err
	}
	defer os.RemoveAll(presetDir)

	lister, err := newEditor(presetDir)
	if err != nil {
		return err
	}
	presets := lister.Layout.Presets()
	lister.Close()

	n := 0
	for _, p := range presets {
		if !p.BuiltIn {
			continue
		}
		name := fileName(p.Name)
		if err := capture(renderer, presetDir, p.Name, filepath.Join(outDir, name)); err != nil {
			return fmt.Errorf("capture %s: %w", p.Name, err)
		}
		fmt.Printf("  %s (%dx%d)\n", name, width, height)
		n++
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", n, outDir)
	return nil
}

// newEditor returns an editor with the content windows the built-in presets dock.
func newEditor(presetDir string) (*editorui.Editor, error) {
	cfg := editorui.DefaultConfig()
	cfg.Layout.PresetDir = presetDir
	ed, err := editorui.NewEditor(cfg)
	if err != nil {
		return nil, err
	}
	for _, name := range []string{"SceneViewWindow", "PropertyGridWindow", "SceneViewWindow1", "SceneViewWindow2"} {
		ed.Windows.CreateWindow(name, strings.TrimSuffix(name, "Window"), editorui.Rect{W: 320, H: 240})
	}
	return ed, nil
}

func capture(renderer *opengl.Renderer, presetDir, preset, path string) error {
	// Fresh editor per screenshot to avoid state leaking between captures.
	ed, err := newEditor(presetDir)
	if err != nil {
		return err
	}
	defer ed.Close()
	if !ed.Layout.LoadPreset(preset) {
		return fmt.Errorf("preset %q did not load", preset)
	}
	ed.AddPanel("PropertyGridWindow", samplePanel())
	ed.Toasts.Toasts = nil

	renderer.Resize(width, height)
	viewport := editorui.Rect{W: width, H: height}
	for range frames {
		gl.Viewport(0, 0, width, height)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		ed.Frame(nil, viewport, time.Second/60)
		dl := editorui.AcquireDrawList()
		ed.Render(dl)
		err := renderer.Render(dl)
		editorui.ReleaseDrawList(dl)
		if err != nil {
			return err
		}
	}

	// Read pixels
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, width, height, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < height/2; y++ {
		top := y * rowLen
		bot := (height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	copy(img.Pix, pixels)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// samplePanel is a small property grid so the screenshots show content.
func samplePanel() *editorui.PropertyPanel {
	p := editorui.NewPropertyPanel("Inspector")
	p.RegisterProperty("name", editorui.PropertyMetadata{DisplayName: "Name", Category: "General", DefaultValue: editorui.StringValue("Camera")})
	p.RegisterProperty("enabled", editorui.PropertyMetadata{DisplayName: "Enabled", Category: "General", DefaultValue: editorui.BoolValue(true)})
	p.RegisterProperty("fov", editorui.PropertyMetadata{DisplayName: "Field of View", Category: "Lens", DefaultValue: editorui.FloatValue(60), Units: "deg"})
	p.SetTarget(editorui.NewMapTarget(map[string]editorui.PropertyValue{
		"name":    editorui.StringValue("Camera"),
		"enabled": editorui.BoolValue(true),
		"fov":     editorui.FloatValue(60),
	}))
	return p
}

// fileName turns a preset name such as "Dual View" into dual_view.jpg.
func fileName(preset string) string {
	return strings.ToLower(strings.ReplaceAll(preset, " ", "_")) + ".jpg"
}
