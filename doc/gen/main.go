// Command gen renders text samples off-screen, captures the pixels and
// saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/thin"
	"github.com/go-theft-auto/thin/backend/opengl"
	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/input"
	"github.com/go-theft-auto/thin/text"
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

// screenshot defines a single text screenshot to capture.
type screenshot struct {
	name   string  // filename without extension
	width  int     // image width
	height int     // image height
	scale  float32 // font rasterization scale
	size   float32 // em height in clip units
	text   func(f *text.Font, facade gfx.Facade) (string, error)
}

func literal(s string) func(*text.Font, gfx.Facade) (string, error) {
	return func(*text.Font, gfx.Facade) (string, error) { return s, nil }
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	font, err := text.Parse(goregular.TTF, text.Settings{})
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	attrs := thin.DefaultWindowAttributes()
	attrs.Title = "screenshot-gen"
	attrs.Visible = false

	shots := buildScreenshots()
	var genErr error
	err = thin.NewBuilder(input.New[int]()).
		WithWindowAttributes(attrs).
		WithSetup(func(display gfx.Display, _ thin.Window, el thin.EventLoop) {
			defer el.Exit()
			for _, s := range shots {
				if err := capture(display, font, s, outDir); err != nil {
					genErr = fmt.Errorf("capture %s: %w", s.name, err)
					return
				}
				fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
			}
		}).
		Build(opengl.NewEventLoop(opengl.WithVSync(false)))
	if err != nil {
		return err
	}
	if genErr != nil {
		return genErr
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(display gfx.Display, font *text.Font, s screenshot, outDir string) error {
	gld, ok := display.(*opengl.Display)
	if !ok {
		return errors.New("needs the opengl display")
	}

	// Fresh glyphs per screenshot so the scale is honoured.
	font.ClearLoaded()
	font.Resize(s.scale)

	colour, err := gfx.NewResizableTexture(display, s.width, s.height)
	if err != nil {
		return err
	}
	defer colour.Delete()
	fb, err := gld.NewFramebuffer(colour.Texture(), nil)
	if err != nil {
		return err
	}
	defer fb.Delete()

	r, err := text.NewRenderer(display)
	if err != nil {
		return err
	}
	defer r.Delete()

	msg, err := s.text(font, display)
	if err != nil {
		return err
	}

	fb.Clear(0.12, 0.12, 0.14, 1)
	view := gfx.ViewMatrix2D(s.width, s.height)
	aspect := float32(s.width) / float32(s.height)
	model := mgl32.Translate3D(-aspect+0.05, 0.95, 0).Mul4(mgl32.Scale3D(s.size, s.size, 1))
	if err := r.Draw(msg, mgl32.Vec3{0.95, 0.9, 0.6}, fb, model, view, mgl32.Ident4(), font); err != nil {
		return err
	}

	// Read pixels
	pixels := fb.ReadPixels()

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all text screenshots to generate.
func buildScreenshots() []screenshot {
	return []screenshot{
		{
			name: "text", width: 400, height: 120, scale: 40, size: 0.25,
			text: literal("The quick brown fox\njumps over the lazy dog."),
		},
		{
			name: "wrapped", width: 400, height: 240, scale: 40, size: 0.16,
			text: func(f *text.Font, facade gfx.Facade) (string, error) {
				return f.WrapText("Wrapped text breaks between words once a line grows past the wrap width.", 12, facade)
			},
		},
		{
			name: "tabs", width: 400, height: 160, scale: 40, size: 0.2,
			text: func(f *text.Font, facade gfx.Facade) (string, error) {
				return f.FormatText("key\tvalue\nname\tthin", 0, 4, facade)
			},
		},
		{
			name: "replacement", width: 400, height: 100, scale: 40, size: 0.3,
			text: literal("missing: 世界"),
		},
		{
			name: "small-scale", width: 400, height: 100, scale: 10, size: 0.3,
			text: literal("Rasterized at 10px"),
		},
	}
}
