// Example opens a window, draws text that moves with the arrow keys, WASD or
// a gamepad stick, and post-processes the frame with FXAA. In 3D mode the
// text spins in perspective and the mouse or right stick turns the camera.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//	go run ./example/ -config example/thin.toml
//
// Keys: Escape quits, +/- resize the font, F toggles FXAA, V toggles 3D,
// C captures the mouse, F5 simulates a suspend and resume. Typed characters
// are appended to the text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/chewxy/math32"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-theft-auto/thin"
	"github.com/go-theft-auto/thin/backend/opengl"
	"github.com/go-theft-auto/thin/event"
	"github.com/go-theft-auto/thin/gfx"
	"github.com/go-theft-auto/thin/input"
	"github.com/go-theft-auto/thin/text"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

type action int

const (
	actQuit action = iota
	actLeft
	actRight
	actUp
	actDown
	actGrow
	actShrink
	actFXAA
	actSuspend
	actErase
	actView
	actCapture
	actLookLeft
	actLookRight
	actLookUp
	actLookDown
)

const (
	speed     = 0.02
	textScale = 0.08
	wrapWidth = 18

	spin      = 0.01 // radians per update
	lookSpeed = 0.03
	fovy      = math32.Pi / 4
)

func main() {
	configPath := flag.String("config", "", "optional TOML config")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := thin.Config{FPS: 60}
	if configPath != "" {
		var err error
		if cfg, err = thin.LoadConfig(configPath); err != nil {
			return err
		}
	}
	thin.SetVerbose(cfg.Verbose)

	attrs, err := cfg.WindowAttributes()
	if err != nil {
		return err
	}
	if configPath == "" {
		attrs.Title = "thin example"
	}
	settings := cfg.Settings()
	if cfg.Gamepads || configPath == "" {
		settings.UseGamepads(opengl.NewGamepads(cfg.GamepadMappings))
	}

	font, err := text.Parse(goregular.TTF, text.Settings{})
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	in := input.New(
		input.Bind(actQuit, input.Key(event.KeyEscape), input.GamepadButton(event.GamepadStart)),
		input.Bind(actLeft, input.Key(event.KeyLeft), input.Key(event.KeyA),
			input.GamepadAxis(event.LeftStickX, input.Neg), input.GamepadButton(event.GamepadDPadLeft)),
		input.Bind(actRight, input.Key(event.KeyRight), input.Key(event.KeyD),
			input.GamepadAxis(event.LeftStickX, input.Pos), input.GamepadButton(event.GamepadDPadRight)),
		input.Bind(actUp, input.Key(event.KeyUp), input.Key(event.KeyW),
			input.GamepadAxis(event.LeftStickY, input.Neg), input.GamepadButton(event.GamepadDPadUp)),
		input.Bind(actDown, input.Key(event.KeyDown), input.Key(event.KeyS),
			input.GamepadAxis(event.LeftStickY, input.Pos), input.GamepadButton(event.GamepadDPadDown)),
		input.Bind(actGrow, input.Key(event.KeyEqual), input.GamepadButton(event.GamepadRightBumper)),
		input.Bind(actShrink, input.Key(event.KeyMinus), input.GamepadButton(event.GamepadLeftBumper)),
		input.Bind(actFXAA, input.Key(event.KeyF), input.GamepadButton(event.GamepadNorth)),
		input.Bind(actSuspend, input.Key(event.KeyF5)),
		input.Bind(actErase, input.Key(event.KeyBackspace)),
		input.Bind(actView, input.Key(event.KeyV), input.GamepadButton(event.GamepadWest)),
		input.Bind(actCapture, input.Key(event.KeyC)),
		input.Bind(actLookLeft, input.MouseMoveX(input.Neg), input.GamepadAxis(event.RightStickX, input.Neg)),
		input.Bind(actLookRight, input.MouseMoveX(input.Pos), input.GamepadAxis(event.RightStickX, input.Pos)),
		input.Bind(actLookUp, input.MouseMoveY(input.Neg), input.GamepadAxis(event.RightStickY, input.Neg)),
		input.Bind(actLookDown, input.MouseMoveY(input.Pos), input.GamepadAxis(event.RightStickY, input.Pos)),
	)

	loop := opengl.NewEventLoop()
	d := &demo{loop: loop, font: font, fxaa: true, typed: []rune("Hello from thin. ")}
	err = thin.NewBuilder(in).
		WithSettings(settings).
		WithWindowAttributes(attrs).
		WithApplication(d).
		Build(loop)
	if err != nil {
		return err
	}
	return d.err
}

// demo holds the GPU resources setup creates. They belong to one window
// and are rebuilt after a resume.
type demo struct {
	loop *opengl.EventLoop
	font *text.Font
	err  error

	text   *text.Renderer
	screen gfx.Mesh
	post   gfx.Program
	colour *gfx.ResizableTexture
	depth  *gfx.ResizableTexture
	fb     *opengl.Framebuffer
	fbW    int
	fbH    int

	pos   mgl32.Vec2
	fxaa  bool
	typed []rune

	// 3D mode.
	threeD   bool
	captured bool
	angle    float32
	yaw      float32
	pitch    float32
}

func (d *demo) Setup(display gfx.Display, window thin.Window, el thin.EventLoop) {
	if err := d.setup(display, window); err != nil {
		d.err = err
		el.Exit()
	}
}

func (d *demo) setup(display gfx.Display, window thin.Window) error {
	// A new window starts with a free cursor.
	d.captured = false
	if w, ok := window.(*opengl.Window); ok {
		if glw := w.GLFW(); glw != nil {
			glw.SetSizeLimits(320, 200, glfw.DontCare, glfw.DontCare)
		}
	}

	// Textures from the previous window died with its context.
	d.font.ClearLoaded()
	d.fb = nil

	var err error
	if d.text, err = text.NewRenderer(display); err != nil {
		return err
	}
	if d.screen, err = display.NewMesh(gfx.ScreenQuad()); err != nil {
		return fmt.Errorf("screen quad: %w", err)
	}
	if d.post, err = gfx.FXAAProgram(display); err != nil {
		return fmt.Errorf("fxaa: %w", err)
	}
	w, h := display.FramebufferSize()
	if d.colour, err = gfx.NewResizableTexture(display, w, h); err != nil {
		return err
	}
	if d.depth, err = gfx.NewResizableDepthTexture(display, w, h); err != nil {
		return err
	}
	return nil
}

func (d *demo) Update(in *input.Map[action], _ gfx.Display, _ *thin.Settings, el thin.EventLoop, w thin.Window) {
	if in.Pressed(actQuit) {
		el.Exit()
		return
	}
	if in.Pressed(actSuspend) {
		d.loop.RequestSuspend()
	}
	if in.Pressed(actFXAA) {
		d.fxaa = !d.fxaa
	}
	if in.Pressed(actGrow) {
		d.font.Resize(d.font.Scale() * 1.25)
	}
	if in.Pressed(actShrink) {
		d.font.Resize(d.font.Scale() / 1.25)
	}
	if in.Pressed(actErase) && len(d.typed) > 0 {
		d.typed = d.typed[:len(d.typed)-1]
	}
	d.typed = append(d.typed, in.Text()...)

	if in.Pressed(actView) {
		d.threeD = !d.threeD
	}
	if in.Pressed(actCapture) {
		if gw, ok := w.(*opengl.Window); ok {
			d.captured = !d.captured
			gw.SetCursorCaptured(d.captured)
		}
	}

	dir := in.DirMaxLen1(actRight, actLeft, actUp, actDown)
	d.pos = d.pos.Add(dir.Mul(speed))
	if d.threeD {
		d.angle += spin
		d.yaw += in.Axis(actLookRight, actLookLeft) * lookSpeed
		d.pitch = mgl32.Clamp(d.pitch+in.Axis(actLookDown, actLookUp)*lookSpeed, -1.2, 1.2)
	}
	w.RequestRedraw()
}

func (d *demo) Draw(_ *input.Map[action], display gfx.Display, _ *thin.Settings, el thin.EventLoop, _ thin.Window) {
	if err := d.draw(display); err != nil {
		d.err = err
		el.Exit()
	}
}

func (d *demo) draw(display gfx.Display) error {
	msg, err := d.font.WrapText(string(d.typed), wrapWidth, display)
	if err != nil {
		return err
	}
	w, h := display.FramebufferSize()
	if w == 0 || h == 0 {
		// Minimised.
		return nil
	}
	view, camera, model := d.matrices(w, h)
	colour := mgl32.Vec3{0.95, 0.9, 0.6}

	frame, err := display.Draw()
	if err != nil {
		return err
	}

	if !d.fxaa {
		frame.ClearColorAndDepth(0.12, 0.12, 0.14, 1, 1)
		if err := d.text.Draw(msg, colour, frame, model, view, camera, d.font); err != nil {
			frame.Finish()
			return err
		}
		return frame.Finish()
	}

	fb, err := d.framebuffer(display)
	if err != nil {
		frame.Finish()
		return err
	}
	fb.ClearColorAndDepth(0.12, 0.12, 0.14, 1, 1)
	if err := d.text.Draw(msg, colour, fb, model, view, camera, d.font); err != nil {
		frame.Finish()
		return err
	}
	frame.Clear(0, 0, 0, 1)
	if err := frame.Draw(d.screen, d.post, gfx.FXAAUniforms(d.colour.Texture()), gfx.DrawParameters{}); err != nil {
		frame.Finish()
		return err
	}
	return frame.Finish()
}

// matrices returns the view, camera and model matrices for the text. In 2D
// the text sits at the top left; in 3D it spins about its own vertical
// axis in front of a camera that looks around from the origin.
func (d *demo) matrices(w, h int) (view, camera, model mgl32.Mat4) {
	if !d.threeD {
		view = gfx.ViewMatrix2D(w, h)
		model = mgl32.Translate3D(d.pos.X()-0.9, d.pos.Y()+0.9, 0).
			Mul4(mgl32.Scale3D(textScale, textScale, 1))
		return view, mgl32.Ident4(), model
	}
	view = gfx.ViewMatrix3D(w, h, fovy, 0.1, 100)
	forward := mgl32.Vec3{
		math32.Sin(d.yaw) * math32.Cos(d.pitch),
		-math32.Sin(d.pitch),
		-math32.Cos(d.yaw) * math32.Cos(d.pitch),
	}
	camera = mgl32.LookAtV(mgl32.Vec3{}, forward, mgl32.Vec3{0, 1, 0})
	model = mgl32.Translate3D(d.pos.X(), d.pos.Y(), -3).
		Mul4(mgl32.HomogRotate3DY(d.angle)).
		Mul4(mgl32.Translate3D(-1, 0.5, 0)).
		Mul4(mgl32.Scale3D(2*textScale, 2*textScale, 1))
	return view, camera, model
}

// framebuffer keeps the off-screen targets the size of the display.
func (d *demo) framebuffer(display gfx.Display) (*opengl.Framebuffer, error) {
	if err := d.colour.ResizeToDisplay(display); err != nil {
		return nil, err
	}
	if err := d.depth.ResizeToDisplay(display); err != nil {
		return nil, err
	}
	w, h := d.colour.Size()
	if d.fb != nil && d.fbW == w && d.fbH == h {
		return d.fb, nil
	}
	gld, ok := display.(*opengl.Display)
	if !ok {
		return nil, errors.New("fxaa needs the opengl display")
	}
	if d.fb != nil {
		d.fb.Delete()
	}
	fb, err := gld.NewFramebuffer(d.colour.Texture(), d.depth.Texture())
	if err != nil {
		return nil, err
	}
	d.fb, d.fbW, d.fbH = fb, w, h
	return fb, nil
}

func (d *demo) Event(ev event.Event, _ thin.EventLoop, _ thin.Window, _ gfx.Display) {
	switch ev := ev.(type) {
	case event.GamepadConnection:
		if ev.Connected {
			d.typed = append(d.typed, []rune(fmt.Sprintf(" [%s]", ev.Name))...)
		}
	case event.Suspended:
		d.text, d.screen, d.post, d.fb = nil, nil, nil, nil
	}
}
