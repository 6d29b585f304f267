package gfx

import "fmt"

// ResizableTexture lazily reallocates a texture whenever the requested size
// changes. It is typically resized to the display once per frame and used
// as an off-screen colour or depth target.
type ResizableTexture struct {
	format        TextureFormat
	width, height int
	texture       Texture
}

// NewResizableTexture allocates a colour (RGBA8) texture of the given size.
func NewResizableTexture(f Facade, width, height int) (*ResizableTexture, error) {
	return newResizable(f, FormatRGBA8, width, height)
}

// NewResizableDepthTexture allocates a depth texture of the given size.
func NewResizableDepthTexture(f Facade, width, height int) (*ResizableTexture, error) {
	return newResizable(f, FormatDepth24, width, height)
}

func newResizable(f Facade, format TextureFormat, width, height int) (*ResizableTexture, error) {
	t := &ResizableTexture{format: format}
	if err := t.Resize(f, width, height); err != nil {
		return nil, err
	}
	return t, nil
}

// Resize reallocates the texture if the size differs from the current one.
// On failure the old texture is kept.
func (t *ResizableTexture) Resize(f Facade, width, height int) error {
	if t.texture != nil && t.width == width && t.height == height {
		return nil
	}
	tex, err := f.NewTexture(TextureDesc{Width: width, Height: height, Format: t.format})
	if err != nil {
		return fmt.Errorf("resize texture to %dx%d: %w", width, height, err)
	}
	if t.texture != nil {
		t.texture.Delete()
	}
	t.texture = tex
	t.width, t.height = width, height
	return nil
}

// ResizeToDisplay resizes the texture to the display's framebuffer.
func (t *ResizableTexture) ResizeToDisplay(d Display) error {
	w, h := d.FramebufferSize()
	return t.Resize(d, w, h)
}

// Size returns the size of the current texture.
func (t *ResizableTexture) Size() (width, height int) { return t.width, t.height }

// Texture returns the current texture. It panics if no texture was ever
// allocated; use TryTexture to check first.
func (t *ResizableTexture) Texture() Texture {
	if t.texture == nil {
		panic("gfx: resizable texture was never allocated")
	}
	return t.texture
}

// TryTexture returns the current texture, or nil.
func (t *ResizableTexture) TryTexture() Texture { return t.texture }

// Delete releases the texture.
func (t *ResizableTexture) Delete() {
	if t.texture != nil {
		t.texture.Delete()
		t.texture = nil
	}
	t.width, t.height = 0, 0
}
