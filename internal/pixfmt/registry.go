package pixfmt

import "fmt"

// Registry of well-known native encodings, compiled once at package
// init and read-only afterwards. Shared process-wide without locking.
var registry = map[string]*Converter{}

// knownSpecs maps format names to their mask layout. Names follow the
// channel order within the 32-bit pixel word, most significant first.
var knownSpecs = map[string]Spec{
	"ARGB8888": {AlphaMask: 0xFF000000, RedMask: 0x00FF0000, GreenMask: 0x0000FF00, BlueMask: 0x000000FF},
	"ARGB8888P": {AlphaMask: 0xFF000000, RedMask: 0x00FF0000, GreenMask: 0x0000FF00, BlueMask: 0x000000FF,
		Premultiplied: true},
	"XRGB8888": {RedMask: 0x00FF0000, GreenMask: 0x0000FF00, BlueMask: 0x000000FF},
	"ABGR8888": {AlphaMask: 0xFF000000, BlueMask: 0x00FF0000, GreenMask: 0x0000FF00, RedMask: 0x000000FF},
	"RGBA8888": {RedMask: 0xFF000000, GreenMask: 0x00FF0000, BlueMask: 0x0000FF00, AlphaMask: 0x000000FF},
	"BGRA8888": {BlueMask: 0xFF000000, GreenMask: 0x00FF0000, RedMask: 0x0000FF00, AlphaMask: 0x000000FF},
	"RGB888":   {RedMask: 0x00FF0000, GreenMask: 0x0000FF00, BlueMask: 0x000000FF},
	"RGB565":   {RedMask: 0xF800, GreenMask: 0x07E0, BlueMask: 0x001F},
	"ARGB1555": {AlphaMask: 0x8000, RedMask: 0x7C00, GreenMask: 0x03E0, BlueMask: 0x001F},
	"RGB332":   {RedMask: 0xE0, GreenMask: 0x1C, BlueMask: 0x03},
}

func init() {
	for name, spec := range knownSpecs {
		conv, err := NewConverter(spec)
		if err != nil {
			panic(fmt.Sprintf("pixfmt: bad builtin spec %s: %v", name, err))
		}
		registry[name] = conv
	}
}

// Lookup returns the converter for a registered format name.
// Unknown names fail with ErrUnsupportedFormat. Callers resolve their
// converter once, at image construction, and reuse it for every pixel.
func Lookup(name string) (*Converter, error) {
	conv, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
	return conv, nil
}

// Names returns the registered format names, in unspecified order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
