package primitive

import (
	"image/color"
	"net/url"
	"strconv"
	"strings"
)

// DefaultString is the fixed text used by the default strategy.
const DefaultString = "Hello World"

// DefaultURL is the fixed locator used by the default strategy.
const DefaultURL = "https://example.com"

// DefaultUUID is the fixed identifier used by the default strategy.
const DefaultUUID = "123e4567-e89b-42d3-a456-426614174000"

// Strings is the pool random text is drawn from.
var Strings = []string{
	"alpha", "bravo", "charlie", "delta", "echo", "foxtrot", "golf", "hotel", "india", "juliet",
	"kilo", "lima", "mike", "november", "oscar", "papa", "quebec", "romeo", "sierra", "tango",
	"uniform", "victor", "whiskey", "xray", "yankee", "zulu", "apple", "banana", "cherry", "grape",
	"lemon", "mango", "orange", "peach", "pear", "plum", "berry", "melon", "kiwi", "lime",
	"amber", "azure", "coral", "ivory", "jade", "olive", "ruby", "silver", "teal", "violet",
	"anchor", "bridge", "canyon", "desert", "forest", "glacier", "harbor", "island", "jungle", "lagoon",
	"meadow", "mountain", "ocean", "prairie", "river", "savanna", "summit", "tundra", "valley", "volcano",
	"falcon", "badger", "beaver", "otter", "panda", "tiger", "walrus", "zebra", "koala", "lynx",
	"quartz", "cobalt", "nickel", "copper", "bronze", "carbon", "helium", "neon", "argon", "radon",
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit", "sed", "tempor",
}

// URLs is the pool random locators are drawn from.
var URLs = []string{
	"https://example.com",
	"https://example.org",
	"https://example.net",
	"https://example.com/index.html",
	"https://example.com/users/42",
	"https://example.com/search?q=mock",
	"https://api.example.com/v1/items",
	"https://cdn.example.com/assets/logo.png",
	"https://docs.example.org/guide",
	"https://blog.example.net/posts/hello-world",
	"https://shop.example.com/cart",
	"https://static.example.org/style.css",
	"https://example.com:8443/secure",
	"https://auth.example.com/login",
	"https://example.org/about#team",
	"https://files.example.net/report.pdf",
	"https://img.example.com/photos/1.jpg",
	"https://status.example.org/health",
	"https://news.example.net/today",
	"https://example.com/a/b/c?x=1&y=2",
}

// NamedColor is one entry of the color pool.
type NamedColor struct {
	Name string
	RGBA color.RGBA
}

// Colors is the pool random colors are drawn from.
var Colors = []NamedColor{
	{"black", color.RGBA{A: 255}},
	{"white", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
	{"red", color.RGBA{R: 255, A: 255}},
	{"green", color.RGBA{G: 128, A: 255}},
	{"blue", color.RGBA{B: 255, A: 255}},
	{"yellow", color.RGBA{R: 255, G: 255, A: 255}},
	{"cyan", color.RGBA{G: 255, B: 255, A: 255}},
	{"magenta", color.RGBA{R: 255, B: 255, A: 255}},
	{"orange", color.RGBA{R: 255, G: 165, A: 255}},
	{"purple", color.RGBA{R: 128, B: 128, A: 255}},
	{"gray", color.RGBA{R: 128, G: 128, B: 128, A: 255}},
	{"brown", color.RGBA{R: 165, G: 42, B: 42, A: 255}},
	{"pink", color.RGBA{R: 255, G: 192, B: 203, A: 255}},
	{"transparent", color.RGBA{}},
}

// colorByName resolves a pool color name or a "#rrggbb" / "#rrggbbaa" hex value.
func colorByName(name string) (color.RGBA, bool) {
	name = strings.ToLower(strings.TrimSpace(name))

	for _, c := range Colors {
		if c.Name == name {
			return c.RGBA, true
		}
	}

	hex, ok := strings.CutPrefix(name, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return color.RGBA{}, false
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}

	if len(hex) == 6 {
		v = v<<8 | 0xff
	}

	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(raw)

	return err == nil && u.IsAbs() && u.Host != ""
}
