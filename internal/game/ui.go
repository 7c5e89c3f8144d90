package game

import (
	"strings"

	"github.com/go-gl/glfw/v3.3/glfw"

	"cubestorm/internal/sim"
	"cubestorm/internal/view"
)

// titleHUD shows the status lines in the window title. SetTitle is a
// round trip to the window system, so it only fires on change.
type titleHUD struct {
	window *glfw.Window
	last   string
}

func newTitleHUD(window *glfw.Window) *titleHUD {
	return &titleHUD{window: window}
}

func (h *titleHUD) Update(c sim.Counters) {
	text := TitleText(c)
	if text == h.last {
		return
	}
	h.last = text
	h.window.SetTitle(text)
}

// TitleText joins the status lines behind the window name.
func TitleText(c sim.Counters) string {
	return WindowTitle + " | " + strings.Join(view.StatusLines(c), " | ")
}
