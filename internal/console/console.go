package console

import (
	"strings"
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"rain-scene/internal/commands"
	"rain-scene/internal/logger"
)

const (
	BarHeight = 32
	prompt    = "> "
	fontSize  = 16
	padding   = 8
	// Log lines drawn above the input bar while the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineChars     = 120
)

var (
	barColor  = rl.NewColor(40, 40, 40, 230)
	edgeColor = rl.NewColor(80, 80, 80, 255)
	logColor  = rl.NewColor(24, 24, 24, 200)
)

// Console is the input bar at the bottom of the window, shown and hidden with ESC. While it
// is open it owns the keyboard and scene controls are suspended. Lines starting with "cmd "
// run through the command registry; "help" lists the commands.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed console that logs to log and runs commands from reg.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keys.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles ESC, typing, backspace and enter. Call once per frame before scene controls.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
		c.inputBuf = ""
		// Drain characters typed while opening so they don't land in the buffer.
		for rl.GetCharPressed() != 0 {
		}
		return
	}
	if !c.open {
		return
	}
	for {
		ch := rl.GetCharPressed()
		if ch == 0 {
			break
		}
		c.inputBuf += string(rune(ch))
	}
	if (rl.IsKeyPressed(rl.KeyBackspace) || rl.IsKeyPressedRepeat(rl.KeyBackspace)) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.inputBuf = ""
		c.Submit(line)
	}
}

// Submit runs one console line as if it had been typed.
func (c *Console) Submit(line string) {
	c.log.Log(prompt + line)
	if strings.TrimSpace(line) == "help" {
		for _, name := range c.reg.Names() {
			c.log.Log("cmd " + c.reg.Usage(name))
		}
		return
	}
	args, isCmd := commands.Parse(line)
	if !isCmd {
		c.log.Log(`unknown input; type "help" for commands`)
		return
	}
	if err := c.reg.Execute(args); err != nil {
		c.log.Log(err.Error())
	}
}

// Draw renders the bar and recent log lines when open. Call after the 3D scene.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - BarHeight

	logHeight := int32(maxLinesOnScreen * lineHeight)
	logY := barY - logHeight
	if logY < 0 {
		logHeight = barY
		logY = 0
	}
	if logHeight > 0 {
		rl.DrawRectangle(0, logY, screenW, logHeight, logColor)
	}
	for i, line := range c.log.Tail(maxLinesOnScreen, maxLineChars) {
		y := logY + int32(i)*lineHeight + padding/2
		rl.DrawText(line, padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, edgeColor)
	rl.DrawText(prompt+c.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
