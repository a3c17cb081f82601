// Package menu draws the small interactive prompts around a game: a list
// to pick one entry from, a list of toggles and a numeric input.
package menu

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

var (
	// ErrInterrupted is returned when the player backs out with Esc, Ctrl-C
	// or the process receives an interrupt.
	ErrInterrupted = errors.New("menu interrupted")
	ErrClosed      = errors.New("screen closed")
)

type EventSource interface {
	PollEvent() tcell.Event
}

var (
	styleText     = tcell.StyleDefault
	styleActive   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleChecked  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleInactive = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError    = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

const (
	prefixActive    = "❯ "
	prefixInactive  = "  "
	prefixChecked   = "✓ "
	prefixUnchecked = "☐ "
)

// Menu draws prompts starting at a given row of the screen.
type Menu struct {
	screen  tcell.Screen
	events  EventSource
	buttons tcell.ButtonMask
}

func New(screen tcell.Screen, events EventSource) *Menu {
	return &Menu{screen: screen, events: events}
}

// line writes text at (x, y) and blanks the rest of the row.
func (m *Menu) line(x, y int, text string, style tcell.Style) {
	w, h := m.screen.Size()
	if y < 0 || y >= h {
		return
	}
	for i := range x {
		m.screen.SetContent(i, y, ' ', nil, styleText)
	}
	for _, r := range text {
		if x >= w {
			break
		}
		m.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		m.screen.SetContent(x, y, ' ', nil, styleText)
	}
}

// next waits for an event, turning the ways out of a prompt into errors.
func (m *Menu) next() (tcell.Event, error) {
	ev := m.events.PollEvent()
	switch ev := ev.(type) {
	case nil:
		return nil, ErrClosed
	case *tcell.EventInterrupt:
		return nil, ErrInterrupted
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return nil, ErrInterrupted
		}
	}
	return ev, nil
}

// pressed reports whether ev is the left button going down. Motion with
// the button already held is not a press.
func (m *Menu) pressed(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	down := buttons &^ m.buttons
	m.buttons = buttons
	return down&tcell.Button1 != 0
}

// Select lets the player pick one of items. It is drawn from row y, with
// the prompt on its own row when not empty.
func (m *Menu) Select(y int, prompt string, items []string, initial int) (int, error) {
	if len(items) == 0 {
		return 0, errors.New("select: no items")
	}
	if prompt != "" {
		m.line(0, y, prompt, styleText)
		y++
	}
	cur := min(max(initial, 0), len(items)-1)

	for {
		for i, item := range items {
			if i == cur {
				m.line(0, y+i, prefixActive+item, styleActive)
			} else {
				m.line(0, y+i, prefixInactive+item, styleText)
			}
		}
		m.screen.Show()

		ev, err := m.next()
		if err != nil {
			return 0, err
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return cur, nil
			case tcell.KeyUp, tcell.KeyBacktab:
				cur = (cur + len(items) - 1) % len(items)
			case tcell.KeyDown, tcell.KeyTab:
				cur = (cur + 1) % len(items)
			case tcell.KeyRune:
				switch unicode.ToLower(ev.Rune()) {
				case ' ':
					return cur, nil
				case 'k', 'w':
					cur = (cur + len(items) - 1) % len(items)
				case 'j', 's':
					cur = (cur + 1) % len(items)
				}
			}
		case *tcell.EventMouse:
			_, my := ev.Position()
			press := m.pressed(ev)
			if i := my - y; i >= 0 && i < len(items) {
				cur = i
				if press {
					return cur, nil
				}
			}
		}
	}
}

// Toggle lets the player switch any of items on or off and confirm with
// Enter. The returned slice is parallel to items.
func (m *Menu) Toggle(y int, items []string, defaults []bool) ([]bool, error) {
	if len(items) == 0 {
		return nil, errors.New("toggle: no items")
	}
	on := make([]bool, len(items))
	copy(on, defaults)
	cur := 0

	for {
		for i, item := range items {
			prefix, style := prefixUnchecked, styleInactive
			if on[i] {
				prefix, style = prefixChecked, styleChecked
			}
			marker := prefixInactive
			if i == cur {
				marker = prefixActive
			}
			m.line(0, y+i, marker+prefix+item, style)
		}
		m.screen.Show()

		ev, err := m.next()
		if err != nil {
			return nil, err
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEnter:
				return on, nil
			case tcell.KeyUp, tcell.KeyBacktab:
				cur = (cur + len(items) - 1) % len(items)
			case tcell.KeyDown, tcell.KeyTab:
				cur = (cur + 1) % len(items)
			case tcell.KeyRune:
				switch unicode.ToLower(ev.Rune()) {
				case ' ':
					on[cur] = !on[cur]
				case 'k', 'w':
					cur = (cur + len(items) - 1) % len(items)
				case 'j', 's':
					cur = (cur + 1) % len(items)
				}
			}
		case *tcell.EventMouse:
			_, my := ev.Position()
			if i := my - y; m.pressed(ev) && i >= 0 && i < len(items) {
				cur = i
				on[i] = !on[i]
			}
		}
	}
}

// Number reads a non-negative integer. validate may reject a value with a
// message that is shown under the input until the next attempt.
func (m *Menu) Number(y int, prompt string, validate func(int) error) (int, error) {
	var (
		digits  []rune
		problem string
	)
	for {
		m.line(0, y, fmt.Sprintf("%s: %s", prompt, string(digits)), styleText)
		m.line(0, y+1, problem, styleError)
		m.screen.ShowCursor(len([]rune(prompt))+2+len(digits), y)
		m.screen.Show()

		ev, err := m.next()
		if err != nil {
			m.screen.HideCursor()
			return 0, err
		}
		key, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		switch key.Key() {
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			if len(digits) > 0 {
				digits = digits[:len(digits)-1]
			}
		case tcell.KeyEnter:
			if len(digits) == 0 {
				continue
			}
			n, err := strconv.Atoi(string(digits))
			if err != nil {
				problem = "Not a number"
				continue
			}
			if validate != nil {
				if err := validate(n); err != nil {
					problem = err.Error()
					continue
				}
			}
			m.screen.HideCursor()
			m.line(0, y+1, "", styleText)
			return n, nil
		case tcell.KeyRune:
			if r := key.Rune(); r >= '0' && r <= '9' && len(digits) < 9 {
				digits = append(digits, r)
				problem = ""
			}
		}
	}
}
