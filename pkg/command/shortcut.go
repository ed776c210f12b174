package command

import "strings"

// Shortcut is a keyboard binding: one key plus a modifier set. The key is
// stored in portable display form ("S", "F11", "Enter"); each toolkit backend
// converts it to its native representation.
type Shortcut struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
}

// Key aliases accepted by ParseShortcut, mapped to canonical display names.
var keyAliases = map[string]string{
	"esc":       "Esc",
	"escape":    "Esc",
	"enter":     "Enter",
	"return":    "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"del":       "Delete",
	"insert":    "Insert",
	"ins":       "Insert",
	"home":      "Home",
	"end":       "End",
	"pageup":    "PageUp",
	"pgup":      "PageUp",
	"pagedown":  "PageDown",
	"pgdn":      "PageDown",
	"up":        "Up",
	"down":      "Down",
	"left":      "Left",
	"right":     "Right",
	"space":     "Space",
}

// IsZero reports whether no key is bound.
func (s Shortcut) IsZero() bool {
	return s.Key == ""
}

// String renders the shortcut in the conventional "Ctrl+Shift+S" form, or ""
// when empty.
func (s Shortcut) String() string {
	if s.IsZero() {
		return ""
	}

	var b strings.Builder
	if s.Ctrl {
		b.WriteString("Ctrl+")
	}
	if s.Alt {
		b.WriteString("Alt+")
	}
	if s.Shift {
		b.WriteString("Shift+")
	}
	b.WriteString(s.Key)
	return b.String()
}

// ParseShortcut parses strings like "Ctrl+S", "ctrl+shift+n" or "F11"
// (case-insensitive). Unrecognized input yields the zero Shortcut.
func ParseShortcut(str string) Shortcut {
	var result Shortcut
	if str == "" {
		return result
	}

	parts := strings.Split(str, "+")
	for i, part := range parts {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "ctrl", "cmd":
			result.Ctrl = true
		case "alt":
			result.Alt = true
		case "shift":
			result.Shift = true
		default:
			if i != len(parts)-1 {
				continue // modifiers only before the final key
			}
			result.Key = canonicalKey(part)
		}
	}

	if result.Key == "" {
		return Shortcut{}
	}
	return result
}

func canonicalKey(part string) string {
	if alias, ok := keyAliases[part]; ok {
		return alias
	}
	// Function keys F1..F35 pass through with an uppercase F.
	if len(part) >= 2 && part[0] == 'f' {
		digits := part[1:]
		for _, r := range digits {
			if r < '0' || r > '9' {
				return ""
			}
		}
		return "F" + digits
	}
	// Single printable character.
	if len(part) == 1 {
		return strings.ToUpper(part)
	}
	return ""
}
