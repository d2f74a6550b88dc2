package core

import "strings"

// Key is a frontend-neutral key name
// Letters and digits use their lowercase rune ("w", "7"), named keys use lowercase names ("up", "down", "space")
type Key string

// NormalizeKey lowercases and trims a configured key name
func NormalizeKey(name string) Key {
	return Key(strings.ToLower(strings.TrimSpace(name)))
}
