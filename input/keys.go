// Package input maps the framework's key and mouse button identifiers to the
// toolkit's scancodes and button masks. The tables here are fixed and need no
// platform, so they can be checked in isolation.
package input

import "fmt"

type Key int

const (
	KeyA Key = iota
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeyNum1
	KeyNum2
	KeyNum3
	KeyNum4
	KeyNum5
	KeyNum6
	KeyNum7
	KeyNum8
	KeyNum9
	KeyNum0
	KeyReturn
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEquals
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeyNonUSHash
	KeySemicolon
	KeyApostrophe
	KeyGrave
	KeyComma
	KeyPeriod
	KeySlash
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24
	KeyDelete
	KeyRight
	KeyLeft
	KeyDown
	KeyUp

	numKeys
)

type keyInfo struct {
	name     string
	scancode int // SDL_Scancode (USB HID usage id)
}

var keyTable = [numKeys]keyInfo{
	KeyA:            {"A", 4},
	KeyB:            {"B", 5},
	KeyC:            {"C", 6},
	KeyD:            {"D", 7},
	KeyE:            {"E", 8},
	KeyF:            {"F", 9},
	KeyG:            {"G", 10},
	KeyH:            {"H", 11},
	KeyI:            {"I", 12},
	KeyJ:            {"J", 13},
	KeyK:            {"K", 14},
	KeyL:            {"L", 15},
	KeyM:            {"M", 16},
	KeyN:            {"N", 17},
	KeyO:            {"O", 18},
	KeyP:            {"P", 19},
	KeyQ:            {"Q", 20},
	KeyR:            {"R", 21},
	KeyS:            {"S", 22},
	KeyT:            {"T", 23},
	KeyU:            {"U", 24},
	KeyV:            {"V", 25},
	KeyW:            {"W", 26},
	KeyX:            {"X", 27},
	KeyY:            {"Y", 28},
	KeyZ:            {"Z", 29},
	KeyNum1:         {"1", 30},
	KeyNum2:         {"2", 31},
	KeyNum3:         {"3", 32},
	KeyNum4:         {"4", 33},
	KeyNum5:         {"5", 34},
	KeyNum6:         {"6", 35},
	KeyNum7:         {"7", 36},
	KeyNum8:         {"8", 37},
	KeyNum9:         {"9", 38},
	KeyNum0:         {"0", 39},
	KeyReturn:       {"Return", 40},
	KeyEscape:       {"Escape", 41},
	KeyBackspace:    {"Backspace", 42},
	KeyTab:          {"Tab", 43},
	KeySpace:        {"Space", 44},
	KeyMinus:        {"Minus", 45},
	KeyEquals:       {"Equals", 46},
	KeyLeftBracket:  {"LeftBracket", 47},
	KeyRightBracket: {"RightBracket", 48},
	KeyBackslash:    {"Backslash", 49},
	KeyNonUSHash:    {"NonUSHash", 50},
	KeySemicolon:    {"Semicolon", 51},
	KeyApostrophe:   {"Apostrophe", 52},
	KeyGrave:        {"Grave", 53},
	KeyComma:        {"Comma", 54},
	KeyPeriod:       {"Period", 55},
	KeySlash:        {"Slash", 56},
	KeyCapsLock:     {"CapsLock", 57},
	KeyF1:           {"F1", 58},
	KeyF2:           {"F2", 59},
	KeyF3:           {"F3", 60},
	KeyF4:           {"F4", 61},
	KeyF5:           {"F5", 62},
	KeyF6:           {"F6", 63},
	KeyF7:           {"F7", 64},
	KeyF8:           {"F8", 65},
	KeyF9:           {"F9", 66},
	KeyF10:          {"F10", 67},
	KeyF11:          {"F11", 68},
	KeyF12:          {"F12", 69},
	KeyF13:          {"F13", 104},
	KeyF14:          {"F14", 105},
	KeyF15:          {"F15", 106},
	KeyF16:          {"F16", 107},
	KeyF17:          {"F17", 108},
	KeyF18:          {"F18", 109},
	KeyF19:          {"F19", 110},
	KeyF20:          {"F20", 111},
	KeyF21:          {"F21", 112},
	KeyF22:          {"F22", 113},
	KeyF23:          {"F23", 114},
	KeyF24:          {"F24", 115},
	KeyDelete:       {"Delete", 76},
	KeyRight:        {"Right", 79},
	KeyLeft:         {"Left", 80},
	KeyDown:         {"Down", 81},
	KeyUp:           {"Up", 82},
}

// Keys returns every defined key in declaration order.
func Keys() []Key {
	keys := make([]Key, numKeys)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}

func (k Key) Valid() bool {
	return k >= 0 && k < numKeys
}

// Scancode returns the toolkit scancode for k.
func (k Key) Scancode() (int, error) {
	if !k.Valid() {
		return 0, fmt.Errorf("invalid key: %d", int(k))
	}
	return keyTable[k].scancode, nil
}

func (k Key) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Key(%d)", int(k))
	}
	return keyTable[k].name
}
