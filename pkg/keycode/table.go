package keycode

import "fmt"

// symbolLabels covers punctuation and shifted-symbol codes.
var symbolLabels = map[string]string{
	"KC_MINS": "-",
	"KC_EQL":  "=",
	"KC_LBRC": "[",
	"KC_RBRC": "]",
	"KC_BSLS": `\`,
	"KC_SCLN": ";",
	"KC_QUOT": "'",
	"KC_GRV":  "`",
	"KC_COMM": ",",
	"KC_DOT":  ".",
	"KC_SLSH": "/",
	"KC_TILD": "~",
	"KC_EXLM": "!",
	"KC_AT":   "@",
	"KC_HASH": "#",
	"KC_DLR":  "$",
	"KC_PERC": "%",
	"KC_CIRC": "^",
	"KC_AMPR": "&",
	"KC_ASTR": "*",
	"KC_LPRN": "(",
	"KC_RPRN": ")",
	"KC_UNDS": "_",
	"KC_PLUS": "+",
	"KC_LCBR": "{",
	"KC_RCBR": "}",
	"KC_PIPE": "|",
	"KC_COLN": ":",
	"KC_DQUO": `"`,
	"KC_LT":   "<",
	"KC_GT":   ">",
	"KC_QUES": "?",
}

// editingLabels covers whitespace, editing, modifier, and navigation keys.
var editingLabels = map[string]string{
	"KC_SPC":  "␣",
	"KC_ENT":  "↵",
	"KC_BSPC": "⌫",
	"KC_DEL":  "⌦",
	"KC_TAB":  "⇥",
	"KC_ESC":  "⎋",
	"KC_CAPS": "⇪",
	"KC_LSFT": "Shift",
	"KC_RSFT": "Shift",
	"KC_LCTL": "Ctrl",
	"KC_RCTL": "Ctrl",
	"KC_LALT": "Alt",
	"KC_RALT": "Alt",
	"KC_LGUI": "Win",
	"KC_RGUI": "Win",
	"KC_LEFT": "←",
	"KC_DOWN": "↓",
	"KC_UP":   "↑",
	"KC_RGHT": "→",
	"KC_HOME": "Home",
	"KC_END":  "End",
	"KC_PGUP": "PgUp",
	"KC_PGDN": "PgDn",
}

// mediaLabels covers audio/media and mouse emulation keys.
var mediaLabels = map[string]string{
	"KC_MUTE": "Mute",
	"KC_VOLD": "Vol-",
	"KC_VOLU": "Vol+",
	"KC_MPLY": "Play",
	"KC_MNXT": "Next",
	"KC_MPRV": "Prev",
	"KC_MS_U": "M↑",
	"KC_MS_D": "M↓",
	"KC_MS_L": "M←",
	"KC_MS_R": "M→",
	"KC_BTN1": "M1",
	"KC_BTN2": "M2",
	"KC_BTN3": "M3",
	"BL_STEP": "BLight",
}

// numpadLabels map to "Numpad <symbol>" hints.
var numpadLabels = map[string]string{
	"KC_P0":   "0",
	"KC_P1":   "1",
	"KC_P2":   "2",
	"KC_P3":   "3",
	"KC_P4":   "4",
	"KC_P5":   "5",
	"KC_P6":   "6",
	"KC_P7":   "7",
	"KC_P8":   "8",
	"KC_P9":   "9",
	"KC_PDOT": ".",
	"KC_PCMM": ",",
	"KC_PSLS": "/",
	"KC_PAST": "*",
	"KC_PMNS": "-",
	"KC_PPLS": "+",
	"KC_PEQL": "=",
	"KC_PENT": "↵",
}

// specialLegends carry descriptive hints alongside their labels.
var specialLegends = map[string]Legend{
	"KC_TRNS": {Label: "▽", Hint: "Transparent"},
	"QK_REP":  {Label: "↻", Hint: "Repeat"},
	"QK_BOOT": {Label: "BOOT", Hint: "Bootloader"},
	"QK_RBT":  {Label: "RST", Hint: "Reset"},
	"EE_CLR":  {Label: "CLR", Hint: "EEPROM Clear"},
	"DB_TOGG": {Label: "DBG", Hint: "Debug Toggle"},
	"SC_LSPO": {Label: "L(", Hint: "Space Cadet Left"},
	"SC_RSPC": {Label: "R)", Hint: "Space Cadet Right"},
}

// defaultLegends builds the exact-match table: letters, digits, and function
// keys are generated, the rest merge in from the literal maps above.
func defaultLegends() map[string]Legend {
	legends := make(map[string]Legend, 200)

	for r := 'A'; r <= 'Z'; r++ {
		legends["KC_"+string(r)] = Legend{Label: string(r)}
	}
	for r := '0'; r <= '9'; r++ {
		legends["KC_"+string(r)] = Legend{Label: string(r)}
	}
	for n := 1; n <= 12; n++ {
		label := fmt.Sprintf("F%d", n)
		legends["KC_"+label] = Legend{Label: label}
	}

	for code, label := range symbolLabels {
		legends[code] = Legend{Label: label}
	}
	for code, label := range editingLabels {
		legends[code] = Legend{Label: label}
	}
	for code, label := range mediaLabels {
		legends[code] = Legend{Label: label}
	}
	for code, label := range numpadLabels {
		legends[code] = Legend{Label: label, Hint: "Numpad " + label}
	}
	for code, legend := range specialLegends {
		legends[code] = legend
	}

	return legends
}
