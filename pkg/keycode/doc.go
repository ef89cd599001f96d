// Package keycode interprets QMK key-code tokens into the legends printed on
// layer diagrams. The base table and the compound-wrapper grammar are held as
// data on the Interpreter so both can be extended without touching the lookup
// logic.
package keycode
