// Package keymap exposes the public contracts for loading and parsing keymap
// configurations and diagram templates. Implementations live under
// internal/keymap so consumers only depend on these seams.
package keymap
