// Package mode defines the modal-editing states that gate keybindings.
//
// Bindings carry a Set of modes they apply to; the empty set means the
// binding is non-modal and active in every mode. The single-letter forms
// ("n", "i", "v", "t") are the on-disk representation in keymap files.
package mode
