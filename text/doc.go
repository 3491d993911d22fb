// Package text replays tokenized content streams as a text-positioning
// state machine and emits positioned fragments. Only the operators that
// affect the text cursor or show text (BT, ET, Tm, Td, Tj, TJ) are
// interpreted; font size, leading and matrix scale are ignored because the
// downstream layout stages only need relative left-to-right and
// top-to-bottom ordering, not exact typography.
package text
