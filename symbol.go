package huffpack

// Symbol represents one byte of input, treated as a unit of the alphabet.
type Symbol byte

// NumSymbols is the size of the alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
