// Package bsr implements the Braille Score Representation.
//
// A BSR tree mirrors the physical layout of a Braille score rather than its
// musical structure:
//
//	Score
//	├── TranscriptionNotes
//	└── Page*
//	    ├── PageHeading
//	    ├── MusicHeading
//	    └── Line*
//	        └── LineContents* (regular, then continuations)
//	            └── LineContentsElement* (Measure, Key, TimeSignature, Tempo, Spaces, ...)
//	                                    Measure holds Clef, BarLine, Note, Number, Words, Dynamic
//
// # Cells
//
// Every leaf encodes its semantic value into a [CellsList] once, when it is
// constructed, by a deterministic table lookup. Containers compute their
// cells by concatenating the lists of their children. Nothing is mutated
// after construction except containers receiving fully built children.
//
// # Initialization
//
// [Initialize] must run before any node is built. It is safe to call it more
// than once.
//
// # Example
//
//	bsr.Initialize()
//	clef := bsr.NewClef(12, bsr.ClefGTreble)
//	fmt.Println(clef.CellsList()) // cellsListElements [dots345 dots34 dots123]
package bsr
