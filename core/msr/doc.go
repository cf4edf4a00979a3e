// Package msr implements the Music Score Representation, the central tree
// every translation pass reads from or writes to.
//
//	Score
//	└── PartGroup*
//	    └── Part*
//	        └── Staff*
//	            └── Voice*
//	                ├── VoiceElement* (Segment, Repeat, MeasureRepeat, BeatRepeat, MultipleMeasureRest)
//	                │   Segment
//	                │   └── Measure*
//	                │       └── MeasureElement* (Note, Chord, Tuplet, ClefKeyTimeSignatureGroup, BarLine, ...)
//	                └── Stanza*
//	                    └── Syllable*
//
// Children are owned by exactly one parent. Up-links (a measure's segment,
// a syllable's note, a repeat's voice) are plain pointers that never own
// their target: clones re-point them and nothing frees through them.
//
// # Builders
//
// The repeat family enforces its construction order with a build phase.
// [Repeat] goes JustCreated, InCommonPart, InEndings, Completed.
// [MeasureRepeat] and [BeatRepeat] go JustCreated, InPattern, InReplicas,
// Completed. A call made in the wrong phase returns a
// [mferrors.BuildPhaseError] and leaves the node unchanged.
//
// [Voice] drives these builders from the barline events a front end sees:
// repeat starts and ends, ending starts and stops, and measures.
//
// # Clones
//
// Containers have two separately named clone methods. NewbornClone copies
// the scalar fields and points the clone at a new parent, without children.
// DeepClone also clones every owned child. Leaves have a single Clone.
//
// # Context
//
// A [Context] is created once per pass. It carries the input source name
// for diagnostics, the clef-key-time browsing order, the sanity-check and
// stanza-padding switches, and the warnings sink.
package msr
