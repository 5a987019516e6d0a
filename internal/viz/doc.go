// Package viz draws spring traces on a Braille canvas for plain terminal
// output.
//
//   - [Canvas]: 2x4 sub-pixel grid per character cell
//   - [Phase]: position against velocity for a run trace
package viz
