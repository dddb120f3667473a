// Package character is the per-character animation and action state machine.
//
// A Machine turns movement and action intents plus elapsed seconds into a
// world position, an animation state, a sampled sprite-sheet frame and a
// facing, once per tick. Everything a Machine reads from its profile is
// validated when the Machine is built, so Update itself never fails.
package character
