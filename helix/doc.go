// Package helix generates the geometry of a decorative double helix.
//
// Build samples two interleaved backbone strands on a cylinder and the rungs
// that join them; Assemble turns that geometry into quarkgl meshes (one swept
// tube per strand, one capped cylinder per rung). Both are pure functions.
// Pipeline memoizes them so that a frame loop asking for the same
// configuration never recomputes anything.
package helix
