// Package scene mounts a helix onto a frame-driven rendering host.
//
// A Host hands out mesh slots and per-frame callbacks; Stage is the quarkgl
// implementation. Mount places an assembled helix on a host under a static
// tilt and a Spinner that advances once per frame. Everything here runs on
// the host's single frame loop and does no locking.
package scene
