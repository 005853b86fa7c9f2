// Package keyframe manages animation tracks on top of animcurve.
//
// A [Track] owns the keyframes of one animated value and caches its evaluated
// polyline until it is edited. A [Bank] groups tracks, evaluates them
// concurrently and shares evaluations between tracks describing the same
// curve. A [Document] is the YAML form of a bank.
package keyframe
