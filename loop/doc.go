// Package loop provides the single-goroutine event loop that glyphcache
// expects from its host.
//
// A Loop is a work queue drained by exactly one goroutine, either a goroutine
// blocked in Run or a host frame loop calling Drain once per frame. Timers
// created with AfterFunc deliver their callbacks through the same queue, so
// the callback runs on the loop goroutine and never concurrently with other
// work.
//
// Manual is a scheduler with a hand-cranked clock for deterministic hosts and
// tests.
package loop
