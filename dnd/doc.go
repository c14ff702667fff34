// Package dnd implements the spatial drag-and-drop placement engine.
//
// The engine is a single-gesture state machine combined with a geometric
// nearest-slot search. A pointer press on a draggable node enters a pending
// phase; movement past a displacement threshold promotes it to an active
// drag, which creates a floating ghost that tracks the pointer and a
// placeholder that marks the prospective landing slot. On release the engine
// reports the destination container and insertion index through the
// container's registered handler. The engine never mutates application data;
// the owning view applies the move when its OnDrop callback fires.
//
// All geometry is sampled fresh from the live node tree on every pointer
// move, so scrolling, wrap re-layout, and container churn mid-gesture are
// tolerated without staleness. Failure conditions (empty registry, removed
// containers, sub-threshold presses) degrade to inert no-ops; the engine
// raises no errors.
//
// Engines are plain values created with NewEngine and injected by the
// composition root. Each engine owns one registry and at most one live
// session; there is no package-level mutable state.
package dnd
