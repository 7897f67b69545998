// Package input defines the shared action types exchanged between the
// modal editing engine and its host.
//
// An Action is an opaque command value: a name plus arguments that the
// dispatcher routes to a handler. The vim and macro subpackages build on
// these types to implement register routing, operator pending state, and
// action recording/replay.
package input
