// Package mocks provides hand-written test doubles for the interfaces the
// word explorer depends on: the language model Completer, the ImageLocator,
// and the lookup and explore services.
//
// Each mock takes an optional function field that overrides its behavior
// and records calls for later assertions:
//
//	completer := mocks.NewMockCompleterWithResponse(testutils.HappyJSON)
//	// ... exercise the code under test ...
//	assert.Equal(t, 1, completer.CallCount())
package mocks
