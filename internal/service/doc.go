// Package service contains the word explorer's use cases.
//
// WordLookupService performs the model round trip for one word: build the
// prompt, call the injected generation.Completer once, sanitize the reply and
// parse it into a domain.WordRecord. ExploreService is the control flow
// behind the Explore button: normalize the input, look the word up, try to
// find an illustration, and record the result in the caller's session
// history.
//
// Services receive their collaborators through constructor injection and
// depend only on interfaces, so every step can be exercised with mocks.
package service
