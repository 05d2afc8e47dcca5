// Package domain contains the core entities of the word explorer: the
// validated WordRecord produced for a looked-up word, word normalization,
// and the input errors shared by the service and delivery layers. It has no
// knowledge of language models, HTTP, or storage.
package domain
