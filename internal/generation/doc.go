// Package generation defines the boundary between the word explorer and the
// hosted language models that write word explanations for young readers.
//
// It owns everything about the model round trip that does not depend on a
// particular provider:
//
//   - Completer, the single capability a provider adapter must offer
//     ("accepts a prompt, returns text"), so lookups can be tested with mocks.
//   - PromptBuilder, which renders the instruction prompt for a word from a
//     text/template.
//   - Sanitize, which removes code-fence wrappers models like to add around
//     JSON replies.
//   - ParseWordRecord, which strictly decodes and validates the cleaned reply
//     into a domain.WordRecord.
//
// Provider adapters live under internal/platform (claude, gemini, gpt).
package generation
