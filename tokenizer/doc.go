// Package tokenizer splits identifiers into words independent of their naming
// convention.
//
// Segmentation happens in two passes. The first pass splits on runs of
// underscores, hyphens, and whitespace, which covers snake_case, kebab-case, and
// SCREAMING_SNAKE_CASE. The second pass walks each fragment and cuts it at case
// boundaries:
//
//   - an uppercase letter followed by lowercase letters starts a word ("Http")
//   - a run of uppercase letters followed by a lowercase letter gives its last
//     uppercase letter to the next word ("XMLHttp" -> "XML", "Http")
//   - a run of uppercase letters not followed by a lowercase letter is an acronym
//     ("HTML5Parser" -> "HTML", "5", "Parser")
//   - a run of lowercase letters is a word
//   - a run of digits is always its own word
//
// Other characters, such as '$', end the current word and are dropped. A fragment
// that yields no word at all is kept whole.
//
// # Example
//
//	tokenizer.Tokenize("XMLHttpRequest") // ["xml", "http", "request"]
//	tokenizer.Tokenize("MAX_RETRY_COUNT") // ["max", "retry", "count"]
//	tokenizer.Split("getHTML5Parser")     // ["get", "HTML", "5", "Parser"]
package tokenizer
