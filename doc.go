// Package godash provides lodash-style helpers over two container kinds:
// ordered sequences ([]any and friends) and insertion-ordered mappings
// (*container.Map). Functions are pure unless documented as mutating their
// first argument; predicates are total and never panic on unexpected input.
package godash
