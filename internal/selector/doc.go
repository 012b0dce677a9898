// Package selector compiles CSS-selector-flavored queries over stylesheet
// trees.
//
// A query names tree node kinds instead of HTML elements:
//
//	style-rule > [name=color]         // color declarations directly in a rule
//	media-rule style-rule:first-child   // first child rule of any @media
//	*:important                         // every !important declaration
//	keyframes-rule:has(> keyframe)      // keyframes with at least one frame
//
// Supported syntax:
//   - type selectors (tag names such as style-rule, color-function) and `*`
//   - attribute tests on `name` and `value`: [name], [name=v], ~= |= ^= $= *=
//   - pseudo-classes :important :custom :computed :shorthand :longhand
//     :unknown :prefixed :root :rule :at-rule :function :nested :empty
//     :first-child :last-child :only-child :first-of-type :last-of-type
//     :only-of-type
//   - functional pseudo-classes :not() :has() :nth-child() :nth-last-child()
//     :nth-of-type() :nth-last-of-type() :property-type() :prefixed() :size()
//   - combinators: descendant (space), `>`, `+`, `~`; `,` for alternation
//
// Compilation precomputes metadata per selector and per segment so that the
// matcher can skip selectors a document or node can never satisfy.
package selector
