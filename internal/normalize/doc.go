// Package normalize cleans vendor CSV cells before they become lessons.
//
// Three rules are applied:
//
//   - Text: every run of whitespace collapses to one space, ends are trimmed.
//   - Standards: a cell like "f-if.a.1; A-REI.B.3, -" becomes
//     ["F-IF.A.1", "A-REI.B.3"]. Pieces that do not look like a standards
//     code are dropped.
//   - Source lesson codes: a title such as "3.2 Solving Equations" or
//     "Review 1.1-1.3 Extra Practice" yields the vendor's own lesson number.
//
// None of these functions fail; malformed input degrades to fewer fields.
package normalize
