/*
Package record models the loosely-typed rows an identity map is loaded
from: an ordered mapping from field name to a tagged Value.

A Value is one of number, string, bool, datetime or null. Two
comparison rules apply throughout the module:

  - Equal — strict: kind and payload must both match.
  - LooseEqual — numeric coercion: when both operands are numeric-typed
    (a number, or a string that parses as one) they compare
    numerically, so "5" equals 5 while "5a" does not.

Value.Key produces the canonical string the identity and secondary
indexes are keyed by; numeric strings share a key with their number
form, matching the coercion the original row keys performed.
*/
package record
