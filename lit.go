package psfmt

// Lit is a format literal: an immutable byte sequence whose specifier
// layout is fixed the moment the constant is written. Keeping it a distinct
// string type does two jobs at once. Untyped string constants convert
// implicitly, so `psfmt.MustParse("x %d")` reads naturally, and
// concatenation of Lit constants stays a compile-time constant expression.
// At the same time the distinct type acts as the "formattable literal"
// marker: the %s specifier only accepts Str(Lit) arguments, never arbitrary
// runtime strings, which is what keeps every rendered length statically
// bounded.
type Lit string

// Len returns the literal's length in bytes.
func (l Lit) Len() int { return len(l) }

// Concat returns the concatenation of l and other. For constant operands
// prefer the + operator, which the compiler folds; Concat exists for the
// places (such as the log wrapper's prefix composition) where literals are
// combined once and then cached.
func (l Lit) Concat(other Lit) Lit { return l + other }
