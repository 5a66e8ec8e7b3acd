package comb

// Result is the outcome of a successful parse step: a value and the cursor
// behind the consumed input.
type Result[T any] struct {
	Value T
	Rest  Cursor
}

// Parser is a function which recognizes a T at the start of the input.
// It returns false if it does not recognize anything, in which case the
// result is meaningless.
type Parser[T any] func(Cursor) (Result[T], bool)

// Parse runs p on a string.
func (p Parser[T]) Parse(input string) (Result[T], bool) {
	return p(NewCursor(input))
}

func succeed[T any](v T, rest Cursor) (Result[T], bool) {
	return Result[T]{Value: v, Rest: rest}, true
}

func fail[T any]() (Result[T], bool) {
	return Result[T]{}, false
}

// Maybe is the value of an optional parser. Ok is false if the wrapped parser
// did not match.
type Maybe[T any] struct {
	Value T
	Ok    bool
}

// --- Combinators -----------------------------------------------------------

// Optional runs p. If p fails, Optional succeeds with an absent value and the
// original cursor. Optional never fails.
func Optional[T any](p Parser[T]) Parser[Maybe[T]] {
	return func(in Cursor) (Result[Maybe[T]], bool) {
		r, ok := p(in)
		if !ok {
			return succeed(Maybe[T]{}, in)
		}
		return succeed(Maybe[T]{Value: r.Value, Ok: true}, r.Rest)
	}
}

// Or tries each parser in order, each one on the original input, and returns
// the first success. If all parsers fail, Or fails.
//
// Or has to be called with at least one parser.
func Or[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		panic("comb.Or needs at least one parser")
	}
	return func(in Cursor) (Result[T], bool) {
		for _, p := range ps {
			if r, ok := p(in); ok {
				return r, true
			}
		}
		return fail[T]()
	}
}

// Join runs parsers in sequence, each one starting where the previous one
// stopped. It succeeds with the values of all the parsers, if every parser
// succeeds. Otherwise it fails.
//
// Join has to be called with at least one parser. To join parsers of different
// value types, wrap them with Erase or use Then.
func Join[T any](ps ...Parser[T]) Parser[[]T] {
	if len(ps) == 0 {
		panic("comb.Join needs at least one parser")
	}
	return func(in Cursor) (Result[[]T], bool) {
		values := make([]T, 0, len(ps))
		cur := in
		for _, p := range ps {
			r, ok := p(cur)
			if !ok {
				return fail[[]T]()
			}
			values = append(values, r.Value)
			cur = r.Rest
		}
		return succeed(values, cur)
	}
}

// Repeat applies p until it fails and collects the values of all repetitions.
// Repeat always succeeds, possibly with zero repetitions.
//
// p must not succeed without consuming input. If it does, Repeat stops
// after the first repetition not advancing the cursor, dropping its value.
func Repeat[T any](p Parser[T]) Parser[[]T] {
	return func(in Cursor) (Result[[]T], bool) {
		var values []T
		cur := in
		for {
			r, ok := p(cur)
			if !ok {
				break
			}
			if r.Rest.Pos() == cur.Pos() {
				tracer().Infof("repeated parser matched empty input at %s, stopping", cur)
				break
			}
			values = append(values, r.Value)
			cur = r.Rest
		}
		return succeed(values, cur)
	}
}

// --- Adapters --------------------------------------------------------------

// Map transforms the value of p with f.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(in Cursor) (Result[U], bool) {
		r, ok := p(in)
		if !ok {
			return fail[U]()
		}
		return succeed(f(r.Value), r.Rest)
	}
}

// Erase turns a typed parser into a parser of interface{} values, to be used
// with Join or Or for parsers of different types.
func Erase[T any](p Parser[T]) Parser[interface{}] {
	return Map(p, func(v T) interface{} { return v })
}

// Pair is the value of two parsers run in sequence.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Then runs p and q in sequence, keeping both values typed.
func Then[A, B any](p Parser[A], q Parser[B]) Parser[Pair[A, B]] {
	return func(in Cursor) (Result[Pair[A, B]], bool) {
		a, ok := p(in)
		if !ok {
			return fail[Pair[A, B]]()
		}
		b, ok := q(a.Rest)
		if !ok {
			return fail[Pair[A, B]]()
		}
		return succeed(Pair[A, B]{First: a.Value, Second: b.Value}, b.Rest)
	}
}

// Left runs p and q in sequence and keeps the value of p.
func Left[A, B any](p Parser[A], q Parser[B]) Parser[A] {
	return Map(Then(p, q), func(pr Pair[A, B]) A { return pr.First })
}

// Right runs p and q in sequence and keeps the value of q.
func Right[A, B any](p Parser[A], q Parser[B]) Parser[B] {
	return Map(Then(p, q), func(pr Pair[A, B]) B { return pr.Second })
}
