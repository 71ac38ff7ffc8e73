package logic

// Stream is a lazy, possibly infinite sequence of Bindings, each one a
// complete success environment for one answer. It is the single-threaded
// replacement for the teacher library's goroutine-and-channel Stream: the
// vocabulary (Goal, Stream) is kept, with One and Empty as the
// one-answer and no-answer streams, but nothing here
// spawns a goroutine or blocks on a channel. A Stream is either empty, or
// a head Bindings plus a thunk that produces the rest on demand — pulling
// one element does no more resolution work than that one element needs.
type Stream struct {
	ok   bool
	head *Bindings
	next func() *Stream
}

// Empty is the stream with no answers.
func Empty() *Stream {
	return &Stream{}
}

// One is a stream with exactly one answer, env.
func One(env *Bindings) *Stream {
	return &Stream{ok: true, head: env, next: func() *Stream { return Empty() }}
}

// cons builds a non-empty stream whose first answer is head and whose
// remaining answers are produced lazily by next.
func cons(head *Bindings, next func() *Stream) *Stream {
	return &Stream{ok: true, head: head, next: next}
}

// Head returns the stream's first Bindings and whether the stream is
// non-empty.
func (s *Stream) Head() (*Bindings, bool) {
	return s.head, s.ok
}

// Rest forces and returns the remaining stream. Calling Rest on an empty
// stream returns another empty stream.
func (s *Stream) Rest() *Stream {
	if !s.ok {
		return Empty()
	}
	return s.next()
}

// Take eagerly pulls up to n answers (n <= 0 means "all of them"). Meant
// for tests and the CLI's batch mode, not for the resolver itself, which
// always consumes a Stream one pull at a time.
func (s *Stream) Take(n int) []*Bindings {
	var out []*Bindings
	cur := s
	for cur.ok && (n <= 0 || len(out) < n) {
		out = append(out, cur.head)
		cur = cur.Rest()
	}
	return out
}

// concat lazily appends two streams: every answer of a, then, once a is
// exhausted, every answer of restThunk()'s stream. The second argument is
// a thunk rather than a *Stream so that building the combined stream
// never forces work the caller hasn't demanded yet.
func concat(a *Stream, restThunk func() *Stream) *Stream {
	if !a.ok {
		return restThunk()
	}
	return cons(a.head, func() *Stream { return concat(a.Rest(), restThunk) })
}

// concatMap flat-maps f over every answer of a, in order, lazily: each
// answer of a's stream produces its own stream via f, and those streams
// are concatenated left to right without forcing any of them until
// demanded. This is exactly solve_body's "for each env' from the first
// goal, forward every env'' from the rest" rule.
func concatMap(a *Stream, f func(*Bindings) *Stream) *Stream {
	if !a.ok {
		return Empty()
	}
	return concat(f(a.head), func() *Stream { return concatMap(a.Rest(), f) })
}

// Goal is a function from a binding environment to the lazy stream of
// environments in which the goal holds. The resolver's solveGoal and
// solveBody are themselves expressible as Goals; SolveGoal/SolveBody in
// resolver.go are the named entry points spec.md calls for.
type Goal func(env *Bindings) *Stream
