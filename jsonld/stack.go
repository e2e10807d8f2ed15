package jsonld

// Stack is the vocabulary stack of one top-level serialization call. It holds
// one entry per open node; the top is the vocabulary of the innermost one.
// A Stack is not safe for concurrent use and must not outlive its call.
type Stack struct {
	vocabs []string
}

// NewStack creates an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// Len returns the number of open nodes.
func (s *Stack) Len() int {
	return len(s.vocabs)
}

// Peek returns the vocabulary of the innermost open node.
func (s *Stack) Peek() (string, bool) {
	if len(s.vocabs) == 0 {
		return "", false
	}

	return s.vocabs[len(s.vocabs)-1], true
}

// Enter pushes vocab for a node being opened and writes its @context when
// needed. It reports whether a context was written.
//
// A context is written when the vocabulary differs from the enclosing one, or
// when it is unchanged but the node has terms to declare. @vocab is only
// repeated in the first case. The entry is pushed before anything is written:
// callers must call Leave even when Enter fails.
func (s *Stack) Enter(w Writer, vocab string, terms *Terms) (bool, error) {
	current, ok := s.Peek()
	s.vocabs = append(s.vocabs, vocab)

	vocabChanged := !ok || current != vocab
	if !vocabChanged && terms.Len() == 0 {
		return false, nil
	}

	if err := writeContext(w, vocab, vocabChanged, terms); err != nil {
		return true, err
	}

	return true, nil
}

// Leave pops the innermost entry. It is a no-op on an empty stack.
func (s *Stack) Leave() {
	if len(s.vocabs) > 0 {
		s.vocabs = s.vocabs[:len(s.vocabs)-1]
	}
}

func writeContext(w Writer, vocab string, withVocab bool, terms *Terms) error {
	if err := w.Name(AtContext); err != nil {
		return err
	}

	if err := w.StartObject(); err != nil {
		return err
	}

	if withVocab {
		if err := writeStringField(w, AtVocab, vocab); err != nil {
			return err
		}
	}

	var err error
	terms.Each(func(name string, value TermValue) {
		if err == nil {
			err = writeTerm(w, name, value)
		}
	})

	if err != nil {
		return err
	}

	return w.EndObject()
}

func writeTerm(w Writer, name string, value TermValue) error {
	switch v := value.(type) {
	case StringTerm:
		return writeStringField(w, name, string(v))
	case StructuredTerm:
		if err := w.Name(name); err != nil {
			return err
		}

		if err := w.StartObject(); err != nil {
			return err
		}

		if v.ID != "" {
			if err := writeStringField(w, AtID, v.ID); err != nil {
				return err
			}
		}

		if err := writeStringField(w, AtType, AtVocab); err != nil {
			return err
		}

		return w.EndObject()
	default:
		return ErrUnsupportedValue
	}
}
