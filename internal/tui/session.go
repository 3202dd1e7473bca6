package tui

import "github.com/zephyrtronium/calculator"

// Session is the state of one calculator window: the expression being edited
// and the answer to the last one evaluated.
type Session struct {
	Text   string
	Answer string
}

// Submit evaluates Text and stores the result in Answer. Empty text leaves
// the session unchanged. If evaluation fails, Answer holds the error message
// and the error is returned.
func (s *Session) Submit(opts ...calculator.Option) error {
	if s.Text == "" {
		return nil
	}
	r, err := calculator.Calculate(s.Text, opts...)
	if err != nil {
		s.Answer = "error: " + err.Error()
		return err
	}
	s.Answer = r
	return nil
}
