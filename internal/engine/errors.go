package engine

import (
	"errors"

	"trivia/internal/core"
	"trivia/internal/display"
)

// reportError prints a normalized failure to the session. Validation
// failures expand to a header line plus one line per field message; every
// other failure prints a single line. Handlers funnel through here exactly
// once, before the ready signal.
func (s *Session) reportError(err error) {
	var qerr *core.Error
	if errors.As(err, &qerr) && qerr.Kind == core.KindValidation {
		s.term.WriteLine(display.ErrorMsg("the quiz is invalid:"))
		for _, field := range qerr.FieldErrors {
			s.term.WriteLine(display.ErrorMsg(field))
		}
		return
	}
	s.term.WriteLine(display.ErrorMsg(err.Error()))
}

// isIOFailure reports whether err means the session transport is gone.
func isIOFailure(err error) bool {
	var qerr *core.Error
	return errors.As(err, &qerr) && qerr.Kind == core.KindIO
}
