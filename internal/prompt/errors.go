package prompt

import "errors"

// ErrAborted reports that the user interrupted editing, for example with
// Ctrl+C. Nothing is saved.
var ErrAborted = errors.New("prompt: aborted")
