package script

import "io"

// Compiler validates source and turns it into ExecutableContent. A syntax
// error, or any other reason the source can never evaluate, is reported here
// rather than at evaluation time.
type Compiler interface {
	Compile(scriptReader io.ReadCloser) (ExecutableContent, error)
}
