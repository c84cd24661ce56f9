package budgetfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
)

// FileOrStdin accepts either a file path or "-"/"" for stdin, the same
// kong.MapperValue shape the teacher uses for its own --file arguments
// (cli.FileOrStdin): for stdin, Filename is set to the sentinel "<stdin>"
// and Contents is populated eagerly; for a real file, Filename is the path,
// Contents stays nil, and Open reads the file afresh on each call.
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}

	if filename == "-" || filename == "" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		f.Filename = "<stdin>"
		f.Contents = contents
		return nil
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.Filename = filename
	f.Contents = nil
	return nil
}

// EnsureContents populates Contents from stdin when no Filename was set.
func (f *FileOrStdin) EnsureContents() error {
	if f.Filename == "" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		f.Filename = "<stdin>"
		f.Contents = contents
	}
	return nil
}

// Open returns the source's bytes, reading the file fresh each call unless
// it is the stdin sentinel (whose Contents were already captured by Decode).
func (f *FileOrStdin) Open() ([]byte, error) {
	if f.Filename == "<stdin>" {
		return f.Contents, nil
	}
	return os.ReadFile(f.Filename)
}

// AbsoluteFilename returns the absolute path, or the stdin sentinel as-is.
func (f *FileOrStdin) AbsoluteFilename() string {
	if f.Filename == "<stdin>" || f.Filename == "" {
		return f.Filename
	}
	abs, err := filepath.Abs(f.Filename)
	if err != nil {
		return f.Filename
	}
	return abs
}

// IsStdout reports whether path names the stdout sentinel, used by commands
// that write a Document back out (apply, init) to decide between os.Stdout
// and a real file.
func IsStdout(path string) bool {
	return path == "-" || path == ""
}
