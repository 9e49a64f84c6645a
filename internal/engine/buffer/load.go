package buffer

import (
	"bufio"
	"io"
	"os"
)

// Load appends one row per line read from r, in input order. Trailing
// \n and \r terminators are stripped. A final line without a
// terminator is still appended.
func (b *Buffer) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
				line = line[:len(line)-1]
			}
			b.Append(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Open reads the named file into the buffer, one row per line.
func (b *Buffer) Open(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return b.Load(f)
}
