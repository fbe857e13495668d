package clipboard

import (
	"github.com/atotto/clipboard"
)

// Writer puts text on a clipboard
type Writer interface {
	Write(text string) error
}

// ReadWriter is a clipboard that can also be pasted from
type ReadWriter interface {
	Writer
	Read() (string, error)
}

// System is the operating system clipboard
type System struct{}

func (System) Write(text string) error {
	return Write(text)
}

func (System) Read() (string, error) {
	return Read()
}

// Memory is a process local clipboard
type Memory struct {
	text string
}

func (m *Memory) Write(text string) error {
	m.text = text
	return nil
}

func (m *Memory) Read() (string, error) {
	return m.text, nil
}

func Write(text string) error {
	return clipboard.WriteAll(text)
}

func Read() (string, error) {
	text, err := clipboard.ReadAll()

	if err != nil {
		return "", err
	}

	return text, nil
}

// Available reports whether a clipboard utility was found
func Available() bool {
	return !clipboard.Unsupported
}
