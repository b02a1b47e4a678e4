package workspace

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Workspace is the per-request temporary directory every artifact of one
// compilation lives in. It must not outlive the request.
type Workspace struct {
	dir string
}

func New() (*Workspace, error) {
	dir, err := os.MkdirTemp("", "tikz-compile-")
	if err != nil {
		return nil, err
	}
	return &Workspace{dir: dir}, nil
}

func (w *Workspace) Dir() string {
	return w.dir
}

func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

func (w *Workspace) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(w.Path(name))
}

// Cleanup removes the directory and everything in it. Safe to call more
// than once.
func (w *Workspace) Cleanup() {
	if err := os.RemoveAll(w.dir); err != nil {
		logrus.Warnf("failed to remove workspace %s: %s", w.dir, err.Error())
	}
}
