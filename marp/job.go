package marp

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"marpmcp/config"
)

// Job is the transient backing state of one convert/preview call: a uniquely
// named temp directory holding the input Markdown. It never outlives the call
// that created it.
type Job struct {
	ID        string
	Dir       string
	InputPath string
}

// NewJob writes markdown into a fresh uuid-named directory under the scoped
// temp root. Unique names keep concurrent calls from ever sharing a file.
func NewJob(markdown string) (*Job, error) {
	id := uuid.NewString()
	dir := filepath.Join(config.GetTempDir(), id)

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, Errorf(CodeFilesystem, "failed to create job directory: %v", err)
	}

	inputPath := filepath.Join(dir, "input.md")
	if err := os.WriteFile(inputPath, []byte(markdown), 0600); err != nil {
		os.RemoveAll(dir)
		return nil, Errorf(CodeFilesystem, "failed to write input file: %v", err)
	}

	return &Job{
		ID:        id,
		Dir:       dir,
		InputPath: inputPath,
	}, nil
}

// Path returns a path inside the job directory.
func (j *Job) Path(name string) string {
	return filepath.Join(j.Dir, name)
}

// Cleanup removes the job directory. Safe to call more than once and always
// deferred by callers so temp files are gone on every exit path.
func (j *Job) Cleanup() {
	if j == nil || j.Dir == "" {
		return
	}
	if err := os.RemoveAll(j.Dir); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("[marp] Cleanup: failed to remove job dir %s: %v", j.Dir, err)
	}
}

// OutputName builds the artifact filename for this job in the given format.
func (j *Job) OutputName(format Format) string {
	return fmt.Sprintf("%s%s", j.ID, format.Ext())
}
