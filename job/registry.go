// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package job

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dynasolve/yamss/runner"
	"github.com/dynasolve/yamss/yerr"
)

// Key is an opaque 16-hex-character job identifier.
type Key string

// Builder parses an input document at path and constructs the Runner it
// describes — the core's only contract with the (out-of-scope) input
// reader, per spec.md §6.1.
type Builder func(path string) (*runner.Runner, error)

type entry struct {
	runner    *runner.Runner
	originURL string
	workDir   string
}

// Registry is a process-wide map from Key to (Runner, origin URL). A
// single mutex guards map mutation only; per-job operations release it
// before touching the Runner, so long-running steps on job A never block
// create/release on job B (spec.md §5).
type Registry struct {
	mu          sync.Mutex
	jobs        map[Key]*entry
	baseDir     string
	transporter Transporter
	build       Builder
}

// NewRegistry returns a Registry that stages job working directories
// under baseDir, fetches/pushes files with t, and builds Runners with
// build.
func NewRegistry(baseDir string, t Transporter, build Builder) *Registry {
	return &Registry{jobs: map[Key]*entry{}, baseDir: baseDir, transporter: t, build: build}
}

func newKey() (Key, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", yerr.Wrap(yerr.ConfigError, "job.create", err)
	}
	return Key(hex.EncodeToString(buf)), nil
}

// Create mints a fresh random job key, creates a unique working
// directory, downloads the input document at url into it, parses it, and
// stores the resulting Runner under the new key.
func (r *Registry) Create(url string) (Key, error) {
	key, err := newKey()
	if err != nil {
		return "", err
	}
	workDir := filepath.Join(r.baseDir, string(key))
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return "", yerr.Wrap(yerr.TransportError, "job.create", err)
	}
	localPath := filepath.Join(workDir, "input.xml")
	if err := r.transporter.Get(localPath, url); err != nil {
		return "", err
	}
	run, err := r.build(localPath)
	if err != nil {
		return "", yerr.Wrap(yerr.ConfigError, "job.create", err)
	}

	r.mu.Lock()
	r.jobs[key] = &entry{runner: run, originURL: url, workDir: workDir}
	r.mu.Unlock()
	return key, nil
}

// Release drops the entry for key. Subsequent lookups fail with
// yerr.UnknownKey.
func (r *Registry) Release(key Key) {
	r.mu.Lock()
	delete(r.jobs, key)
	r.mu.Unlock()
}

// Get returns the Runner registered under key, or yerr.UnknownKey.
func (r *Registry) Get(key Key) (*runner.Runner, error) {
	r.mu.Lock()
	e, ok := r.jobs[key]
	r.mu.Unlock()
	if !ok {
		return nil, yerr.New(yerr.UnknownKey, "job.get", "job %s does not exist", key)
	}
	return e.runner, nil
}

// WorkDir returns the working directory for key, or yerr.UnknownKey.
func (r *Registry) WorkDir(key Key) (string, error) {
	r.mu.Lock()
	e, ok := r.jobs[key]
	r.mu.Unlock()
	if !ok {
		return "", yerr.New(yerr.UnknownKey, "job.workdir", "job %s does not exist", key)
	}
	return e.workDir, nil
}

// PushOutputs transports every file the job's Runner declares (via
// Files()) back to the origin URL's base, the way handler::run does in
// the reference implementation.
func (r *Registry) PushOutputs(key Key) error {
	r.mu.Lock()
	e, ok := r.jobs[key]
	r.mu.Unlock()
	if !ok {
		return yerr.New(yerr.UnknownKey, "job.push_outputs", "job %s does not exist", key)
	}
	base := e.originURL[:strings.LastIndex(e.originURL, "/")+1]
	for f := range e.runner.Files() {
		local := filepath.Join(e.workDir, f)
		remote := base + f
		if err := r.transporter.Put(local, remote); err != nil {
			return err
		}
	}
	return nil
}
