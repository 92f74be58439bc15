// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package job implements the process-wide JobRegistry (spec.md §4.6): a
// map from opaque job key to (Runner, origin URL), and the Transporter
// collaborator that fetches/pushes files over that origin.
package job

import (
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/dynasolve/yamss/yerr"
)

// Transporter fetches a remote input file into a local path and pushes a
// local output file back to a remote URL. It is the one collaborator
// spec.md §1 calls out explicitly as living outside the core's scope;
// package job only depends on the narrow interface below.
type Transporter interface {
	Get(localPath, url string) error
	Put(localPath, url string) error
}

// HTTPTransporter supports http(s):// URLs directly and falls back to a
// local filesystem copy for any other scheme (including a bare path),
// which is enough to exercise single-machine and multi-tenant-over-HTTP
// deployments alike without pulling in a dedicated object-storage client.
type HTTPTransporter struct {
	Client *http.Client
}

// NewHTTPTransporter returns an HTTPTransporter using http.DefaultClient.
func NewHTTPTransporter() *HTTPTransporter {
	return &HTTPTransporter{Client: http.DefaultClient}
}

func (t *HTTPTransporter) client() *http.Client {
	if t.Client != nil {
		return t.Client
	}
	return http.DefaultClient
}

// Get downloads url into localPath.
func (t *HTTPTransporter) Get(localPath, url string) error {
	if !isHTTP(url) {
		return copyFile(url, localPath)
	}
	resp, err := t.client().Get(url)
	if err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.get", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return yerr.New(yerr.TransportError, "transporter.get", "unexpected status %d fetching %s", resp.StatusCode, url)
	}
	out, err := os.Create(localPath)
	if err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.get", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.get", err)
	}
	return nil
}

// Put uploads localPath to url via HTTP PUT, or copies it to a local path
// otherwise.
func (t *HTTPTransporter) Put(localPath, url string) error {
	if !isHTTP(url) {
		return copyFile(localPath, url)
	}
	f, err := os.Open(localPath)
	if err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.put", err)
	}
	defer f.Close()
	req, err := http.NewRequest(http.MethodPut, url, f)
	if err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.put", err)
	}
	resp, err := t.client().Do(req)
	if err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.put", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return yerr.New(yerr.TransportError, "transporter.put", "unexpected status %d pushing %s", resp.StatusCode, url)
	}
	return nil
}

func isHTTP(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.copy", err)
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.copy", err)
	}
	defer out.Close()
	if _, err := io.Copy(out, in); err != nil {
		return yerr.Wrap(yerr.TransportError, "transporter.copy", err)
	}
	return nil
}
