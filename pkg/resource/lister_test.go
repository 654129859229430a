package resource_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexPage = `<html><head><title>Index of /dir/</title></head><body>
<h1>Index of /dir/</h1>
<pre>
<a href="?C=N;O=D">Name</a>
<a href="/">Parent Directory</a>
<a href="1.0/">1.0/</a>
<a href="2.0/">2.0/</a>
<a href="b.jar">b.jar</a>
<a href="b.jar.sha1">b.jar.sha1</a>
</pre>
</body></html>`

func TestList(t *testing.T) {
	server := newRepoServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dir/" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexPage))
	})

	a := newAccessor()
	entries, err := a.List(context.Background(), server.URL+"/dir/")
	require.NoError(t, err)

	assert.Equal(t, []string{
		server.URL + "/dir/1.0/",
		server.URL + "/dir/2.0/",
		server.URL + "/dir/b.jar",
		server.URL + "/dir/b.jar.sha1",
	}, entries)
}

func TestListSlashlessParent(t *testing.T) {
	server := newRepoServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/dir" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(indexPage))
	})

	a := newAccessor()
	// Relative hrefs must resolve below /dir/ even when the caller omits
	// the trailing slash.
	entries, err := a.List(context.Background(), server.URL+"/dir")
	require.NoError(t, err)

	assert.Equal(t, []string{
		server.URL + "/dir/1.0/",
		server.URL + "/dir/2.0/",
		server.URL + "/dir/b.jar",
		server.URL + "/dir/b.jar.sha1",
	}, entries)
}

func TestListKeepsEncodedQuestionMarkNames(t *testing.T) {
	server := newRepoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Index of /dir/</h1>
<a href="?C=S;O=A">Size</a>
<a href="odd%3Fname.jar">odd%3Fname.jar</a>
</body></html>`))
	})

	a := newAccessor()
	entries, err := a.List(context.Background(), server.URL+"/dir/")
	require.NoError(t, err)

	// An encoded '?' is part of the entry name; only real query links are
	// sort/navigation noise.
	assert.Equal(t, []string{server.URL + "/dir/odd%3Fname.jar"}, entries)
}

func TestListEmptyDirectory(t *testing.T) {
	server := newRepoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Index of /dir/</h1><a href="/">Parent Directory</a></body></html>`))
	})

	a := newAccessor()
	entries, err := a.List(context.Background(), server.URL+"/dir/")
	require.NoError(t, err)

	// Valid but empty index: empty, not nil.
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestListNonIndexPage(t *testing.T) {
	server := newRepoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/java-archive")
		_, _ = w.Write([]byte("\x50\x4b\x03\x04"))
	})

	a := newAccessor()
	entries, err := a.List(context.Background(), server.URL+"/dir/")
	require.NoError(t, err)
	assert.Nil(t, entries, "a non-index page is not listable, distinct from an empty directory")
}

func TestListMissingParent(t *testing.T) {
	server := newRepoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	a := newAccessor()
	entries, err := a.List(context.Background(), server.URL+"/dir/")
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestListServerError(t *testing.T) {
	server := newRepoServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	a := newAccessor()
	_, err := a.List(context.Background(), server.URL+"/dir/")
	assert.Error(t, err)
}
