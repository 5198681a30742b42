package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDescription_ExtractsContentSelector(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<nav>Home | Jobs | About</nav>
			<div class="job-description">
				<h1>Backend Engineer</h1>
				<p>We need Python and Docker experience.</p>
			</div>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, 0)

	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Contains(t, text, "Python and Docker")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestJobDescription_FallsBackToBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>Plain posting text.</p></body></html>`))
	}))
	defer srv.Close()

	text, err := JobDescription(context.Background(), srv.URL, 0)

	require.NoError(t, err)
	assert.Contains(t, text, "Plain posting text.")
}

func TestJobDescription_SetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, 0)

	require.NoError(t, err)
	assert.Equal(t, defaultUserAgent, gotUA)
}

func TestJobDescription_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := JobDescription(context.Background(), srv.URL, 0)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "not a url", "/relative/path", "example.com/jobs"} {
		_, err := JobDescription(context.Background(), raw, 0)

		var fetchErr *Error
		require.ErrorAs(t, err, &fetchErr, "url %q", raw)
		assert.Equal(t, "invalid URL", fetchErr.Message, "url %q", raw)
	}
}

func TestJobDescription_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := JobDescription(context.Background(), url, 0)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.NotNil(t, fetchErr.Unwrap())
}

func TestMainText_StripsNoiseElements(t *testing.T) {
	text, err := mainText(`<html><body>
		<script>var x = 1;</script>
		<div class="sidebar">Sidebar junk</div>
		<main><p>Posting body.</p></main>
	</body></html>`)

	require.NoError(t, err)
	assert.Contains(t, text, "Posting body.")
	assert.NotContains(t, text, "Sidebar junk")
	assert.NotContains(t, text, "var x")
}

func TestCleanWhitespace(t *testing.T) {
	in := "  Backend   Engineer \n\n\t \n  Python\t required \n"
	assert.Equal(t, "Backend Engineer\nPython required", cleanWhitespace(in))
}
