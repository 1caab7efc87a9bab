package web_test

import (
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/jax2600/warpstery/internal/factory"
	"github.com/jax2600/warpstery/internal/testutil"
	"github.com/jax2600/warpstery/internal/web"
)

// browser drives the web router in-process, keeping cookies between requests
type browser struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	jar     *cookiejar.Jar
	origin  *url.URL
}

func newBrowser(t *testing.T) *browser {
	t.Helper()

	app := factory.NewTestApp()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	origin, err := url.Parse(factory.TestBaseURL)
	require.NoError(t, err)

	return &browser{
		t: t,
		handler: web.NewRouter(web.RouterConfig{
			Logger:         testutil.NopLogger(),
			FrameAdapter:   app.FrameAdapter,
			FrameBuilder:   app.FrameBuilder,
			SessionService: app.SessionService,
		}),
		app:    app,
		jar:    jar,
		origin: origin,
	}
}

func (b *browser) do(method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	for _, c := range b.jar.Cookies(b.origin) {
		req.AddCookie(c)
	}

	rr := httptest.NewRecorder()
	b.handler.ServeHTTP(rr, req)
	b.jar.SetCookies(b.origin, rr.Result().Cookies())
	return rr
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil, false)
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form, false)
}

func (b *browser) postHTMX(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form, true)
}

// page fetches path and parses the HTML
func (b *browser) page(path string) *goquery.Document {
	b.t.Helper()
	rr := b.get(path)
	require.Equal(b.t, http.StatusOK, rr.Code, "GET %s", path)
	return parseHTML(b.t, rr.Body)
}

// follow fetches the target of a 303 or an HX-Redirect and parses it
func (b *browser) follow(rr *httptest.ResponseRecorder) *goquery.Document {
	b.t.Helper()
	location := rr.Header().Get("HX-Redirect")
	if location == "" {
		location = rr.Header().Get("Location")
	}
	require.NotEmpty(b.t, location, "expected a redirect, got %d", rr.Code)
	return b.page(location)
}

// createSession starts a local game and returns its play page path
func (b *browser) createSession(playerID int) string {
	b.t.Helper()
	rr := b.post("/play", url.Values{"player_id": {strconv.Itoa(playerID)}})
	require.Equal(b.t, http.StatusSeeOther, rr.Code)

	location := rr.Header().Get("Location")
	require.True(b.t, strings.HasPrefix(location, "/play/"), "unexpected redirect %q", location)
	return location
}

// startGame creates a session and deals Ted not lasso / Social Hack / Secret Den
func (b *browser) startGame(playerID int) string {
	b.t.Helper()
	path := b.createSession(playerID)
	b.app.QueueSolution(2, 3, 4)
	b.press(path, 1)
	return path
}

// press submits each button in turn and returns the last redirect
func (b *browser) press(path string, buttons ...int) *httptest.ResponseRecorder {
	b.t.Helper()
	var rr *httptest.ResponseRecorder
	for _, button := range buttons {
		rr = b.post(path+"/press", url.Values{"button": {strconv.Itoa(button)}})
		require.Equal(b.t, http.StatusSeeOther, rr.Code, "pressing %d", button)
	}
	return rr
}

func parseHTML(t *testing.T, r io.Reader) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(r)
	require.NoError(t, err)
	return doc
}

func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

func assertNotContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if n := doc.Find(selector).Length(); n > 0 {
		t.Errorf("Expected NOT to find element matching %q, but found %d", selector, n)
	}
}

func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}

// metaContent returns the content of the meta tag with the given property
func metaContent(doc *goquery.Document, property string) string {
	content, _ := doc.Find(`meta[property="` + property + `"]`).Attr("content")
	return content
}

// markOf returns the detective-notes mark shown for a card
func markOf(doc *goquery.Document, path, category string, index int) string {
	return doc.Find(`form[action="` + path + "/notes/" + category + "/" + strconv.Itoa(index) + `"] .mark`).Text()
}
