package web_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jax2600/warpstery/internal/factory"
)

func TestHomeCarriesTitleFrame(t *testing.T) {
	b := newBrowser(t)

	rr := b.get("/")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(t, rr.Body)

	assert.Equal(t, "vNext", metaContent(doc, "fc:frame"))
	assert.Equal(t, factory.TestBaseURL+"/images/warpstery-title.png", metaContent(doc, "fc:frame:image"))
	assert.Equal(t, factory.TestBaseURL+"/api/frames", metaContent(doc, "fc:frame:post_url"))
	assert.Equal(t, "Start Game", metaContent(doc, "fc:frame:button:1"))
	assert.NotEmpty(t, metaContent(doc, "fc:frame:state"))
	assertContainsElement(t, doc, "form#new-session")
}

func TestNewSessionShowsLobby(t *testing.T) {
	b := newBrowser(t)
	path := b.createSession(7)

	rr := b.get(path)
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(t, rr.Body)

	assertContainsElement(t, doc, `section.board[data-stage="lobby"]`)
	assertContainsText(t, doc, `button[data-button="1"]`, "Start Game")
	assertNotContainsElement(t, doc, ".round")
	assertContainsText(t, doc, ".question-log", "No questions asked yet.")
}

func TestStartShowsRoundCounterAndHand(t *testing.T) {
	b := newBrowser(t)
	path := b.startGame(7)

	doc := b.page(path)

	assertContainsText(t, doc, ".round", "Round: 1 of 7")
	assertNotContainsElement(t, doc, ".final-round")
	assertContainsText(t, doc, ".hand", "DWR")
	assertContainsElement(t, doc, ".event")
	assertContainsText(t, doc, `button[data-button="2"]`, "Suggest")

	// Cards in hand are locked on the detective sheet
	dwr := doc.Find(`form[action="` + path + `/notes/suspect/0"] button`)
	_, disabled := dwr.Attr("disabled")
	assert.True(t, disabled)
}

func TestSuggestionRevealsCardWithFlash(t *testing.T) {
	b := newBrowser(t)
	path := b.startGame(7)

	// DWR with the Gas Fee in the Farm; the first phantom holds Gas Fee
	rr := b.press(path, 2, 1, 1, 1)
	doc := b.follow(rr)

	assertContainsText(t, doc, ".flash-success", "Phantom 1 showed you Gas Fee")
	assertContainsText(t, doc, ".question-log td", "DWR with the Gas Fee in the Farm")
	assertContainsText(t, doc, ".question-log", "Phantom 1")
	assertContainsText(t, doc, ".round", "Round: 2 of 7")
	assert.Equal(t, "x", markOf(doc, path, "weapon", 0))
}

func TestFinalRoundIsFlagged(t *testing.T) {
	b := newBrowser(t)
	path := b.startGame(7)

	for range 6 {
		b.press(path, 2, 1, 1, 1)
	}

	doc := b.page(path)
	assertContainsText(t, doc, ".round", "Round: 7 of 7")
	assertContainsText(t, doc, ".final-round", "Final Round!")

	// One more suggestion runs out of rounds
	b.press(path, 2)
	doc = b.page(path)
	assertContainsElement(t, doc, `section.board[data-stage="game_over"]`)
	assertContainsText(t, doc, `button[data-button="1"]`, "Play Again")
}

func TestSolvingShowsShareLink(t *testing.T) {
	b := newBrowser(t)
	path := b.startGame(7)

	b.press(path, 3, 3, 4, 1, 4, 2)
	doc := b.page(path)

	assertContainsElement(t, doc, `section.board[data-stage="solved"]`)
	assertContainsText(t, doc, ".solution", "It was Ted not lasso with the Social Hack in the Secret Den")

	href, ok := doc.Find("a.share").Attr("href")
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(href, "https://warpcast.com/~/compose?"), href)
}

func TestIllegalPressFlashesInfo(t *testing.T) {
	b := newBrowser(t)
	path := b.createSession(7)

	rr := b.press(path, 3)
	doc := b.follow(rr)

	assertContainsText(t, doc, ".flash-info", "That move isn't available right now")
}

func TestCycleNote(t *testing.T) {
	b := newBrowser(t)
	path := b.startGame(7)
	action := path + "/notes/room/0"

	rr := b.post(action, nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "maybe", markOf(b.follow(rr), path, "room", 0))

	b.post(action, nil)
	assert.Equal(t, "confirmed", markOf(b.page(path), path, "room", 0))
}

func TestSaveNotesText(t *testing.T) {
	b := newBrowser(t)
	path := b.startGame(7)

	rr := b.post(path+"/notes/text", url.Values{"text": {"woj was at the pub"}})
	doc := b.follow(rr)

	assertContainsText(t, doc, ".flash-success", "Notes saved")
	assert.Equal(t, "woj was at the pub", doc.Find(".notes-text textarea").Text())
}

func TestHTMXPressUsesHXRedirect(t *testing.T) {
	b := newBrowser(t)
	path := b.createSession(7)

	rr := b.postHTMX(path+"/press", url.Values{"button": {"1"}})

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, path, rr.Header().Get("HX-Redirect"))
}

func TestDeleteSession(t *testing.T) {
	b := newBrowser(t)
	path := b.createSession(7)

	rr := b.post(path+"/delete", nil)
	require.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))

	doc := b.follow(rr)
	assertContainsText(t, doc, ".flash-info", "Game abandoned")

	rr = b.get(path)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
}
