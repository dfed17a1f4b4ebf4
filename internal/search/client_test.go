// internal/search/client_test.go
package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voteview-client/internal/common/config"
	apierrors "voteview-client/internal/common/errors"
	httpclient "voteview-client/internal/common/http"
	"voteview-client/internal/common/logger"
	"voteview-client/internal/query"
)

// ==========================
// Test Helper Functions
// ==========================

func testVoteviewConfig(srv *httptest.Server) config.VoteviewConfig {
	return config.VoteviewConfig{
		BaseURL:        srv.URL,
		SearchPath:     "/api/search",
		MembersPath:    "/api/getmembers",
		DownloadPath:   "/api/download",
		RequestTimeout: 5000,
	}
}

func createTestClient(t *testing.T, srv *httptest.Server) *Client {
	return NewClient(testVoteviewConfig(srv), httpclient.NewClient(5*time.Second), nil, logger.NewTestLogger(t))
}

func newSearchServer(t *testing.T, payload string, gotForm *map[string]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		if gotForm != nil {
			form := make(map[string]string)
			for k := range r.PostForm {
				form[k] = r.PostForm.Get(k)
			}
			*gotForm = form
		}
		_, _ = w.Write([]byte(payload))
	}))
}

// fakeCache records gets and sets in memory.
type fakeCache struct {
	mu    sync.Mutex
	store map[string][]byte
	hits  int
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	body, ok := c.store[key]
	if ok {
		c.hits++
	}
	return body, ok
}

func (c *fakeCache) Set(_ context.Context, key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.store[key] = body
}

const rollCallPayload = `{
	"recordcount": 2,
	"rollcalls": [
		{"id":"RH1100001","description":"Budget resolution","shortdescription":"Budget","date":"2008-03-05","bill":"HCR 312","chamber":"House","congress":110,"rollnumber":1,"yea":214,"nay":210,"support":50.5,"keyvote":{"cq":1}},
		{"id":"RH1100002","description":"Farm bill","date":"2008-05-14","chamber":"House","congress":110,"rollnumber":2,"yea":318,"nay":106,"support":75.0}
	]
}`

// ==========================
// RollCallSearch Tests
// ==========================

func TestSearchRollCalls_Success(t *testing.T) {
	var gotForm map[string]string
	srv := newSearchServer(t, rollCallPayload, &gotForm)
	defer srv.Close()

	client := createTestClient(t, srv)
	res, err := client.SearchRollCalls(context.Background(), query.Params{
		Query:   "budget",
		Chamber: "House",
	})
	require.NoError(t, err)

	// the built query string is the sole form field and is attached to
	// the result and the table
	assert.Equal(t, map[string]string{"q": "(budget) AND (chamber:house)"}, gotForm)
	assert.Equal(t, "(budget) AND (chamber:house)", res.Query)
	assert.Equal(t, res.Query, res.Table.Query)
	assert.Equal(t, 2, res.Count)
	assert.Empty(t, res.Warning)

	// priority columns lead; nested keyvote is excluded; the rest keep
	// first-record order
	assert.Equal(t,
		[]string{"description", "shortdescription", "date", "bill", "chamber", "congress", "rollnumber", "yea", "nay", "support", "id"},
		res.Table.Columns())

	support, ok := res.Table.Column("support")
	require.True(t, ok)
	assert.Equal(t, int64(50), support.Int(0))
	assert.Equal(t, int64(75), support.Int(1))

	short, ok := res.Table.Column("shortdescription")
	require.True(t, ok)
	assert.Equal(t, "Budget", short.String(0))
	assert.Equal(t, "", short.String(1))
}

func TestSearchRollCalls_ValidationFailsBeforeNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := createTestClient(t, srv)
	_, err := client.SearchRollCalls(context.Background(), query.Params{})
	require.Error(t, err)
	assert.True(t, apierrors.IsValidation(err))
	assert.Zero(t, calls)
}

func TestSearchRollCalls_TransportError(t *testing.T) {
	srv := newSearchServer(t, "<html>internal server error</html>", nil)
	defer srv.Close()

	client := createTestClient(t, srv)
	_, err := client.SearchRollCalls(context.Background(), query.Params{Query: "budget"})
	require.Error(t, err)

	var terr *apierrors.TransportError
	require.ErrorAs(t, err, &terr)
	// the raw body text is surfaced for debugging against the grammar
	assert.Equal(t, "<html>internal server error</html>", terr.Body)
}

func TestSearchRollCalls_EmptyResult(t *testing.T) {
	srv := newSearchServer(t, `{"recordcount":0,"rollcalls":[]}`, nil)
	defer srv.Close()

	client := createTestClient(t, srv)
	_, err := client.SearchRollCalls(context.Background(), query.Params{Query: "zzzz"})
	require.Error(t, err)

	var eerr *apierrors.EmptyResultError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "zzzz", eerr.Query)
}

func TestSearchRollCalls_WarningIsNonFatal(t *testing.T) {
	payload := `{
		"recordcount": 1,
		"errormessage": "query truncated to 5000 results",
		"rollcalls": [{"id":"RH1100001","yea":214}]
	}`
	srv := newSearchServer(t, payload, nil)
	defer srv.Close()

	client := createTestClient(t, srv)
	res, err := client.SearchRollCalls(context.Background(), query.Params{Query: "budget"})
	require.NoError(t, err)

	assert.Equal(t, "query truncated to 5000 results", res.Warning)
	assert.Equal(t, 1, res.Table.NumRows())
}

func TestSearchRollCalls_CacheHitSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(rollCallPayload))
	}))
	defer srv.Close()

	c := newFakeCache()
	client := NewClient(testVoteviewConfig(srv), httpclient.NewClient(5*time.Second), c, logger.NewTestLogger(t))

	params := query.Params{Query: "budget"}
	first, err := client.SearchRollCalls(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, c.sets)

	second, err := client.SearchRollCalls(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "second search should be served from cache")
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, 1, c.sets, "a cache hit is not re-stored")
	assert.Equal(t, first.Query, second.Query)
	assert.Equal(t, first.Table.Columns(), second.Table.Columns())
}

// ==========================
// MemberSearch Tests
// ==========================

func TestSearchMembers_ForwardsAllFields(t *testing.T) {
	var gotForm map[string]string
	payload := `{"results":[
		{"id":"MH11000123","bioname":"SMITH, John","state_abbrev":"KY","congress":110,"born":1950},
		{"id":"MH11200123","bioname":"SMITH, John","state_abbrev":"KY","congress":112}
	]}`
	srv := newSearchServer(t, payload, &gotForm)
	defer srv.Close()

	client := createTestClient(t, srv)
	res, err := client.SearchMembers(context.Background(), MemberQuery{
		Name:     "Smith",
		ICPSR:    "12345",
		State:    "KY",
		Congress: "110",
		CQLabel:  "(KY-05)",
		Chamber:  "House",
	})
	require.NoError(t, err)

	// all six parameters are forwarded as-is, no client-side validation
	assert.Equal(t, map[string]string{
		"name":     "Smith",
		"icpsr":    "12345",
		"state":    "KY",
		"congress": "110",
		"cqlabel":  "(KY-05)",
		"chamber":  "House",
	}, gotForm)

	assert.Equal(t, 2, res.Count)
	assert.Equal(t, []string{"id", "bioname", "state_abbrev", "congress", "born"}, res.Table.Columns())

	born, ok := res.Table.Column("born")
	require.True(t, ok)
	assert.Equal(t, int64(1950), born.Int(0))
	assert.Equal(t, int64(0), born.Int(1))
}

func TestSearchMembers_UndecodableBody(t *testing.T) {
	srv := newSearchServer(t, "not json", nil)
	defer srv.Close()

	client := createTestClient(t, srv)
	_, err := client.SearchMembers(context.Background(), MemberQuery{Name: "Smith"})
	require.Error(t, err)

	var terr *apierrors.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, "not json", terr.Body)
}

func TestSearchMembers_EmptyResults(t *testing.T) {
	srv := newSearchServer(t, `{"results":[]}`, nil)
	defer srv.Close()

	client := createTestClient(t, srv)
	_, err := client.SearchMembers(context.Background(), MemberQuery{Name: "Nobody"})
	require.Error(t, err)
	// zero matches only surface through the flattener
	assert.True(t, apierrors.IsEmptyInput(err))
}
