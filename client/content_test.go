package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
)

func TestGetFeedPlainGET(t *testing.T) {
	var method string
	var bodyLen int
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		b, _ := io.ReadAll(r.Body)
		bodyLen = len(b)
		w.Write([]byte(`{"featured":null,"headlines":[],"team_sections":{},"trending":[],"meta":{"total":0,"viewed":0,"authenticated":false}}`))
	}))
	defer srv.Close()

	feed, err := c.GetFeed(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetFeed() error = %v", err)
	}
	if method != http.MethodGet {
		t.Errorf("method = %s, want GET", method)
	}
	if bodyLen != 0 {
		t.Errorf("GET feed sent a body of %d bytes", bodyLen)
	}
	if feed.Featured != nil || len(feed.Headlines) != 0 {
		t.Errorf("empty feed should be a valid success value, got %+v", feed)
	}
}

func TestGetFeedPersonalizedPOSTBody(t *testing.T) {
	var method string
	var got map[string]json.RawMessage
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"headlines":[],"team_sections":{},"trending":[],"meta":{}}`))
	}))
	defer srv.Close()

	_, err := c.GetFeed(context.Background(), &FeedOptions{
		ViewedIDs:       []uint{1, 2},
		TeamPreferences: []string{"bears"},
	})
	if err != nil {
		t.Fatalf("GetFeed() error = %v", err)
	}
	if method != http.MethodPost {
		t.Errorf("method = %s, want POST", method)
	}
	if string(got["viewed_ids"]) != "[1,2]" {
		t.Errorf("viewed_ids = %s", got["viewed_ids"])
	}
	if string(got["team_preferences"]) != `["bears"]` {
		t.Errorf("team_preferences = %s", got["team_preferences"])
	}
}

func TestGetArticleDefaultsMissingFields(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No author, category, views, or related_posts.
		w.Write([]byte(`{"id":12,"slug":"bears-win","title":"Bears Win","content":"<p>body</p>"}`))
	}))
	defer srv.Close()

	article, err := c.GetArticle(context.Background(), "12")
	if err != nil {
		t.Fatalf("GetArticle() error = %v", err)
	}
	if article.Author.ID != 0 || article.Author.DisplayName != "Staff" {
		t.Errorf("author = %+v, want {0 Staff}", article.Author)
	}
	if article.Category.Slug != "news" || article.Category.Name != "News" {
		t.Errorf("category = %+v, want {news News}", article.Category)
	}
	if article.Views != 0 {
		t.Errorf("views = %d, want 0", article.Views)
	}
	if article.RelatedPosts == nil || len(article.RelatedPosts) != 0 {
		t.Errorf("related_posts = %v, want empty slice", article.RelatedPosts)
	}
}

func TestGetArticleKeepsSuppliedFields(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":12,"slug":"bears-win","title":"Bears Win","views":44,` +
			`"author":{"id":3,"display_name":"Beat Writer"},` +
			`"category":{"slug":"bears","name":"Chicago Bears"},` +
			`"related_posts":[{"id":13,"slug":"bears-recap","title":"Recap"}]}`))
	}))
	defer srv.Close()

	article, err := c.GetArticle(context.Background(), "bears-win")
	if err != nil {
		t.Fatalf("GetArticle() error = %v", err)
	}
	if article.Author.ID != 3 || article.Author.DisplayName != "Beat Writer" {
		t.Errorf("author = %+v", article.Author)
	}
	if article.Category.Slug != "bears" {
		t.Errorf("category = %+v", article.Category)
	}
	if article.Views != 44 {
		t.Errorf("views = %d, want 44", article.Views)
	}
	if len(article.RelatedPosts) != 1 || article.RelatedPosts[0].ID != 13 {
		t.Errorf("related_posts = %+v", article.RelatedPosts)
	}
}

func TestGetTeamArticlesOmitsAbsentPagination(t *testing.T) {
	var rawQuery string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{"posts":[],"page":1,"has_more":false}`))
	}))
	defer srv.Close()

	if _, err := c.GetTeamArticles(context.Background(), "bears", nil); err != nil {
		t.Fatalf("GetTeamArticles() error = %v", err)
	}
	if rawQuery != "" {
		t.Errorf("query = %q, want empty", rawQuery)
	}

	if _, err := c.GetTeamArticles(context.Background(), "bears", &PageOptions{Page: 2}); err != nil {
		t.Fatalf("GetTeamArticles() error = %v", err)
	}
	if rawQuery != "page=2" {
		t.Errorf("query = %q, want page=2 only", rawQuery)
	}
}

func TestAudioHelpersNeverError(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"db down"}`))
	}))
	defer srv.Close()

	if post := c.GetNextAudioArticle(context.Background(), "bears-win"); post != nil {
		t.Errorf("GetNextAudioArticle on failure = %+v, want nil", post)
	}
	if post := c.GetFirstAudioArticle(context.Background(), "bears"); post != nil {
		t.Errorf("GetFirstAudioArticle(team) on failure = %+v, want nil", post)
	}
	if post := c.GetFirstAudioArticle(context.Background(), ""); post != nil {
		t.Errorf("GetFirstAudioArticle(recent) on failure = %+v, want nil", post)
	}

	// Transport failure path: server closed.
	srv.Close()
	if post := c.GetNextAudioArticle(context.Background(), "bears-win"); post != nil {
		t.Errorf("GetNextAudioArticle on transport failure = %+v, want nil", post)
	}
}

func TestGetFirstAudioArticleBranches(t *testing.T) {
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/team/bears":
			w.Write([]byte(`{"posts":[{"id":1,"slug":"no-audio","has_audio":false},{"id":2,"slug":"with-audio","has_audio":true}],"page":1,"has_more":false}`))
		case "/api/feed":
			w.Write([]byte(`{"featured":{"id":5,"slug":"featured-audio","has_audio":true},"headlines":[],"team_sections":{},"trending":[],"meta":{}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"api route not found"}`))
		}
	}))
	defer srv.Close()

	post := c.GetFirstAudioArticle(context.Background(), "bears")
	if post == nil || post.Slug != "with-audio" {
		t.Errorf("team branch post = %+v, want with-audio", post)
	}

	post = c.GetFirstAudioArticle(context.Background(), "")
	if post == nil || post.Slug != "featured-audio" {
		t.Errorf("recent branch post = %+v, want featured-audio", post)
	}
}

func TestSendChatMessageBodyShape(t *testing.T) {
	var got map[string]interface{}
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"m1","room_id":"room1","content":"hi","content_type":"text"}`))
	}))
	defer srv.Close()

	msg, err := c.SendChatMessage(context.Background(), "room1", "hi", nil)
	if err != nil {
		t.Fatalf("SendChatMessage() error = %v", err)
	}
	if msg.ID != "m1" {
		t.Errorf("message = %+v", msg)
	}

	if got["roomId"] != "room1" || got["content"] != "hi" || got["contentType"] != "text" {
		t.Errorf("body = %v", got)
	}
	for _, key := range []string{"gifUrl", "replyToId"} {
		if _, ok := got[key]; !ok {
			t.Errorf("body missing %s key", key)
		}
	}
}

func TestRecordViewSendsPOST(t *testing.T) {
	var method, path string
	c, srv := newTestClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := c.RecordView(context.Background(), 42); err != nil {
		t.Fatalf("RecordView() error = %v", err)
	}
	if method != http.MethodPost || path != "/api/views/42" {
		t.Errorf("request = %s %s", method, path)
	}
}
