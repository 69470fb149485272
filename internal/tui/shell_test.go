package tui

import (
	"testing"

	"codeberg.org/foodmap/client/internal/apiclient"
	"codeberg.org/foodmap/client/internal/i18n"
	"codeberg.org/foodmap/client/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkLabels(links []Link) []string {
	out := make([]string, 0, len(links))
	for _, l := range links {
		out = append(out, l.Label)
	}
	return out
}

func TestLinks(t *testing.T) {
	p := i18n.Printer("ko")
	user := &apiclient.User{ID: "u-1", Name: "김아주", Role: apiclient.RoleUser}

	t.Run("loading shows a placeholder", func(t *testing.T) {
		links := Links(session.State{Phase: session.PhaseLoading, Loading: true}, p)

		assert.Equal(t, []string{"홈", "맛집 목록", "인기 맛집", "확인 중..."}, linkLabels(links))
		assert.Equal(t, LinkPlaceholder, links[3].Kind)

		_, ok := linkForKey(links, "")
		assert.False(t, ok, "placeholder must not be selectable")
	})

	t.Run("anonymous offers login and register", func(t *testing.T) {
		links := Links(session.State{Phase: session.PhaseAnonymous}, p)

		assert.Equal(t, []string{"홈", "맛집 목록", "인기 맛집", "로그인", "회원가입"}, linkLabels(links))

		l, ok := linkForKey(links, "4")
		require.True(t, ok)
		assert.Equal(t, "/login", l.Path)
	})

	t.Run("authenticated offers dashboard and logout", func(t *testing.T) {
		links := Links(session.State{Phase: session.PhaseAuthenticated, Authenticated: true, User: user}, p)

		assert.Equal(t, []string{"홈", "맛집 목록", "인기 맛집", "맛집 제보", "대시보드", "로그아웃"}, linkLabels(links))

		l, ok := linkForKey(links, "0")
		require.True(t, ok)
		assert.Equal(t, LinkLogout, l.Kind)
	})
}

func TestMatchRoute(t *testing.T) {
	routes := routeTable()

	r, params := matchRoute(routes, "/restaurant/r-1")
	assert.Equal(t, "/restaurant/:id", r.pattern)
	assert.Equal(t, "r-1", params["id"])

	r, _ = matchRoute(routes, "/submissions")
	assert.Equal(t, "/submissions", r.pattern)

	r, _ = matchRoute(routes, "/restaurant/")
	assert.Equal(t, "*", r.pattern)

	r, _ = matchRoute(routes, "/missing")
	assert.Equal(t, "*", r.pattern)
}

func TestSplitLocation(t *testing.T) {
	path, query := splitLocation("/login?from=%2Fsubmit")
	assert.Equal(t, "/login", path)
	assert.Equal(t, "/submit", query.Get("from"))

	path, _ = splitLocation("/list/")
	assert.Equal(t, "/list", path)

	path, _ = splitLocation("")
	assert.Equal(t, "/", path)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, validEmail("kim@ajou.ac.kr"))
	assert.False(t, validEmail("kim@localhost"))
	assert.False(t, validEmail("김아주 <kim@ajou.ac.kr>"))
	assert.False(t, validEmail("kim"))
}

func TestSplitMenu(t *testing.T) {
	assert.Equal(t, []string{"김치찌개", "제육볶음"}, splitMenu(" 김치찌개, ,제육볶음 "))
	assert.Nil(t, splitMenu(""))
}
