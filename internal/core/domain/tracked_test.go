package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/rauri/internal/core/domain"
)

func TestTrackedSet_AddRemoveIdempotent(t *testing.T) {
	s := domain.NewTrackedSet("bar")

	s.Add("foo")
	s.Add("foo")
	assert.Len(t, s, 2)
	assert.True(t, s.Has("foo"))

	s.Remove("foo")
	s.Remove("foo")
	assert.False(t, s.Has("foo"))
	assert.True(t, s.Has("bar"))

	s.Add("")
	assert.Len(t, s, 1)
}

func TestTrackedSet_Sorted(t *testing.T) {
	s := domain.NewTrackedSet("zsh-git", "alpha", "foo-debug", "foo")
	assert.Equal(t, []string{"alpha", "foo", "foo-debug", "zsh-git"}, s.Sorted())
}

func TestTrackedSet_BaseNames(t *testing.T) {
	s := domain.NewTrackedSet("foo-debug", "foo", "bar-debug")
	assert.Equal(t, []string{"bar", "foo"}, s.BaseNames())
}

func TestTrackedSet_Equal(t *testing.T) {
	assert.True(t, domain.NewTrackedSet("a", "b").Equal(domain.NewTrackedSet("b", "a")))
	assert.False(t, domain.NewTrackedSet("a").Equal(domain.NewTrackedSet("a", "b")))
	assert.False(t, domain.NewTrackedSet("a", "c").Equal(domain.NewTrackedSet("a", "b")))
}

func TestUpdateReport_Outdated(t *testing.T) {
	r := domain.UpdateReport{Plans: []domain.UpdatePlan{
		{BaseName: "a", NeedsUpdate: true},
		{BaseName: "b"},
	}}
	assert.Equal(t, []domain.UpdatePlan{{BaseName: "a", NeedsUpdate: true}}, r.Outdated())
}
