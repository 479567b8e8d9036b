package idgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	gen := New()
	assert.NotNil(t, gen)
	assert.NotNil(t, gen.sf)
}

func TestGeneratePrefixedID(t *testing.T) {
	t.Parallel()

	gen := New()

	testcases := []struct {
		name   string
		testFn func() (string, error)
		prefix string
	}{
		{
			name:   "article",
			testFn: gen.GenerateArticleID,
			prefix: "art-",
		},
		{
			name:   "tag",
			testFn: gen.GenerateTagID,
			prefix: "tag-",
		},
	}

	for _, tc := range testcases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			id, err := tc.testFn()
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(id, tc.prefix), "unexpected id %s", id)
			assert.Greater(t, len(id), len(tc.prefix))
		})
	}
}

func TestGenerateArticleID_Unique(t *testing.T) {
	t.Parallel()

	gen := New()

	ids := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id, err := gen.GenerateArticleID()
		require.NoError(t, err)
		assert.False(t, ids[id], "ID should be unique: %s", id)
		ids[id] = true
	}
}

func TestDefaultGenerator(t *testing.T) {
	t.Parallel()

	gen1 := DefaultGenerator()
	gen2 := DefaultGenerator()

	// 确保返回的是同一个实例
	assert.Same(t, gen1, gen2)
	assert.NotNil(t, gen1.sf)
}
