package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "hr:employee:full:abc", EmployeeFullKey("abc"))
	assert.Equal(t, "hr:employee:full:", EmployeeFullPrefix())
	assert.True(t, strings.HasPrefix(EmployeeFullKey("abc"), EmployeeFullPrefix()))
	assert.Equal(t, "hr:lookup:country", LookupListKey("country"))
}

func TestNoopNeverHits(t *testing.T) {
	var c Cache = Noop{}
	require.NoError(t, c.Set(context.Background(), "k", map[string]int{"a": 1}))
	var dest map[string]int
	hit, err := c.Get(context.Background(), "k", &dest)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Delete(context.Background(), "k"))
	assert.NoError(t, c.DeletePrefix(context.Background(), EmployeeFullPrefix()))
}

func TestRedisCacheReportsConnectionErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client, time.Minute)
	var dest string
	hit, err := c.Get(context.Background(), "k", &dest)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Delete(context.Background()))
	assert.Error(t, c.DeletePrefix(context.Background(), EmployeeFullPrefix()))
}
