package kvstore_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/kvstore"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type redisSuite struct {
	suite.Suite

	container *tcredis.RedisContainer
	client    *redis.Client
	kv        port.KVStore
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (suite *redisSuite) SetupSuite() {
	t := suite.T()
	ctx := t.Context()

	container, err := tcredis.Run(ctx, "redis:7.4-alpine")
	require.NoError(t, err)
	suite.container = container

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	suite.client, err = kvstore.Connect(ctx, url)
	require.NoError(t, err)

	suite.kv = kvstore.NewRedis(suite.client, kvstore.WithPrefix("test:"))
}

func (suite *redisSuite) TearDownSuite() {
	if suite.client != nil {
		suite.NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.NoError(suite.container.Terminate(suite.T().Context()))
	}
}

func (suite *redisSuite) TestGetSet() {
	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	_, err := suite.kv.Get(ctx, key)
	require.ErrorIs(t, err, port.ErrKeyNotFound)

	require.NoError(t, suite.kv.Set(ctx, key, `[{"quantity":2}]`))
	require.NoError(t, suite.kv.Set(ctx, key, `[]`))

	value, err := suite.kv.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `[]`, value)

	raw, err := suite.client.Get(ctx, "test:"+key).Result()
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}

func (suite *redisSuite) TestEmptyKey() {
	t := suite.T()

	require.EqualError(t, suite.kv.Set(t.Context(), "", "x"), "key is empty")
	_, err := suite.kv.Get(t.Context(), "")
	require.EqualError(t, err, "key is empty")
}

func TestConnectInvalidURL(t *testing.T) {
	_, err := kvstore.Connect(t.Context(), "not a url")
	require.ErrorContains(t, err, "redis.ParseURL")
}
