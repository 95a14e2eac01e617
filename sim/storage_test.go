package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Title string
}

type testScore struct {
	Points int
}

func TestSingleton(t *testing.T) {
	storage := NewStorage()

	config := NewSingleton[testConfig](storage, testConfig{Title: "bounce"})
	assert.True(t, config.Exists())
	assert.Equal(t, "bounce", config.Get().Title)

	// A second accessor sees the same value and ignores its initializer.
	same := NewSingleton[testConfig](storage, testConfig{Title: "ignored"})
	assert.Equal(t, "bounce", same.Get().Title)

	same.Get().Title = "changed"
	assert.Equal(t, "changed", config.Get().Title)
}

func TestSingletonZeroValue(t *testing.T) {
	storage := NewStorage()
	score := NewSingleton[testScore](storage)
	require.NotNil(t, score.Get())
	assert.Equal(t, 0, score.Get().Points)
}

func TestSingletonInitBeforeAdd(t *testing.T) {
	storage := NewStorage()

	var score Singleton[testScore]
	score.Init(storage)
	assert.False(t, score.Exists())
	assert.Nil(t, score.Get())

	storage.AddSingleton(testScore{Points: 3})
	assert.True(t, score.Exists())
	assert.Equal(t, 3, score.Get().Points)
}

func TestAddSingletonReplacesInPlace(t *testing.T) {
	storage := NewStorage()
	score := NewSingleton[testScore](storage, testScore{Points: 1})
	before := score.Get()

	storage.AddSingleton(&testScore{Points: 5})

	assert.Same(t, before, score.Get())
	assert.Equal(t, 5, score.Get().Points)
	assert.Equal(t, 1, storage.CollectStats().SingletonCount)
}

func TestReadSingleton(t *testing.T) {
	storage := NewStorage()
	NewSingleton[testConfig](storage, testConfig{Title: "x"})

	var config *testConfig
	require.True(t, storage.ReadSingleton(&config))
	assert.Equal(t, "x", config.Title)

	var score *testScore
	assert.False(t, storage.ReadSingleton(&score))
	assert.Nil(t, score)

	assert.Nil(t, ReadSingleton[testScore](storage))
	assert.Panics(t, func() { storage.ReadSingleton(config) })
	assert.Panics(t, func() { storage.AddSingleton(nil) })
}

func TestCollectStats(t *testing.T) {
	storage := NewStorage()
	stats := storage.CollectStats()
	assert.Equal(t, 0, stats.SingletonCount)
	assert.Empty(t, stats.SingletonTypes)

	NewSingleton[testScore](storage)
	NewSingleton[testConfig](storage)
	NewSingleton[float64](storage, 3.14)

	stats = storage.CollectStats()
	assert.Equal(t, 3, stats.SingletonCount)
	assert.Equal(t, []string{"float64", "sim.testConfig", "sim.testScore"}, stats.SingletonTypes)
}

func TestCommandsFlush(t *testing.T) {
	commands := newCommands()
	var order []int

	commands.Defer(func() { order = append(order, 1) })
	commands.Defer(func() {
		order = append(order, 2)
		commands.Defer(func() { order = append(order, 3) })
	})
	assert.Equal(t, 2, commands.Len())

	commands.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, 0, commands.Len())

	commands.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
}
