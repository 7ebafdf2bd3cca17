package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafka.Message
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewProducerRequiresBrokers(t *testing.T) {
	_, err := NewProducer()
	assert.Error(t, err)

	p, err := NewProducer(WithBrokers([]string{"localhost:9092"}), WithCompression("zstd"))
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestPublishMessageMarshalsJSON(t *testing.T) {
	w := &fakeWriter{}
	p := &Producer{writer: w, clientID: "godsignal-test"}

	err := p.PublishMessage(context.Background(), "godsignal.logs", []map[string]int{{"count": 3}})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "godsignal.logs", msg.Topic)
	assert.Equal(t, []byte("godsignal-test"), msg.Key)

	var got []map[string]int
	require.NoError(t, json.Unmarshal(msg.Value, &got))
	assert.Equal(t, 3, got[0]["count"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
